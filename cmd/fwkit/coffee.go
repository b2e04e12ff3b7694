package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"Firmware/coffee"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

const (
	phaseSteps = 5
	brewTemp   = 95
)

func runCoffee(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("coffee", flag.ContinueOnError)
	water := fs.Int("water", 100, "Water level in percent")
	temp := fs.Int("temp", 20, "Starting temperature in Celsius")
	step := fs.Duration("step", 300*time.Millisecond, "Delay per simulated progress step")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m := coffee.New(*water, *temp)
	fmt.Fprintln(out, m.Status())

	fmt.Fprintln(out, "> start pressed")
	if m.Update(coffee.StartPressed) == coffee.Error {
		fmt.Fprintln(out, m.Status())
		return errors.Errorf("cannot brew with %d%% water", m.WaterLevel)
	}
	fmt.Fprintln(out, m.Status())
	if err := simulate(out, "heating", *step); err != nil {
		return err
	}

	fmt.Fprintf(out, "> temp reached %dC\n", brewTemp)
	m.Temp = brewTemp
	m.Update(coffee.TempReached)
	fmt.Fprintln(out, m.Status())
	if err := simulate(out, "brewing", *step); err != nil {
		return err
	}

	fmt.Fprintln(out, "> brew complete")
	m.Update(coffee.BrewComplete)
	fmt.Fprintln(out, m.Status())
	glog.V(1).Infof("brew cycle finished in state %v", m.State)
	return nil
}

func simulate(out io.Writer, phase string, step time.Duration) error {
	bar := progressbar.NewOptions(phaseSteps,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(phase),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(out) }),
	)
	for i := 0; i < phaseSteps; i++ {
		time.Sleep(step)
		if err := bar.Add(1); err != nil {
			return err
		}
	}
	return nil
}
