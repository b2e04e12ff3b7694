package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"Firmware/debounce"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

type sample struct {
	at    time.Duration
	level bool
}

// parseSample reads "MS:LEVEL", e.g. "160:1".
func parseSample(s string) (sample, error) {
	at, lvl, ok := strings.Cut(s, ":")
	if !ok {
		return sample{}, errors.Errorf("sample %q: want MS:LEVEL", s)
	}
	ms, err := strconv.ParseUint(at, 10, 32)
	if err != nil {
		return sample{}, errors.Wrapf(err, "sample %q", s)
	}
	level, err := strconv.ParseBool(lvl)
	if err != nil {
		return sample{}, errors.Wrapf(err, "sample %q", s)
	}
	return sample{at: time.Duration(ms) * time.Millisecond, level: level}, nil
}

func runDebounce(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("debounce", flag.ContinueOnError)
	threshold := fs.Duration("threshold", 50*time.Millisecond, "How long a level must hold")
	invert := fs.Bool("invert", false, "Treat a low level as pressed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	clk := &debounce.ManualClock{}
	d := debounce.New(*threshold, clk)
	d.Invert = *invert

	var last time.Duration
	for _, a := range fs.Args() {
		s, err := parseSample(a)
		if err != nil {
			return err
		}
		if s.at < last {
			return errors.Errorf("sample %q goes back in time", a)
		}
		last = s.at
		clk.Set(s.at)
		pressed := d.Update(s.level)
		glog.V(2).Infof("t=%v level=%v state=%v", s.at, s.level, d.State())
		fmt.Fprintf(out, "%6dms level=%d state=%-14s pressed=%v\n",
			s.at.Milliseconds(), btoi(s.level), d.State(), pressed)
	}
	return nil
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
