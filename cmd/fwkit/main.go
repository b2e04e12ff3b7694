// Command fwkit runs the firmware kit packages from the command line.
//
//	fwkit pack -width 5 AE 0D
//	fwkit debounce -threshold 50ms 10:1 20:0 100:1 160:1
//	fwkit coffee -water 100 -step 300ms
//	fwkit pool -blocks 10 -size 64 -alloc 3
//
// Global flags (-v, -logtostderr, ...) configure glog and go before the
// subcommand.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
)

type command struct {
	name  string
	usage string
	run   func(args []string, out io.Writer) error
}

var commands = []command{
	{"pack", "pack -width N HEX...      pack the low N bits of each symbol", runPack},
	{"debounce", "debounce -threshold D MS:LEVEL...  replay button samples", runDebounce},
	{"coffee", "coffee [-water P] [-step D]  simulate a brew cycle", runCoffee},
	{"pool", "pool -blocks N -size B [-alloc K]  report block pool usage", runPool},
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: fwkit [glog flags] <command> [flags] [args]\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %s\n", c.usage)
	}
}

func main() {
	flag.Usage = usage
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	name, args := flag.Arg(0), flag.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		glog.V(1).Infof("running %s %v", name, args)
		if err := c.run(args, os.Stdout); err != nil {
			glog.Flush()
			fail("%s: %v", name, err)
		}
		return
	}
	usage()
	os.Exit(2)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
