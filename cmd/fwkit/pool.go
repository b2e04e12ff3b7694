package main

import (
	"flag"
	"fmt"
	"io"

	"Firmware/mempool"

	"github.com/golang/glog"
)

func runPool(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("pool", flag.ContinueOnError)
	blocks := fs.Int("blocks", 10, "Number of blocks")
	size := fs.Int("size", 64, "Block size in bytes")
	alloc := fs.Int("alloc", 0, "Blocks to allocate before reporting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := mempool.New(*blocks, *size)
	if err != nil {
		return err
	}
	for i := 0; i < *alloc; i++ {
		if _, err := p.Alloc(); err != nil {
			glog.Warningf("allocation %d of %d failed: %v", i+1, *alloc, err)
			fmt.Fprintf(out, "allocation %d failed: %v\n", i+1, err)
			break
		}
	}

	fmt.Fprint(out, p.MemReport().String())
	fmt.Fprintf(out, "in use: %d/%d blocks\n", p.InUse(), p.Blocks())
	return nil
}
