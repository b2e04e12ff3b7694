package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"strings"

	"Firmware/bitstream"
	"Firmware/utils"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// parseSymbols reads hex symbols given one per argument ("AE", "0x0d", "7")
// or run together ("AE0D").
func parseSymbols(args []string) ([]byte, error) {
	norm := utils.Map(args, func(a string) string {
		a = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(a)), "0x")
		if len(a) == 1 {
			a = "0" + a
		}
		return a
	})
	src, err := hex.DecodeString(strings.Join(norm, ""))
	if err != nil {
		return nil, errors.Wrap(err, "bad hex symbols")
	}
	return src, nil
}

func runPack(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("pack", flag.ContinueOnError)
	width := fs.Int("width", 5, "Bits kept from each symbol, 1..8")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := bitstream.NewPacker(*width)
	if err != nil {
		return err
	}
	src, err := parseSymbols(fs.Args())
	if err != nil {
		return err
	}

	dst := make([]byte, p.PackedLen(len(src)))
	n, err := p.Pack(dst, src)
	if err != nil {
		return err
	}
	glog.V(2).Infof("packed %d symbols at width %d into %d bytes", len(src), p.Width(), n)

	fmt.Fprintf(out, "packed:      % X\n", dst[:n])
	fmt.Fprintf(out, "size:        %s -> %s (%d bits, width %d)\n",
		humanize.Bytes(uint64(len(src))), humanize.Bytes(uint64(n)), len(src)*p.Width(), p.Width())
	if len(src) > 0 {
		fmt.Fprintf(out, "saved:       %s%%\n", humanize.FtoaWithDigits(100*float64(len(src)-n)/float64(len(src)), 1))
	}
	fmt.Fprintf(out, "fingerprint: %016x\n", bitstream.Fingerprint(dst[:n], len(src), p.Width()))
	return nil
}
