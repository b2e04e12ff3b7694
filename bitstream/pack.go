// Package bitstream packs the low-order bits of byte symbols into a dense,
// MSB-first bit stream.
//
// Each symbol contributes exactly width bits. Symbols are laid out back to
// back with no padding between them; only the final byte is zero-padded.
// With width 5 the input [0xAE, 0x0D] becomes [0x73, 0x40]:
//
//	0xAE & 0x1F = 01110
//	0x0D & 0x1F = 01101
//	01110011 01000000
//
// Packing works on caller-owned buffers and never allocates.
package bitstream

import (
	"Firmware/bits"
	"Firmware/errutil"

	"github.com/pkg/errors"
)

const (
	MinWidth = 1
	MaxWidth = 8
)

var (
	// ErrInvalidWidth indicates a bit width outside [MinWidth, MaxWidth].
	ErrInvalidWidth = errors.New("bitstream: invalid bit width")
	// ErrBufferTooSmall indicates the output buffer cannot hold the packed stream.
	ErrBufferTooSmall = errors.New("bitstream: output buffer too small")
)

// ValidWidth reports whether width can be used for packing.
func ValidWidth(width int) error {
	if width < MinWidth || width > MaxWidth {
		return errors.Wrapf(ErrInvalidWidth, "width %d not in [%d, %d]", width, MinWidth, MaxWidth)
	}
	return nil
}

// PackedLen returns the number of bytes n symbols of the given width occupy,
// ceil(n*width/8). The width is not validated.
func PackedLen(n, width int) int {
	return (n*width + 7) / 8
}

// Pack writes the low width bits of every symbol in src into dst, most
// significant bit first, and returns the number of bytes written.
//
// len(dst) is the capacity of the output. Preconditions are checked before
// dst is touched, so a failed call leaves dst unchanged. The unused low bits
// of the last written byte are cleared; bytes past the returned count are
// never written.
func Pack(dst, src []byte, width int) (int, error) {
	if err := ValidWidth(width); err != nil {
		return 0, err
	}
	n := PackedLen(len(src), width)
	if len(dst) < n {
		return 0, errors.Wrapf(ErrBufferTooSmall, "need %d bytes, have %d", n, len(dst))
	}

	mask := bits.LowMask(width)
	c := newCursor(dst[:n])
	for _, s := range src {
		c.write(s&mask, width)
	}
	if c.bitsWritten() != len(src)*width {
		errutil.Bug("wrote %d bits, want %d", c.bitsWritten(), len(src)*width)
	}
	return n, nil
}

// Packer packs with a fixed, pre-validated width.
type Packer struct {
	width int
}

func NewPacker(width int) (Packer, error) {
	if err := ValidWidth(width); err != nil {
		return Packer{}, err
	}
	return Packer{width: width}, nil
}

func (p Packer) Width() int {
	return p.width
}

// PackedLen returns the packed size of n symbols.
func (p Packer) PackedLen(n int) int {
	return PackedLen(n, p.width)
}

// Pack is Pack(dst, src, p.Width()).
func (p Packer) Pack(dst, src []byte) (int, error) {
	return Pack(dst, src, p.width)
}
