package bitstream

import "github.com/zeebo/xxh3"

// Fingerprint hashes a packed frame together with the parameters that
// produced it, so frames with equal bytes but different widths or symbol
// counts do not collide.
func Fingerprint(packed []byte, symbols, width int) uint64 {
	h := xxh3.New()
	var hdr [9]byte
	hdr[0] = byte(width)
	for i := 0; i < 8; i++ {
		hdr[1+i] = byte(uint64(symbols) >> (8 * i))
	}
	_, _ = h.Write(hdr[:])
	_, _ = h.Write(packed)
	return h.Sum64()
}
