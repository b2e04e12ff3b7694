package bitstream

// cursor tracks the next free bit of a packing run. off counts down from the
// most significant bit (7) to 0.
type cursor struct {
	dst []byte
	idx int
	off int
}

func newCursor(dst []byte) cursor {
	return cursor{dst: dst, off: 7}
}

// write emits the low width bits of v, starting with bit width-1.
// A byte is cleared when the cursor first enters it.
func (c *cursor) write(v byte, width int) {
	for i := width - 1; i >= 0; i-- {
		if c.off == 7 {
			c.dst[c.idx] = 0
		}
		c.dst[c.idx] |= ((v >> uint(i)) & 1) << uint(c.off)
		c.off--
		if c.off < 0 {
			c.idx++
			c.off = 7
		}
	}
}

// bitsWritten returns the number of bits emitted so far.
func (c *cursor) bitsWritten() int {
	return c.idx*8 + (7 - c.off)
}
