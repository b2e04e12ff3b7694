package bitstream

// unpack reverses Pack for tests: it reads n symbols of the given width from
// an MSB-first stream.
func unpack(packed []byte, n, width int) []byte {
	out := make([]byte, n)
	pos := 0
	for i := 0; i < n; i++ {
		var v byte
		for j := 0; j < width; j++ {
			bit := (packed[pos/8] >> uint(7-pos%8)) & 1
			v = v<<1 | bit
			pos++
		}
		out[i] = v
	}
	return out
}

func filled(n int, b byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	return buf
}
