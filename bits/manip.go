package bits

import "math/bits"

// Register-style helpers on 32-bit words. Positions outside [0, 31] leave the
// word unchanged.

func SetBit(v uint32, pos uint) uint32 {
	if pos >= 32 {
		return v
	}
	return v | 1<<pos
}

func ClearBit(v uint32, pos uint) uint32 {
	if pos >= 32 {
		return v
	}
	return v &^ (1 << pos)
}

func ToggleBit(v uint32, pos uint) uint32 {
	if pos >= 32 {
		return v
	}
	return v ^ 1<<pos
}

func IsBitSet(v uint32, pos uint) bool {
	if pos >= 32 {
		return false
	}
	return (v>>pos)&1 == 1
}

// CountSetBits returns the Hamming weight of v.
func CountSetBits(v uint32) int {
	return bits.OnesCount32(v)
}

// SwapEndian32 reverses the byte order of v: 0x12345678 -> 0x78563412.
func SwapEndian32(v uint32) uint32 {
	return (v>>24)&0x000000FF |
		(v>>8)&0x0000FF00 |
		(v<<8)&0x00FF0000 |
		(v<<24)&0xFF000000
}

// LowMask returns a byte with the low width bits set. Widths above 8 saturate.
func LowMask(width int) byte {
	if width <= 0 {
		return 0
	}
	if width >= 8 {
		return 0xFF
	}
	return byte(1<<width) - 1
}
