package bits

import "testing"

func TestMostSignificantBit(t *testing.T) {
	t.Parallel()
	if MostSignificantBit(0) != -1 {
		t.Fatal("MostSignificantBit(0) failed")
	}
	if MostSignificantBit(1) != 0 {
		t.Fatal("MostSignificantBit(1) failed")
	}
	if MostSignificantBit(0x1000) != 12 {
		t.Fatal("MostSignificantBit(0x1000) failed")
	}
	if MostSignificantBit(^uint64(0)) != 63 {
		t.Fatal("MostSignificantBit(max) failed")
	}
	if MostSignificantBit32(0) != -1 {
		t.Fatal("MostSignificantBit32(0) failed")
	}
	if MostSignificantBit32(0x1024) != 12 {
		t.Fatal("MostSignificantBit32(0x1024) failed")
	}
	if MostSignificantBit32(0x80000000) != 31 {
		t.Fatal("MostSignificantBit32(1<<31) failed")
	}
}
