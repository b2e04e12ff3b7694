// Package sched tracks which task priorities are ready to run and picks the
// highest one in constant time.
package sched

import (
	"Firmware/bits"

	"github.com/pkg/errors"
)

// NumPriorities is the number of priority levels; 31 is the highest.
const NumPriorities = 32

var ErrInvalidPriority = errors.New("sched: invalid priority")

// ReadyMap is a ready-task bitmap. Bit p is set when a task at priority p is
// runnable. The zero value has no ready tasks.
type ReadyMap struct {
	bitmap uint32
}

func checkPriority(p int) error {
	if p < 0 || p >= NumPriorities {
		return errors.Wrapf(ErrInvalidPriority, "priority %d not in [0, %d)", p, NumPriorities)
	}
	return nil
}

func (m *ReadyMap) SetReady(p int) error {
	if err := checkPriority(p); err != nil {
		return err
	}
	m.bitmap = bits.SetBit(m.bitmap, uint(p))
	return nil
}

func (m *ReadyMap) ClearReady(p int) error {
	if err := checkPriority(p); err != nil {
		return err
	}
	m.bitmap = bits.ClearBit(m.bitmap, uint(p))
	return nil
}

func (m *ReadyMap) IsReady(p int) bool {
	if checkPriority(p) != nil {
		return false
	}
	return bits.IsBitSet(m.bitmap, uint(p))
}

// Highest returns the highest ready priority, or -1 and false when nothing
// is ready.
func (m *ReadyMap) Highest() (int, bool) {
	p := bits.MostSignificantBit32(m.bitmap)
	return p, p >= 0
}

// Ready lists ready priorities from highest to lowest.
func (m *ReadyMap) Ready() []int {
	out := make([]int, 0, bits.CountSetBits(m.bitmap))
	for rest := m.bitmap; rest != 0; {
		p := bits.MostSignificantBit32(rest)
		out = append(out, p)
		rest = bits.ClearBit(rest, uint(p))
	}
	return out
}

func (m *ReadyMap) Len() int {
	return bits.CountSetBits(m.bitmap)
}

// Bitmap returns the raw ready word.
func (m *ReadyMap) Bitmap() uint32 {
	return m.bitmap
}
