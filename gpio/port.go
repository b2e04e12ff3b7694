// Package gpio models a memory-mapped GPIO port register block. Hardware
// state lives in a Port value that callers pass around explicitly.
package gpio

import (
	"fmt"

	"Firmware/bits"

	"github.com/pkg/errors"
)

const NumPins = 16

var ErrInvalidPin = errors.New("gpio: invalid pin")

// Mode is the two-bit MODER field of a pin.
type Mode uint32

const (
	ModeInput Mode = iota
	ModeOutput
	ModeAlternate
	ModeAnalog
)

// Registers mirrors the port's register layout, in address order.
type Registers struct {
	MODER   uint32 // 0x00
	OTYPER  uint32 // 0x04
	OSPEEDR uint32 // 0x08
	PUPDR   uint32 // 0x0C
	IDR     uint32 // 0x10
	ODR     uint32 // 0x14
}

type Port struct {
	Base uintptr
	regs Registers
}

func NewPort(base uintptr) *Port {
	return &Port{Base: base}
}

// Registers returns a snapshot of the register block.
func (p *Port) Registers() Registers {
	return p.regs
}

// WriteBSRR applies a bit set/reset write: the low half sets ODR bits, the
// high half clears them. Set wins when both halves name the same pin.
func (p *Port) WriteBSRR(v uint32) {
	reset := v >> 16
	set := v & 0xFFFF
	p.regs.ODR = (p.regs.ODR &^ reset) | set
}

// DriveInput sets the sampled input level of pin n, standing in for the
// outside world.
func (p *Port) DriveInput(n int, high bool) {
	if n < 0 || n >= NumPins {
		return
	}
	if high {
		p.regs.IDR = bits.SetBit(p.regs.IDR, uint(n))
	} else {
		p.regs.IDR = bits.ClearBit(p.regs.IDR, uint(n))
	}
}

// Pin is one line of a port.
type Pin struct {
	port *Port
	n    uint
}

func (p *Port) Pin(n int) (Pin, error) {
	if n < 0 || n >= NumPins {
		return Pin{}, errors.Wrapf(ErrInvalidPin, "pin %d not in [0, %d)", n, NumPins)
	}
	return Pin{port: p, n: uint(n)}, nil
}

func (p Pin) Mask() uint32 {
	return 1 << p.n
}

func (p Pin) SetMode(m Mode) {
	shift := 2 * p.n
	p.port.regs.MODER = p.port.regs.MODER&^(3<<shift) | uint32(m&3)<<shift
}

func (p Pin) Mode() Mode {
	return Mode(p.port.regs.MODER>>(2*p.n)) & 3
}

func (p Pin) SetOutput() {
	p.SetMode(ModeOutput)
}

func (p Pin) On() {
	p.port.WriteBSRR(p.Mask())
}

func (p Pin) Off() {
	p.port.WriteBSRR(p.Mask() << 16)
}

func (p Pin) Toggle() {
	if p.IsHigh() {
		p.Off()
	} else {
		p.On()
	}
}

// IsHigh reports the driven output level.
func (p Pin) IsHigh() bool {
	return bits.IsBitSet(p.port.regs.ODR, p.n)
}

// Read reports the sampled input level.
func (p Pin) Read() bool {
	return bits.IsBitSet(p.port.regs.IDR, p.n)
}

func (p Pin) String() string {
	return fmt.Sprintf("%#x:%d", p.port.Base, p.n)
}
