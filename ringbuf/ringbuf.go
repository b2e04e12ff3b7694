// Package ringbuf is a fixed-capacity byte FIFO over a single backing array.
//
// One slot is always left empty to tell a full ring from an empty one, so a
// ring over n bytes holds at most n-1 values. Rings are not safe for
// concurrent use.
package ringbuf

import (
	"Firmware/errutil"

	"github.com/pkg/errors"
)

var (
	ErrEmpty           = errors.New("ringbuf: empty")
	ErrFull            = errors.New("ringbuf: full")
	ErrInvalidCapacity = errors.New("ringbuf: invalid capacity")
)

type Ring struct {
	buf  []byte
	head int // oldest element
	tail int // next free slot
	mask int // len(buf)-1 when len(buf) is a power of two, else 0
}

// New allocates a ring over capacity bytes.
func New(capacity int) (*Ring, error) {
	if capacity < 2 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d < 2", capacity)
	}
	return NewFrom(make([]byte, capacity))
}

// NewFrom builds a ring over caller-provided storage. The ring owns mem
// until it is discarded.
func NewFrom(mem []byte) (*Ring, error) {
	if len(mem) < 2 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d < 2", len(mem))
	}
	r := &Ring{buf: mem}
	if len(mem)&(len(mem)-1) == 0 {
		r.mask = len(mem) - 1
	}
	return r, nil
}

func (r *Ring) next(i int) int {
	if r.mask != 0 {
		return (i + 1) & r.mask
	}
	return (i + 1) % len(r.buf)
}

// Push appends b at the tail.
func (r *Ring) Push(b byte) error {
	next := r.next(r.tail)
	if next == r.head {
		return ErrFull
	}
	r.buf[r.tail] = b
	r.tail = next
	return nil
}

// Pop removes and returns the oldest value.
func (r *Ring) Pop() (byte, error) {
	if r.head == r.tail {
		return 0, ErrEmpty
	}
	b := r.buf[r.head]
	r.head = r.next(r.head)
	return b, nil
}

// Peek returns the oldest value without removing it.
func (r *Ring) Peek() (byte, error) {
	if r.head == r.tail {
		return 0, ErrEmpty
	}
	return r.buf[r.head], nil
}

// Write pushes bytes from p until the ring fills and returns how many were
// stored. It returns ErrFull if p did not fit.
func (r *Ring) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := r.Push(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Read pops up to len(p) bytes into p. It returns ErrEmpty only when nothing
// was available.
func (r *Ring) Read(p []byte) (int, error) {
	if r.IsEmpty() && len(p) > 0 {
		return 0, ErrEmpty
	}
	n := 0
	for n < len(p) {
		b, err := r.Pop()
		if err != nil {
			break
		}
		p[n] = b
		n++
	}
	return n, nil
}

// Len returns the number of stored values.
func (r *Ring) Len() int {
	n := r.tail - r.head
	if n < 0 {
		n += len(r.buf)
	}
	errutil.BugOn(n >= len(r.buf), "ring length %d exceeds storage %d", n, len(r.buf))
	return n
}

// Cap returns the number of values the ring can hold.
func (r *Ring) Cap() int {
	return len(r.buf) - 1
}

func (r *Ring) IsEmpty() bool {
	return r.head == r.tail
}

func (r *Ring) IsFull() bool {
	return r.next(r.tail) == r.head
}

// Reset drops all stored values.
func (r *Ring) Reset() {
	r.head = 0
	r.tail = 0
}
