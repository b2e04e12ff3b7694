// Package mempool hands out fixed-size blocks from storage reserved up
// front. Allocation never grows the pool: once every block is in use, Alloc
// fails until a block is freed.
package mempool

import (
	"Firmware/utils"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

var (
	ErrExhausted    = errors.New("mempool: no free blocks")
	ErrForeignBlock = errors.New("mempool: block does not belong to this pool")
	ErrDoubleFree   = errors.New("mempool: block already free")
	ErrInvalidSize  = errors.New("mempool: invalid pool size")
)

// Block is one allocation. Data aliases the pool's storage and must not be
// used after Free.
type Block struct {
	Data []byte

	pool  *Pool
	index uint
}

func (b *Block) Index() int {
	return int(b.index)
}

type Pool struct {
	storage   []byte
	blockSize int
	blocks    []Block
	used      *bitset.BitSet
}

func New(blocks, blockSize int) (*Pool, error) {
	if blocks <= 0 || blockSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%d blocks of %d bytes", blocks, blockSize)
	}
	p := &Pool{
		storage:   make([]byte, blocks*blockSize),
		blockSize: blockSize,
		blocks:    make([]Block, blocks),
		used:      bitset.New(uint(blocks)),
	}
	for i := range p.blocks {
		off := i * blockSize
		p.blocks[i] = Block{
			Data:  p.storage[off : off+blockSize : off+blockSize],
			pool:  p,
			index: uint(i),
		}
	}
	return p, nil
}

// Alloc returns the lowest-indexed free block with its contents zeroed.
func (p *Pool) Alloc() (*Block, error) {
	i, ok := p.used.NextClear(0)
	if !ok || i >= uint(len(p.blocks)) {
		return nil, ErrExhausted
	}
	p.used.Set(i)
	b := &p.blocks[i]
	for j := range b.Data {
		b.Data[j] = 0
	}
	return b, nil
}

func (p *Pool) Free(b *Block) error {
	if b == nil || b.pool != p || b.index >= uint(len(p.blocks)) {
		return ErrForeignBlock
	}
	if !p.used.Test(b.index) {
		return errors.Wrapf(ErrDoubleFree, "block %d", b.index)
	}
	p.used.Clear(b.index)
	return nil
}

func (p *Pool) InUse() int {
	return int(p.used.Count())
}

func (p *Pool) Available() int {
	return len(p.blocks) - p.InUse()
}

func (p *Pool) Blocks() int {
	return len(p.blocks)
}

func (p *Pool) BlockSize() int {
	return p.blockSize
}

// MemReport describes the pool's static footprint.
func (p *Pool) MemReport() utils.MemReport {
	storage := utils.MemReport{Name: "storage", TotalBytes: len(p.storage)}
	inUse := utils.MemReport{Name: "in-use map", TotalBytes: len(p.used.Bytes()) * 8}
	return utils.MemReport{
		Name:       "mempool",
		TotalBytes: storage.TotalBytes + inUse.TotalBytes,
		Children:   []utils.MemReport{storage, inUse},
	}
}
