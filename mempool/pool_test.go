package mempool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocUntilExhausted(t *testing.T) {
	t.Parallel()
	p, err := New(10, 64)
	require.NoError(t, err)

	got := make([]*Block, 0, 10)
	for i := 0; i < 10; i++ {
		b, err := p.Alloc()
		require.NoError(t, err)
		require.Equal(t, i, b.Index())
		require.Len(t, b.Data, 64)
		got = append(got, b)
	}
	require.Equal(t, 10, p.InUse())
	require.Zero(t, p.Available())

	_, err = p.Alloc()
	require.ErrorIs(t, err, ErrExhausted)

	require.NoError(t, p.Free(got[3]))
	b, err := p.Alloc()
	require.NoError(t, err)
	require.Equal(t, 3, b.Index(), "lowest free block is reused")
}

func TestAllocZeroesBlock(t *testing.T) {
	t.Parallel()
	p, err := New(1, 8)
	require.NoError(t, err)

	b, err := p.Alloc()
	require.NoError(t, err)
	for i := range b.Data {
		b.Data[i] = 0xFF
	}
	require.NoError(t, p.Free(b))

	b, err = p.Alloc()
	require.NoError(t, err)
	require.Equal(t, make([]byte, 8), b.Data)
}

func TestBlocksDoNotOverlap(t *testing.T) {
	t.Parallel()
	p, err := New(3, 4)
	require.NoError(t, err)

	a, _ := p.Alloc()
	b, _ := p.Alloc()
	for i := range a.Data {
		a.Data[i] = 0xAA
	}
	require.Equal(t, make([]byte, 4), b.Data)
	require.Equal(t, 4, cap(a.Data), "appending must not spill into the next block")
}

func TestFreeErrors(t *testing.T) {
	t.Parallel()
	p, err := New(2, 4)
	require.NoError(t, err)
	other, err := New(2, 4)
	require.NoError(t, err)

	b, err := p.Alloc()
	require.NoError(t, err)
	ob, err := other.Alloc()
	require.NoError(t, err)

	require.ErrorIs(t, p.Free(nil), ErrForeignBlock)
	require.ErrorIs(t, p.Free(ob), ErrForeignBlock)
	require.ErrorIs(t, p.Free(&Block{}), ErrForeignBlock)

	require.NoError(t, p.Free(b))
	require.ErrorIs(t, p.Free(b), ErrDoubleFree)
}

func TestInvalidSize(t *testing.T) {
	t.Parallel()
	_, err := New(0, 64)
	require.ErrorIs(t, err, ErrInvalidSize)
	_, err = New(4, 0)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestMemReport(t *testing.T) {
	t.Parallel()
	p, err := New(10, 64)
	require.NoError(t, err)

	r := p.MemReport()
	require.Equal(t, "mempool", r.Name)
	require.Len(t, r.Children, 2)
	require.Equal(t, 640, r.Children[0].TotalBytes)
	require.Equal(t, 8, r.Children[1].TotalBytes)
	require.Equal(t, r.ChildrenBytes(), r.TotalBytes)
	require.Equal(t, 10, p.Blocks())
	require.Equal(t, 64, p.BlockSize())
}
