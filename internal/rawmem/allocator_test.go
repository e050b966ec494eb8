package rawmem

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lzt"
)

func TestMaxLen(t *testing.T) {
	assert.Equal(t, math.MaxInt, MaxLen[byte]())
	assert.Equal(t, math.MaxInt/8, MaxLen[int64]())
	assert.Equal(t, math.MaxInt, MaxLen[struct{}]())
}

func TestHeap_Allocate(t *testing.T) {
	var h Heap[int]

	block, err := h.Allocate(8)
	require.NoError(t, err)
	require.Len(t, block, 8)
	for _, v := range block {
		assert.Zero(t, v)
	}

	empty, err := h.Allocate(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestHeap_AllocateTooLarge(t *testing.T) {
	var h Heap[int64]

	_, err := h.Allocate(MaxLen[int64]() + 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, lzt.ErrLength), "want ErrLength, got %v", err)

	_, err = h.Allocate(-1)
	assert.ErrorIs(t, err, lzt.ErrLength)
}

func TestHeap_DeallocateClears(t *testing.T) {
	var h Heap[*int]
	block, err := h.Allocate(2)
	require.NoError(t, err)
	x := 1
	block[0], block[1] = &x, &x

	h.Deallocate(block)
	assert.Nil(t, block[0])
	assert.Nil(t, block[1])
}

func TestCounting_TracksBlocks(t *testing.T) {
	c := NewCounting[int](nil)

	a, err := c.Allocate(4)
	require.NoError(t, err)
	b, err := c.Allocate(8)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Allocs())
	assert.Equal(t, 12, c.Slots())
	assert.Equal(t, 2, c.Live())
	assert.True(t, c.Owns(a))
	assert.False(t, c.Owns(a[:2]), "a prefix is not the block that was handed out")

	c.Deallocate(a)
	c.Deallocate(nil)
	assert.Equal(t, 1, c.Frees())
	assert.Equal(t, 1, c.Live())
	assert.False(t, c.Owns(a))

	c.Deallocate(b)
	assert.Zero(t, c.Live())
}

func TestCounting_FailedAllocationNotCounted(t *testing.T) {
	c := NewCounting[int](NewBudget[int](nil, 4))

	_, err := c.Allocate(5)
	require.ErrorIs(t, err, ErrExhausted)
	assert.Zero(t, c.Allocs())
	assert.Zero(t, c.Live())
}

func TestBudget(t *testing.T) {
	b := NewBudget[string](nil, 10)

	first, err := b.Allocate(6)
	require.NoError(t, err)
	assert.Equal(t, 6, b.Used())

	_, err = b.Allocate(5)
	require.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 6, b.Used(), "failed allocation must not consume budget")

	b.Deallocate(first)
	assert.Zero(t, b.Used())

	_, err = b.Allocate(10)
	require.NoError(t, err)

	b.SetLimit(100)
	_, err = b.Allocate(50)
	require.NoError(t, err)
	assert.Equal(t, 60, b.Used())
}
