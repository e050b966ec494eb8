package growbuf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lzt/internal/rawmem"
)

var errBoom = errors.New("constructor failed")

// tracker counts element lifetimes so tests can check for leaks.
type tracker struct {
	constructed int
	destroyed   int
}

func (tr *tracker) live() int { return tr.constructed - tr.destroyed }

// item is an element type with a Destroy hook.
type item struct {
	v  int
	tr *tracker
}

func (it item) Destroy() { it.tr.destroyed++ }

func (tr *tracker) make(v int) item {
	tr.constructed++
	return item{v: v, tr: tr}
}

// failAt returns a constructor producing base+i that fails on ordinal fail.
func (tr *tracker) failAt(base, fail int) func(int) (item, error) {
	return func(i int) (item, error) {
		if i == fail {
			return item{}, errBoom
		}
		return tr.make(base + i), nil
	}
}

func values(b *Buffer[item]) []int {
	out := make([]int, 0, b.Len())
	for _, it := range b.Live() {
		out = append(out, it.v)
	}
	return out
}

func newCounted(t *testing.T, tail int) (*Buffer[item], *rawmem.Counting[item]) {
	t.Helper()
	c := rawmem.NewCounting[item](nil)
	b := New[item](tail, c)
	return &b, c
}

func fillInts(t *testing.T, b *Buffer[int], n int) {
	t.Helper()
	for i := range n {
		require.NoError(t, b.PushBack(i))
	}
}
