package vector

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lzt"
	"github.com/joshuapare/lzt/internal/rawmem"
)

var errCtor = errors.New("element constructor failed")

// widget counts its live instances through a shared counter.
type widget struct {
	id   int
	live *int
}

func (w widget) Destroy() { *w.live-- }

func newWidget(id int, live *int) widget {
	*live++
	return widget{id: id, live: live}
}

func ids(v *Vector[widget]) []int {
	out := make([]int, 0, v.Len())
	for w := range v.Values() {
		out = append(out, w.id)
	}
	return out
}

func TestVector_AtMatchesIndex(t *testing.T) {
	v := Of(5, 6, 7, 8)
	for i := range v.Len() {
		got, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, v.Index(i), got)
	}

	_, err := v.At(v.Len())
	assert.ErrorIs(t, err, lzt.ErrOutOfRange)
	var le *lzt.Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, lzt.ErrKindOutOfRange, le.Kind)
	assert.EqualError(t, err, "vector: at: index 4 out of range [0,4)")
	_, err = v.At(-1)
	assert.ErrorIs(t, err, lzt.ErrOutOfRange)
}

func TestVector_ZeroValue(t *testing.T) {
	var v Vector[string]
	assert.True(t, v.Empty())
	require.NoError(t, v.PushBack("a"))
	assert.Equal(t, "a", v.Front())
	assert.Equal(t, "a", v.Back())
}

func TestVector_PushPop(t *testing.T) {
	v := New[int]()
	for i := range 10 {
		require.NoError(t, v.PushBack(i))
	}
	assert.Equal(t, 10, v.Len())
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, 0, v.Front())
	assert.Equal(t, 9, v.Back())

	v.PopBack()
	v.PopBack()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, v.Data())

	v.Clear()
	v.PopBack()
	assert.True(t, v.Empty())
	assert.Equal(t, 16, v.Cap(), "clear keeps capacity")
}

func TestVector_EmplaceBack(t *testing.T) {
	live := 0
	v := New[widget]()

	w, err := v.EmplaceBack(func() (widget, error) { return newWidget(1, &live), nil })
	require.NoError(t, err)
	assert.Equal(t, 1, w.id)

	w.id = 10
	assert.Equal(t, 10, v.Front().id, "returned pointer addresses the stored element")

	_, err = v.EmplaceBack(func() (widget, error) { return widget{}, errCtor })
	require.ErrorIs(t, err, errCtor)
	assert.Equal(t, 1, v.Len())
}

func TestVector_InsertEveryPosition(t *testing.T) {
	orig := []int{1, 2, 3, 4}
	for i := 0; i <= len(orig); i++ {
		v := Of(orig...)
		p, err := v.Insert(v.PosAt(i), 0)
		require.NoError(t, err)
		assert.Equal(t, i, p.Offset())
		assert.Equal(t, slices.Concat(orig[:i], []int{0}, orig[i:]), v.Data())

		_, err = v.Erase(p)
		require.NoError(t, err)
		assert.Equal(t, orig, v.Data())
	}
}

func TestVector_InsertForms(t *testing.T) {
	v := Of(1, 5)

	p, err := v.InsertN(v.Begin().Next(), 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Offset())
	assert.Equal(t, []int{1, 0, 0, 0, 5}, v.Data())

	p, err = v.InsertSlice(v.End(), 6, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Offset())
	assert.Equal(t, []int{1, 0, 0, 0, 5, 6, 7}, v.Data())

	p, err = v.InsertN(v.Begin(), 0, 9)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, 7, v.Len())

	p, err = v.Emplace(v.PosAt(1), func() (int, error) { return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 0, 0, 5, 6, 7}, v.Data())

	_, err = v.InsertSlice(v.Begin(), v.Data()[:2]...)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1, 2, 0, 0, 0, 5, 6, 7}, v.Data())
}

func TestVector_InsertOutOfRange(t *testing.T) {
	v := Of(1, 2)
	_, err := v.Insert(v.PosAt(3), 9)
	assert.ErrorIs(t, err, lzt.ErrOutOfRange)
	_, err = v.Insert(v.PosAt(-1), 9)
	assert.ErrorIs(t, err, lzt.ErrOutOfRange)
	assert.Equal(t, []int{1, 2}, v.Data())
}

// A range insert whose third element fails to construct leaves the vector
// as it was and destroys the two elements it had built.
func TestVector_InsertFuncRollback(t *testing.T) {
	live := 0
	alloc := rawmem.NewCounting[widget](nil)
	v := newWithAllocator[widget](alloc)
	for i := range 3 {
		require.NoError(t, v.PushBack(newWidget(i, &live)))
	}
	before := v.Len()

	_, err := v.InsertFunc(v.PosAt(1), 4, func(i int) (widget, error) {
		if i == 2 {
			return widget{}, errCtor
		}
		return newWidget(100+i, &live), nil
	})
	require.ErrorIs(t, err, errCtor)

	assert.Equal(t, before, v.Len())
	assert.Equal(t, []int{0, 1, 2}, ids(v))
	assert.Equal(t, 3, live, "the two constructed elements were destroyed")

	v.Release()
	assert.Zero(t, live)
	assert.Zero(t, alloc.Live())
}

func TestVector_EmplaceFailure(t *testing.T) {
	v := Of(1, 2, 3)
	p := v.PosAt(1)

	_, err := v.Emplace(p, func() (int, error) { return 0, errCtor })
	require.ErrorIs(t, err, errCtor)
	assert.Equal(t, []int{1, 2, 3}, v.Data())
}

func TestVector_Erase(t *testing.T) {
	live := 0
	v := New[widget]()
	for i := range 6 {
		require.NoError(t, v.PushBack(newWidget(i, &live)))
	}

	p, err := v.Erase(v.PosAt(2))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Offset())
	assert.Equal(t, []int{0, 1, 3, 4, 5}, ids(v))
	assert.Equal(t, 5, live)

	p, err = v.EraseRange(v.PosAt(1), v.PosAt(3))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Offset())
	assert.Equal(t, []int{0, 4, 5}, ids(v))
	assert.Equal(t, 3, live)

	_, err = v.Erase(v.End())
	assert.ErrorIs(t, err, lzt.ErrOutOfRange)

	_, err = v.EraseRange(v.PosAt(2), v.PosAt(1))
	assert.ErrorIs(t, err, lzt.ErrOutOfRange)

	p, err = v.EraseRange(v.PosAt(1), v.PosAt(1))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Offset())
	assert.Equal(t, 3, v.Len())
}

func TestVector_Resize(t *testing.T) {
	v := Of(1, 2)

	require.NoError(t, v.Resize(4))
	assert.Equal(t, []int{1, 2, 0, 0}, v.Data())

	require.NoError(t, v.ResizeWith(6, 7))
	assert.Equal(t, []int{1, 2, 0, 0, 7, 7}, v.Data())

	require.NoError(t, v.Resize(1))
	assert.Equal(t, []int{1}, v.Data())

	assert.ErrorIs(t, v.Resize(-1), lzt.ErrOutOfRange)
}

func TestVector_ReserveAndShrink(t *testing.T) {
	v := Of(1, 2, 3)
	require.NoError(t, v.Reserve(50))
	assert.Equal(t, 50, v.Cap())

	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []int{1, 2, 3}, v.Data())

	err := v.Reserve(v.MaxLen() + 1)
	assert.ErrorIs(t, err, lzt.ErrLength)
}

func TestVector_StalePositionAfterGrowth(t *testing.T) {
	v := Of(1, 2)
	p := v.Begin()

	require.NoError(t, v.PushBack(3)) // cap 2 -> 4
	_, err := v.Insert(p, 0)
	assert.ErrorIs(t, err, lzt.ErrStalePosition)
	_, err = v.Get(p)
	assert.ErrorIs(t, err, lzt.ErrStalePosition)

	q := v.Begin()
	require.NoError(t, v.PushBack(4)) // fits, no reallocation
	got, err := v.Get(q)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestVector_TakeLeavesEmptyReusableSource(t *testing.T) {
	v := Of(1, 2, 3)
	p := v.PosAt(2)

	moved := v.Take()
	assert.Equal(t, []int{1, 2, 3}, moved.Data())
	assert.Zero(t, v.Len())
	assert.Zero(t, v.Cap())

	got, err := moved.Get(p)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	require.NoError(t, v.PushBack(42))
	assert.Equal(t, []int{42}, v.Data())
	assert.Equal(t, []int{1, 2, 3}, moved.Data())
}

func TestVector_CloneIsIndependent(t *testing.T) {
	v := Of(1, 2, 3)
	c, err := v.Clone()
	require.NoError(t, err)

	require.NoError(t, c.Set(0, 100))
	assert.Equal(t, 1, v.Front())
	assert.Equal(t, 100, c.Front())
	assert.ErrorIs(t, c.Set(3, 0), lzt.ErrOutOfRange)
}

func TestVector_CloneFuncFailure(t *testing.T) {
	live := 0
	v := New[widget]()
	for i := range 4 {
		require.NoError(t, v.PushBack(newWidget(i, &live)))
	}

	copies := 0
	_, err := v.CloneFunc(func(w widget) (widget, error) {
		if copies == 2 {
			return widget{}, errCtor
		}
		copies++
		return newWidget(w.id, &live), nil
	})
	require.ErrorIs(t, err, errCtor)
	assert.Equal(t, 4, live, "partial copies destroyed")
	assert.Equal(t, []int{0, 1, 2, 3}, ids(v))
}

func TestVector_Swap(t *testing.T) {
	a, b := Of(1), Of(2, 3)
	a.Swap(b)
	assert.Equal(t, []int{2, 3}, a.Data())
	assert.Equal(t, []int{1}, b.Data())
}

func TestVector_Iterators(t *testing.T) {
	v := Of("a", "b", "c")

	var fwd []string
	for i, s := range v.All() {
		assert.Equal(t, v.Index(i), s)
		fwd = append(fwd, s)
	}
	assert.Equal(t, []string{"a", "b", "c"}, fwd)

	var back []string
	for _, s := range v.Backward() {
		back = append(back, s)
	}
	assert.Equal(t, []string{"c", "b", "a"}, back)

	var first []string
	for s := range v.Values() {
		first = append(first, s)
		break
	}
	assert.Equal(t, []string{"a"}, first)
}

func TestVector_Constructors(t *testing.T) {
	v, err := WithCapacity[int](10)
	require.NoError(t, err)
	assert.Equal(t, 10, v.Cap())
	assert.Zero(t, v.Len())

	f, err := Filled(3, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x", "x"}, f.Data())

	_, err = WithCapacity[int64](-1)
	assert.ErrorIs(t, err, lzt.ErrLength)
}

func TestVector_GrowthIsAmortized(t *testing.T) {
	const n = 1 << 14
	alloc := rawmem.NewCounting[int](nil)
	v := newWithAllocator[int](alloc)
	for i := range n {
		require.NoError(t, v.PushBack(i))
	}
	assert.Equal(t, 15, alloc.Allocs(), "1,2,4,...,16384")
	assert.Less(t, alloc.Slots(), 2*n+1)
	assert.Equal(t, 1, alloc.Live())
}
