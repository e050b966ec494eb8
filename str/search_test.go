package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_Find(t *testing.T) {
	s := FromString("abcabc")
	bc := FromString("bc")

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"find", s.Find(bc, 0), 1},
		{"find from 2", s.Find(bc, 2), 4},
		{"find missing", s.FindUnits([]byte("x"), 0), NPos},
		{"find past end", s.Find(bc, 7), NPos},
		{"find negative", s.Find(bc, -1), NPos},
		{"find longer than s", s.FindUnits([]byte("abcabca"), 0), NPos},
		{"find empty", s.FindUnits(nil, 3), 3},
		{"find empty at end", s.FindUnits(nil, 6), 6},
		{"find empty past end", s.FindUnits(nil, 7), NPos},
		{"find unit", s.FindUnit('c', 3), 5},
		{"find unit at end", s.FindUnit('c', 6), NPos},
		{"rfind", s.RFind(bc, NPos), 4},
		{"rfind bounded", s.RFind(bc, 3), 1},
		{"rfind at start", s.RFindUnits([]byte("abc"), 0), 0},
		{"rfind missing", s.RFindUnits([]byte("ca"), 1), NPos},
		{"rfind empty", s.RFindUnits(nil, 2), 2},
		{"rfind empty clamps", s.RFindUnits(nil, NPos), 6},
		{"rfind negative", s.RFind(bc, -1), NPos},
		{"rfind unit", s.RFindUnit('a', 2), 0},
		{"rfind unit last", s.RFindUnit('a', NPos), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestString_FindSets(t *testing.T) {
	s := FromString("abcabc")

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"first of", s.FindFirstOf([]byte("cb"), 0), 1},
		{"first of from 3", s.FindFirstOf([]byte("c"), 3), 5},
		{"first of missing", s.FindFirstOf([]byte("xyz"), 0), NPos},
		{"first of empty set", s.FindFirstOf(nil, 0), NPos},
		{"first not of", s.FindFirstNotOf([]byte("ab"), 0), 2},
		{"first not of all", s.FindFirstNotOf([]byte("abc"), 0), NPos},
		{"first not of empty set", s.FindFirstNotOf(nil, 2), 2},
		{"first not of empty set at end", s.FindFirstNotOf(nil, 6), NPos},
		{"last of", s.FindLastOf([]byte("ab"), NPos), 4},
		{"last of bounded", s.FindLastOf([]byte("c"), 4), 2},
		{"last of empty set", s.FindLastOf(nil, NPos), NPos},
		{"last not of", s.FindLastNotOf([]byte("c"), NPos), 4},
		{"last not of all", s.FindLastNotOf([]byte("abc"), NPos), NPos},
		{"last not of empty set", s.FindLastNotOf(nil, NPos), 5},
		{"last not of empty set bounded", s.FindLastNotOf(nil, 2), 2},
		{"negative pos", s.FindLastOf([]byte("a"), -1), NPos},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	var empty Bytes
	assert.Equal(t, NPos, empty.FindLastNotOf(nil, NPos))
	assert.Equal(t, 0, empty.FindUnits(nil, 0))
}

func TestString_FindWideUnits(t *testing.T) {
	s := FromUnits([]uint16{1, 2, 3, 2, 3})
	assert.Equal(t, 1, s.FindUnits([]uint16{2, 3}, 0))
	assert.Equal(t, 3, s.FindUnits([]uint16{2, 3}, 2))
	assert.Equal(t, 3, s.RFindUnits([]uint16{2, 3}, NPos))
	assert.Equal(t, NPos, s.FindUnits([]uint16{3, 1}, 0))
	assert.Equal(t, 0, s.FindFirstNotOf([]uint16{2, 3}, 0))
}

func TestString_Compare(t *testing.T) {
	abc := FromString("abc")

	assert.Equal(t, 0, abc.Compare(FromString("abc")))
	assert.Equal(t, -1, abc.Compare(FromString("abd")))
	assert.Equal(t, 1, abc.Compare(FromString("abb")))
	assert.Equal(t, -1, FromString("ab").Compare(abc), "a proper prefix orders first")
	assert.Equal(t, 1, abc.CompareUnits([]byte("ab")))
	assert.Equal(t, 1, abc.CompareUnits(nil))
	assert.True(t, abc.Equal(FromString("abc")))
	assert.False(t, abc.Equal(FromString("ab")))

	got, err := abc.CompareSub(1, 2, FromString("bc"))
	assert.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = abc.CompareSub(1, NPos, FromString("b"))
	assert.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = abc.CompareSubs(0, 2, FromString("xabx"), 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = abc.CompareSub(4, 1, abc)
	assert.Error(t, err)
	_, err = abc.CompareSubs(0, 1, abc, 4, 1)
	assert.Error(t, err)
}
