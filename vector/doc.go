// Package vector provides Vector, a contiguous dynamic array.
//
// # Overview
//
// A Vector keeps its elements in one block of storage that grows
// geometrically: appending N elements one at a time reallocates O(log N)
// times and moves O(N) elements in total.
//
//	v := vector.Of(1, 2, 3)
//	if err := v.PushBack(4); err != nil {
//	    return err
//	}
//	pos, err := v.Insert(v.Begin().Add(1), 9) // [1 9 2 3 4]
//
// # Access
//
// At is bounds-checked and returns lzt.ErrOutOfRange. Index, Ref, Front and
// Back are unchecked: calling them outside [0, Len()) is a caller bug.
//
// # Positions
//
// Pos values returned by Begin, End, PosAt, Insert, Emplace and Erase name a
// slot in the current storage. Any reallocation (growth, Reserve,
// ShrinkToFit) invalidates every outstanding Pos; passing one afterwards fails
// with lzt.ErrStalePosition. Take moves the storage, so positions stay valid
// on the vector it returns.
//
// # Thread Safety
//
// Vector is not safe for concurrent use.
package vector
