// Package lzt is a small generic container library built around explicit
// storage management.
//
// # Overview
//
// The library provides three containers:
//
//   - vector.Vector[T]: a contiguous, geometrically growing dynamic array
//   - str.String[U]: a dynamic string of code units that keeps a zero
//     terminator after its last unit
//   - list.List[T]: a doubly linked list with permanent head and tail
//     sentinels, stored in an index arena
//
// Vector and String share one growable buffer (internal/growbuf) that owns a
// raw region from an allocator, tracks a live length, grows by doubling and
// shifts elements on positional insert and erase.
//
// # Element Lifecycle
//
// Storing a value is construction, removing it is destruction. Elements that
// implement Destroyer have Destroy called exactly once when they leave a
// container through erase, pop, clear, resize, release, or rollback of a
// failed insert. Relocation during growth and shifting is a move and never
// calls Destroy.
//
// Constructors passed to the Emplace and InsertFunc families return
// (T, error). When one fails the container rolls back: elements constructed
// by the same call are destroyed and the container is left as it was before
// the call. Storage growth that happened before the failure is kept.
//
// # Positions
//
// Positions are values that name a slot. Buffer positions record the identity
// of the storage they were taken from; a reallocation gives the container new
// storage and every older position reports ErrStalePosition. List positions
// carry a slot generation; erasing a node invalidates only positions naming
// that node.
//
// # Errors
//
// Recoverable failures are *Error values with a Kind. Match them with
// errors.Is against ErrOutOfRange, ErrLength and ErrStalePosition:
//
//	if _, err := v.At(10); errors.Is(err, lzt.ErrOutOfRange) {
//	    // index beyond Len()
//	}
//
// Unchecked accessors (Index, Ref, Front, Back) do not validate their input.
// Calling them outside the live range is a caller bug.
//
// # Thread Safety
//
// No container is safe for concurrent use. Callers must synchronize access
// externally.
package lzt
