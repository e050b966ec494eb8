// Package list provides List, a doubly linked list.
//
// Nodes live in an arena owned by the list and link to each other by slot
// index. Two permanent sentinel slots mark the ends: slot 0 before the first
// element and slot 1 after the last, with the chain closed into a ring through
// them. Removed slots go on a free stack and are reused by later insertions.
//
//	l := list.New[int]()
//	_ = l.PushBack(1)
//	_ = l.PushBack(2)
//	_ = l.PushFront(0)
//	for v := range l.Values() {
//	    fmt.Println(v) // 0 1 2
//	}
//
// # Positions
//
// A Pos names one node and carries that node's generation. Erasing the node
// bumps the generation, so only positions of removed nodes go stale; every
// other Pos survives insertion, erasure elsewhere and arena growth. Passing a
// stale Pos fails with lzt.ErrStalePosition. Take moves the arena, so
// positions stay valid on the list it returns.
//
// # Access
//
// Front and Back return the zero value on an empty list; callers check Empty
// first. Pos.Value is checked.
//
// # Thread Safety
//
// List is not safe for concurrent use.
package list
