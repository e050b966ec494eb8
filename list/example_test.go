package list_test

import (
	"fmt"

	"github.com/joshuapare/lzt/list"
)

func ExampleList() {
	l := list.New[int]()
	_ = l.PushBack(1)
	_ = l.PushBack(2)
	_ = l.PushFront(0)
	for v := range l.Values() {
		fmt.Print(v, " ")
	}
	fmt.Println(l.Len())

	l.PopBack()
	for v := range l.Values() {
		fmt.Print(v, " ")
	}
	fmt.Println(l.Len())
	// Output:
	// 0 1 2 3
	// 0 1 2
}
