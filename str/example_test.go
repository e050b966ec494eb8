package str_test

import (
	"fmt"

	"github.com/joshuapare/lzt/str"
)

func ExampleString_Find() {
	s := str.FromString("abcabc")
	bc := str.FromString("bc")
	fmt.Println(s.Find(bc, 0), s.RFind(bc, str.NPos), s.Find(bc, 2))
	fmt.Println(s.FindUnits([]byte("x"), 0) == str.NPos)
	// Output:
	// 1 4 4
	// true
}

func ExampleString_CStr() {
	s := str.FromString("hi")
	if err := s.AppendString(" there"); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%q\n", s.CStr())
	// Output: "hi there\x00"
}
