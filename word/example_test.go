package word_test

import (
	"fmt"

	"github.com/qmonoid/rookzero/code"
	"github.com/qmonoid/rookzero/word"
)

// ExampleCanonize collapses a wandering word to its canonical form.
func ExampleCanonize() {
	canon, _ := word.Canonize(word.Word{1, 0, 1, 0})
	fmt.Println(canon)

	// Output:
	// [0,1,0]
}

// ExampleFromCode reads the canonical word off the all-cleared rank-2
// code.
func ExampleFromCode() {
	w, _ := word.FromCode(code.Code{0, 0})
	fmt.Println(w)

	// Output:
	// [0,1,0]
}

// ExampleIsActionReduced contrasts a reduced word with one whose
// second letter goes nowhere.
func ExampleIsActionReduced() {
	ok, _ := word.IsActionReduced(word.Word{1, 0, 1, 0})
	fmt.Println(ok)

	ok, _ = word.IsActionReduced(word.Word{0, 0})
	fmt.Println(ok)

	// Output:
	// true
	// false
}
