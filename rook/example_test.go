package rook_test

import (
	"fmt"

	"github.com/qmonoid/rookzero/rook"
)

// ExampleAct demonstrates the two generator behaviours: π(0) clears the
// first position, while π(2) sorts positions (2,3) into weakly
// decreasing order.
func ExampleAct() {
	r := rook.Rook{2, 0, 3, 0, 4}

	cleared, _ := rook.Act(r, 0)
	fmt.Println(cleared)

	sorted, _ := rook.Act(r, 2)
	fmt.Println(sorted)

	// Output:
	// (0,0,3,0,4)
	// (2,3,0,0,4)
}

// ExampleIdentity prints the unit placement of rank 4.
func ExampleIdentity() {
	fmt.Println(rook.Identity(4))

	// Output:
	// (1,2,3,4)
}

// ExampleValidate shows the sentinel returned for a duplicated value.
func ExampleValidate() {
	err := rook.Validate(rook.Rook{3, 0, 3})
	fmt.Println(err)

	// Output:
	// rook: duplicate nonzero entry: value 3 occurs twice
}
