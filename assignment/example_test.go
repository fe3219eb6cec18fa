// SPDX-License-Identifier: MIT
package assignment_test

import (
	"fmt"

	"github.com/katalvlaran/symta/assignment"
)

// ExampleAssignment demonstrates building a ternary vector and enumerating
// its concrete completions.
func ExampleAssignment() {
	a := assignment.MustNew(4)
	a.SetI(0, assignment.Zero)
	a.SetI(1, assignment.Star)
	a.SetI(2, assignment.One)
	a.SetI(3, assignment.Star)

	fmt.Println("assignment:", a.String())

	for c := range a.Enumerate() {
		fmt.Println("completion:", c.String())
	}

	// Output:
	// assignment: 0X1X
	// completion: 0010
	// completion: 0110
	// completion: 0011
	// completion: 0111
}
