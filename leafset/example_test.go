// SPDX-License-Identifier: MIT
package leafset_test

import (
	"fmt"

	"github.com/katalvlaran/symta/leafset"
)

// ExampleUnionOrAbsorb demonstrates the sink-absorbing union used to merge
// two bottom-up automaton leaves.
func ExampleUnionOrAbsorb() {
	const sink = 0
	absent := leafset.Singleton(sink)
	ps := leafset.Of(1, 2)

	fmt.Println(leafset.UnionOrAbsorb(absent, ps, sink).Key())
	fmt.Println(leafset.UnionOrAbsorb(ps, leafset.Of(2, 3), sink).Key())

	// Output:
	// {1,2}
	// {1,2,3}
}
