// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/symta/automaton"
	"github.com/katalvlaran/symta/builder"
	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/mtbdd"
)

// ExampleBuilder builds a tiny named automaton accepting the one-level
// tree wrap(leaf), the way a Timbuk-style textual source would
// describe it.
func ExampleBuilder() {
	ctx := mtbdd.NewContext(mtbdd.WithBackground(leafset.Singleton(automaton.Sink)))
	b := builder.New(ctx, 1)

	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	must(b.AddSymbol("leaf", 0))
	must(b.AddSymbol("wrap", 1))

	if _, err := b.AddState("leaf-state"); err != nil {
		panic(err)
	}
	if _, err := b.AddState("root"); err != nil {
		panic(err)
	}

	must(b.AddTransition(nil, "leaf", "leaf-state"))
	must(b.AddTransition([]string{"leaf-state"}, "wrap", "root"))
	must(b.SetStateFinal("root"))

	fmt.Println(b.Automaton().IsFinal(2))

	// Output:
	// true
}
