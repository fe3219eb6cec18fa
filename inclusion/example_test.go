// SPDX-License-Identifier: MIT
package inclusion_test

import (
	"fmt"

	"github.com/katalvlaran/symta/assignment"
	"github.com/katalvlaran/symta/automaton"
	"github.com/katalvlaran/symta/inclusion"
	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/mtbdd"
)

// ExampleIncluded builds two single-leaf automata accepting the same
// symbol and checks that each includes the other.
func ExampleIncluded() {
	ctx := mtbdd.NewContext(mtbdd.WithBackground(leafset.Singleton(automaton.Sink)))

	build := func() *automaton.Automaton {
		a := automaton.New(ctx)
		leaf := a.AddState()
		if err := a.SetFinal(leaf); err != nil {
			panic(err)
		}
		symbol := assignment.MustNew(1)
		symbol.SetI(0, assignment.One)
		if err := a.AddTransition(nil, symbol, leafset.Of(leaf)); err != nil {
			panic(err)
		}
		return a
	}

	a := build()
	b := build()

	ok, err := inclusion.Included(a, b, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(ok)

	a.Release()
	b.Release()

	// Output:
	// true
}
