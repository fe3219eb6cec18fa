// SPDX-License-Identifier: MIT
package simulation_test

import (
	"fmt"

	"github.com/katalvlaran/symta/assignment"
	"github.com/katalvlaran/symta/automaton"
	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/mtbdd"
	"github.com/katalvlaran/symta/simulation"
)

// ExampleCompute builds a two-state automaton and prints which states
// simulate the single final state.
func ExampleCompute() {
	ctx := mtbdd.NewContext(mtbdd.WithBackground(leafset.Singleton(automaton.Sink)))
	a := automaton.New(ctx)
	leaf := a.AddState()
	root := a.AddState()
	if err := a.SetFinal(root); err != nil {
		panic(err)
	}

	symbol := assignment.MustNew(1)
	symbol.SetI(0, assignment.One)
	if err := a.AddTransition([]automaton.State{leaf}, symbol, leafset.Of(root)); err != nil {
		panic(err)
	}

	rel, err := simulation.Compute(a)
	if err != nil {
		panic(err)
	}
	fmt.Println(rel.Simulates(root, root))

	a.Release()

	// Output:
	// true
}
