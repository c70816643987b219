/*
Package automates builds deterministic finite automata over single-character
symbols, validates them, and answers acceptance queries with precise rejection
diagnostics.

# Concept

An automaton is described once by a construction request (states with initial
and final flags, transitions labelled with one character). The Engine builds it,
runs the determinism validator eagerly and caches the verdict. Every query then
walks the input from the initial state and returns either Accepted or a typed
Failure: no transition at a given index, input consumed in a non-final state, or
the automaton itself is not deterministic.

The Engine is read-only after construction, so queries can be served from many
goroutines without locking.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/KongaYvan/Automates"
	)

	func main() {
		eng, err := automates.New(automates.ConstructionRequest{
			States: []automates.StateSpec{
				{Name: "A", Initial: true},
				{Name: "B", Final: true},
			},
			Transitions: []automates.TransitionSpec{
				{From: "A", To: "B", Symbol: 'a'},
				{From: "B", To: "B", Symbol: 'b'},
			},
		})
		if err != nil {
			log.Fatal(err)
		}

		if !eng.Verdict().Deterministic() {
			log.Fatal(eng.Verdict())
		}

		res, why := eng.Explain(context.Background(), "abb")
		fmt.Println(res.Accepted, why)
	}
*/
package automates
