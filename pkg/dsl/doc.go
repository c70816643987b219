/*
Package dsl provides a fluent builder for constructing automata in Go code.

It is the programmatic counterpart of a definition file: useful for tests,
generated automata, and IDE-checked construction.

Example usage:

	b := dsl.New("ends-with-b")

	b.State("A").Initial().On('a', "B")
	b.State("B").Final().On('b', "B")

	eng, err := automates.New(b.Definition())
*/
package dsl
