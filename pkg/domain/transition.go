package domain

import "fmt"

// Transition moves the automaton from one state to another on a single symbol.
type Transition struct {
	From   *State
	To     *State
	Symbol rune
}

func (t *Transition) String() string {
	return fmt.Sprintf("%s --%c--> %s", t.From.Name, t.Symbol, t.To.Name)
}
