package domain

// State is a named node of the automaton.
type State struct {
	Name    string
	Initial bool
	Final   bool

	// Transitions holds the outgoing edges in declaration order.
	// The same pointers appear in Automaton.Transitions().
	Transitions []*Transition
}

// Next returns the first outgoing transition labelled with symbol.
func (s *State) Next(symbol rune) (*Transition, bool) {
	for _, t := range s.Transitions {
		if t.Symbol == symbol {
			return t, true
		}
	}
	return nil, false
}
