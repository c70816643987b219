package domain

// Automaton holds the states and transitions of a finite automaton.
// States keep their insertion order so that diagnostics are reproducible.
type Automaton struct {
	order       []string
	states      map[string]*State
	transitions []*Transition
}

// NewAutomaton creates an empty automaton.
func NewAutomaton() *Automaton {
	return &Automaton{
		states: make(map[string]*State),
	}
}

// AddState declares a new state.
// Zero or several initial states are accepted here; the validator flags them.
func (a *Automaton) AddState(name string, initial, final bool) error {
	if name == "" {
		return ErrEmptyStateName
	}
	if _, exists := a.states[name]; exists {
		return &DuplicateStateError{Name: name}
	}

	a.states[name] = &State{
		Name:    name,
		Initial: initial,
		Final:   final,
	}
	a.order = append(a.order, name)
	return nil
}

// AddTransition links two declared states on symbol.
// The source endpoint is checked before the destination.
func (a *Automaton) AddTransition(from, to string, symbol rune) error {
	src, ok := a.states[from]
	if !ok {
		return &UnknownStateError{Name: from}
	}
	dst, ok := a.states[to]
	if !ok {
		return &UnknownStateError{Name: to}
	}

	t := &Transition{From: src, To: dst, Symbol: symbol}
	src.Transitions = append(src.Transitions, t)
	a.transitions = append(a.transitions, t)
	return nil
}

// State looks up a state by name.
func (a *Automaton) State(name string) (*State, bool) {
	s, ok := a.states[name]
	return s, ok
}

// States returns every state in declaration order.
func (a *Automaton) States() []*State {
	out := make([]*State, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.states[name])
	}
	return out
}

// InitialStates returns the states flagged as initial, in declaration order.
func (a *Automaton) InitialStates() []*State {
	var out []*State
	for _, name := range a.order {
		if s := a.states[name]; s.Initial {
			out = append(out, s)
		}
	}
	return out
}

// Transitions returns the flat transition list in declaration order.
func (a *Automaton) Transitions() []*Transition {
	out := make([]*Transition, len(a.transitions))
	copy(out, a.transitions)
	return out
}

// Alphabet returns the distinct symbols used by any transition, in first-use order.
func (a *Automaton) Alphabet() []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, t := range a.transitions {
		if !seen[t.Symbol] {
			seen[t.Symbol] = true
			out = append(out, t.Symbol)
		}
	}
	return out
}

// Len returns the number of states.
func (a *Automaton) Len() int {
	return len(a.order)
}
