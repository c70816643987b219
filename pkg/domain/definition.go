package domain

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// StateSpec declares one state of a Definition.
type StateSpec struct {
	Name    string `json:"name" yaml:"name"`
	Initial bool   `json:"initial,omitempty" yaml:"initial,omitempty"`
	Final   bool   `json:"final,omitempty" yaml:"final,omitempty"`
}

// TransitionSpec declares one transition of a Definition.
type TransitionSpec struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Symbol rune   `json:"symbol" yaml:"symbol"`
}

type transitionJSON struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Symbol string `json:"symbol"`
}

// MarshalJSON writes the symbol as a one-character string.
func (t TransitionSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(transitionJSON{From: t.From, To: t.To, Symbol: string(t.Symbol)})
}

// UnmarshalJSON reads a one-character symbol string.
func (t *TransitionSpec) UnmarshalJSON(data []byte) error {
	var raw transitionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if utf8.RuneCountInString(raw.Symbol) != 1 {
		return fmt.Errorf("symbol %q must be exactly one character", raw.Symbol)
	}
	symbol, _ := utf8.DecodeRuneInString(raw.Symbol)
	*t = TransitionSpec{From: raw.From, To: raw.To, Symbol: symbol}
	return nil
}

// Definition is a fully-formed construction request: every state and
// transition the automaton should contain, in declaration order.
type Definition struct {
	Name        string           `json:"name,omitempty" yaml:"name,omitempty"`
	States      []StateSpec      `json:"states" yaml:"states"`
	Transitions []TransitionSpec `json:"transitions" yaml:"transitions"`
}

// Build constructs the automaton described by d.
// It stops at the first construction error and never returns a partial automaton.
func (d Definition) Build() (*Automaton, error) {
	a := NewAutomaton()
	for i, s := range d.States {
		if err := a.AddState(s.Name, s.Initial, s.Final); err != nil {
			return nil, fmt.Errorf("state #%d: %w", i+1, err)
		}
	}
	for i, t := range d.Transitions {
		if err := a.AddTransition(t.From, t.To, t.Symbol); err != nil {
			return nil, fmt.Errorf("transition #%d (%s --%c--> %s): %w", i+1, t.From, t.Symbol, t.To, err)
		}
	}
	return a, nil
}

// Describe converts an automaton back into the Definition that would rebuild it.
func Describe(name string, a *Automaton) Definition {
	def := Definition{Name: name}
	for _, s := range a.States() {
		def.States = append(def.States, StateSpec{Name: s.Name, Initial: s.Initial, Final: s.Final})
	}
	for _, t := range a.Transitions() {
		def.Transitions = append(def.Transitions, TransitionSpec{From: t.From.Name, To: t.To.Name, Symbol: t.Symbol})
	}
	return def
}
