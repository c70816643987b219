package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FailureKind classifies why a string was rejected.
type FailureKind string

const (
	// FailureNoTransition means no outgoing edge matched the current symbol.
	FailureNoTransition FailureKind = "no_transition"
	// FailureNotFinal means the input was consumed but the last state is not accepting.
	FailureNotFinal FailureKind = "not_final"
	// FailureNotDeterministic means the automaton failed validation, so no walk happened.
	FailureNotDeterministic FailureKind = "not_deterministic"
)

// Failure describes where and why a walk stopped.
type Failure struct {
	Kind FailureKind

	// Index is the character position of Symbol in the input (FailureNoTransition).
	Index  int
	Symbol rune

	// State is where the walk stopped. Empty for FailureNotDeterministic.
	State string

	// Reasons repeats the verdict for FailureNotDeterministic.
	Reasons []Reason
}

// MarshalJSON omits Index and Symbol unless the failure kind carries them.
func (f Failure) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind    FailureKind `json:"kind"`
		Index   *int        `json:"index,omitempty"`
		Symbol  string      `json:"symbol,omitempty"`
		State   string      `json:"state,omitempty"`
		Reasons []Reason    `json:"reasons,omitempty"`
	}{
		Kind:    f.Kind,
		State:   f.State,
		Reasons: f.Reasons,
	}
	if f.Kind == FailureNoTransition {
		idx := f.Index
		out.Index = &idx
		out.Symbol = f.SymbolText()
	}
	return json.Marshal(out)
}

// SymbolText is Symbol as a string for FailureNoTransition, empty otherwise.
// A NUL symbol is a symbol like any other.
func (f Failure) SymbolText() string {
	if f.Kind != FailureNoTransition {
		return ""
	}
	return string(f.Symbol)
}

// Result is the outcome of one query.
type Result struct {
	Accepted bool
	Failure  *Failure

	// Path lists the states visited, starting with the initial state.
	Path []string
}

// Accept builds an accepting result.
func Accept(path []string) Result {
	return Result{Accepted: true, Path: path}
}

// Reject builds a rejecting result.
func Reject(f Failure, path []string) Result {
	return Result{Failure: &f, Path: path}
}

// Explain renders the diagnostic for r.
func (r Result) Explain() string {
	if r.Accepted {
		return "string accepted"
	}
	if r.Failure == nil {
		return "string rejected"
	}

	f := r.Failure
	switch f.Kind {
	case FailureNoTransition:
		return fmt.Sprintf("no transition from %q on '%c' at index %d", f.State, f.Symbol, f.Index)
	case FailureNotFinal:
		return fmt.Sprintf("string fully consumed but state %q is not final", f.State)
	case FailureNotDeterministic:
		msgs := make([]string, len(f.Reasons))
		for i, reason := range f.Reasons {
			msgs[i] = reason.String()
		}
		return "automaton is not deterministic: " + strings.Join(msgs, "; ")
	default:
		return string(f.Kind)
	}
}
