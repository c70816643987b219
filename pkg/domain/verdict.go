package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ReasonKind classifies why an automaton is not a valid DFA.
type ReasonKind string

const (
	// ReasonInitialCount means the automaton has zero or several initial states.
	ReasonInitialCount ReasonKind = "initial_count"
	// ReasonAmbiguousSymbol means a state reaches several destinations on one symbol.
	ReasonAmbiguousSymbol ReasonKind = "ambiguous_symbol"
	// ReasonAlphabetBound means a state uses more distinct symbols than the
	// optional per-state bound allows. It is only reported when that bound is enabled.
	ReasonAlphabetBound ReasonKind = "alphabet_bound"
)

// Reason is one structural violation found by the validator.
type Reason struct {
	Kind    ReasonKind
	State   string   // offending state, empty for ReasonInitialCount
	Symbol  rune     // offending symbol for ReasonAmbiguousSymbol
	Targets []string // distinct destinations for ReasonAmbiguousSymbol
	Count   int      // initial state count, or distinct symbol count
	Limit   int      // configured bound for ReasonAlphabetBound
}

// String renders the reason for humans.
func (r Reason) String() string {
	switch r.Kind {
	case ReasonInitialCount:
		if r.Count == 0 {
			return "no initial state"
		}
		return fmt.Sprintf("more than one initial state (%d)", r.Count)
	case ReasonAmbiguousSymbol:
		return fmt.Sprintf("state %q has several transitions on '%c' (%s)", r.State, r.Symbol, strings.Join(r.Targets, ", "))
	case ReasonAlphabetBound:
		return fmt.Sprintf("state %q uses %d distinct symbols (limit %d)", r.State, r.Count, r.Limit)
	default:
		return string(r.Kind)
	}
}

// MarshalJSON writes the symbol as a string and adds the rendered message.
func (r Reason) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind    ReasonKind `json:"kind"`
		State   string     `json:"state,omitempty"`
		Symbol  string     `json:"symbol,omitempty"`
		Targets []string   `json:"targets,omitempty"`
		Count   int        `json:"count,omitempty"`
		Limit   int        `json:"limit,omitempty"`
		Message string     `json:"message"`
	}{
		Kind:    r.Kind,
		State:   r.State,
		Targets: r.Targets,
		Count:   r.Count,
		Limit:   r.Limit,
		Symbol:  r.SymbolText(),
		Message: r.String(),
	}
	return json.Marshal(out)
}

// SymbolText is Symbol as a string for ReasonAmbiguousSymbol, empty otherwise.
// A NUL symbol is a symbol like any other.
func (r Reason) SymbolText() string {
	if r.Kind != ReasonAmbiguousSymbol {
		return ""
	}
	return string(r.Symbol)
}

// Verdict is the validator's structural judgement on an automaton.
// A verdict with no reasons is Deterministic.
type Verdict struct {
	Reasons []Reason
}

// Deterministic reports whether no violation was found.
func (v Verdict) Deterministic() bool {
	return len(v.Reasons) == 0
}

// Messages renders every reason in order.
func (v Verdict) Messages() []string {
	out := make([]string, len(v.Reasons))
	for i, r := range v.Reasons {
		out[i] = r.String()
	}
	return out
}

func (v Verdict) String() string {
	if v.Deterministic() {
		return "deterministic"
	}
	return "not deterministic: " + strings.Join(v.Messages(), "; ")
}
