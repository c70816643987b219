package runtime

import (
	"github.com/KongaYvan/Automates/pkg/domain"
)

// ValidateOptions tunes the validator.
type ValidateOptions struct {
	// MaxSymbolsPerState, when positive, flags states that use more distinct
	// symbols than allowed. It is a bounded-alphabet constraint kept for parity
	// with legacy tooling and is not part of determinism. Zero disables it.
	MaxSymbolsPerState int
}

// Validate decides whether a is a deterministic finite automaton.
// Every violation is collected in one pass, ordered by state declaration and
// then by the first appearance of each symbol. It never mutates a.
func Validate(a *domain.Automaton, opts ValidateOptions) domain.Verdict {
	var reasons []domain.Reason

	if n := len(a.InitialStates()); n != 1 {
		reasons = append(reasons, domain.Reason{
			Kind:  domain.ReasonInitialCount,
			Count: n,
		})
	}

	for _, s := range a.States() {
		symbols, targets := groupBySymbol(s)

		for _, sym := range symbols {
			if len(targets[sym]) > 1 {
				reasons = append(reasons, domain.Reason{
					Kind:    domain.ReasonAmbiguousSymbol,
					State:   s.Name,
					Symbol:  sym,
					Targets: targets[sym],
				})
			}
		}

		if opts.MaxSymbolsPerState > 0 && len(symbols) > opts.MaxSymbolsPerState {
			reasons = append(reasons, domain.Reason{
				Kind:  domain.ReasonAlphabetBound,
				State: s.Name,
				Count: len(symbols),
				Limit: opts.MaxSymbolsPerState,
			})
		}
	}

	return domain.Verdict{Reasons: reasons}
}

// groupBySymbol maps each outgoing symbol of s to its distinct destinations.
// Both the symbol list and each destination list keep first-seen order.
func groupBySymbol(s *domain.State) ([]rune, map[rune][]string) {
	var symbols []rune
	targets := make(map[rune][]string)
	seen := make(map[rune]map[string]bool)

	for _, t := range s.Transitions {
		dests, ok := seen[t.Symbol]
		if !ok {
			dests = make(map[string]bool)
			seen[t.Symbol] = dests
			symbols = append(symbols, t.Symbol)
		}
		if !dests[t.To.Name] {
			dests[t.To.Name] = true
			targets[t.Symbol] = append(targets[t.Symbol], t.To.Name)
		}
	}
	return symbols, targets
}
