package runtime

import (
	"github.com/KongaYvan/Automates/pkg/domain"
)

// symbolIndex maps a state to its symbol -> destination table.
// Only the first transition per symbol is indexed, matching a linear scan.
type symbolIndex map[*domain.State]map[rune]*domain.State

func buildIndex(a *domain.Automaton) symbolIndex {
	idx := make(symbolIndex, a.Len())
	for _, s := range a.States() {
		row := make(map[rune]*domain.State, len(s.Transitions))
		for _, t := range s.Transitions {
			if _, ok := row[t.Symbol]; !ok {
				row[t.Symbol] = t.To
			}
		}
		idx[s] = row
	}
	return idx
}

func (idx symbolIndex) next(s *domain.State, symbol rune) (*domain.State, bool) {
	if row, ok := idx[s]; ok {
		to, found := row[symbol]
		return to, found
	}
	// State not indexed (automaton built outside the engine): fall back to a scan.
	t, ok := s.Next(symbol)
	if !ok {
		return nil, false
	}
	return t.To, true
}

// Simulate walks input through a from its initial state.
// The caller must pass the verdict computed for a. A non-deterministic verdict
// short-circuits to a FailureNotDeterministic result without walking.
func Simulate(a *domain.Automaton, verdict domain.Verdict, input string) domain.Result {
	return simulate(a, nil, verdict, input)
}

func simulate(a *domain.Automaton, idx symbolIndex, verdict domain.Verdict, input string) domain.Result {
	if !verdict.Deterministic() {
		return domain.Reject(domain.Failure{
			Kind:    domain.FailureNotDeterministic,
			Reasons: verdict.Reasons,
		}, nil)
	}

	current := a.InitialStates()[0]
	path := []string{current.Name}

	i := 0
	for _, c := range input {
		next, ok := idx.next(current, c)
		if !ok {
			return domain.Reject(domain.Failure{
				Kind:   domain.FailureNoTransition,
				Index:  i,
				Symbol: c,
				State:  current.Name,
			}, path)
		}
		current = next
		path = append(path, current.Name)
		i++
	}

	if !current.Final {
		return domain.Reject(domain.Failure{
			Kind:  domain.FailureNotFinal,
			State: current.Name,
		}, path)
	}
	return domain.Accept(path)
}
