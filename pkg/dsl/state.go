package dsl

import "github.com/KongaYvan/Automates/pkg/domain"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	spec        domain.StateSpec
	transitions []domain.TransitionSpec
	builder     *Builder
}

// Initial marks the state as the entry point.
func (s *StateBuilder) Initial() *StateBuilder {
	s.spec.Initial = true
	return s
}

// Final marks the state as accepting.
func (s *StateBuilder) Final() *StateBuilder {
	s.spec.Final = true
	return s
}

// On adds a transition to target on symbol.
// target does not have to be declared yet; Build reports it if it never is.
func (s *StateBuilder) On(symbol rune, target string) *StateBuilder {
	s.transitions = append(s.transitions, domain.TransitionSpec{
		From:   s.spec.Name,
		To:     target,
		Symbol: symbol,
	})
	return s
}

// OnEach adds one transition to target per character of symbols.
func (s *StateBuilder) OnEach(symbols string, target string) *StateBuilder {
	for _, c := range symbols {
		s.On(c, target)
	}
	return s
}

// Spec returns the underlying state declaration.
func (s *StateBuilder) Spec() domain.StateSpec {
	return s.spec
}
