package dsl

import (
	"github.com/KongaYvan/Automates/pkg/domain"
)

// Builder manages the automaton construction.
// States keep the order of their first mention.
type Builder struct {
	name   string
	order  []string
	states map[string]*StateBuilder
}

// New creates a new automaton builder.
func New(name string) *Builder {
	return &Builder{
		name:   name,
		states: make(map[string]*StateBuilder),
	}
}

// State declares a state, or returns the existing builder for name.
func (b *Builder) State(name string) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{
		spec:    domain.StateSpec{Name: name},
		builder: b,
	}
	b.states[name] = sb
	b.order = append(b.order, name)
	return sb
}

// Definition returns the construction request described so far.
// Transitions are listed state by state, each in declaration order.
func (b *Builder) Definition() domain.Definition {
	def := domain.Definition{Name: b.name}
	for _, name := range b.order {
		sb := b.states[name]
		def.States = append(def.States, sb.spec)
		def.Transitions = append(def.Transitions, sb.transitions...)
	}
	return def
}

// Build constructs the automaton.
func (b *Builder) Build() (*domain.Automaton, error) {
	return b.Definition().Build()
}
