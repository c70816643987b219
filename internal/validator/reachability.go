// Package validator holds structural checks that complement the determinism
// verdict. They never change whether an automaton is deterministic.
package validator

import "github.com/KongaYvan/Automates/pkg/domain"

// Unreachable returns the states that no path from an initial state reaches,
// in declaration order. With no initial state every state is unreachable.
func Unreachable(a *domain.Automaton) []string {
	visited := make(map[string]bool)
	var queue []*domain.State
	for _, s := range a.InitialStates() {
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current.Name] {
			continue
		}
		visited[current.Name] = true

		for _, t := range current.Transitions {
			if !visited[t.To.Name] {
				queue = append(queue, t.To)
			}
		}
	}

	var out []string
	for _, s := range a.States() {
		if !visited[s.Name] {
			out = append(out, s.Name)
		}
	}
	return out
}

// Trapped returns the states from which no final state can
// be reached, in declaration order. Any string entering one is rejected.
func Trapped(a *domain.Automaton) []string {
	reverse := make(map[string][]string)
	for _, t := range a.Transitions() {
		reverse[t.To.Name] = append(reverse[t.To.Name], t.From.Name)
	}

	alive := make(map[string]bool)
	var queue []string
	for _, s := range a.States() {
		if s.Final {
			queue = append(queue, s.Name)
		}
	}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if alive[name] {
			continue
		}
		alive[name] = true
		queue = append(queue, reverse[name]...)
	}

	var out []string
	for _, s := range a.States() {
		if !alive[s.Name] {
			out = append(out, s.Name)
		}
	}
	return out
}
