package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KongaYvan/Automates/pkg/domain"
)

type edge struct {
	from, to string
	symbol   rune
}

// mustBuild declares states as "name" with optional "*" (initial) and "!" (final) suffixes.
func mustBuild(t *testing.T, states []string, edges ...edge) *domain.Automaton {
	t.Helper()

	a := domain.NewAutomaton()
	for _, spec := range states {
		name, initial, final := spec, false, false
		for len(name) > 0 {
			last := name[len(name)-1]
			if last == '*' {
				initial = true
			} else if last == '!' {
				final = true
			} else {
				break
			}
			name = name[:len(name)-1]
		}
		require.NoError(t, a.AddState(name, initial, final))
	}
	for _, e := range edges {
		require.NoError(t, a.AddTransition(e.from, e.to, e.symbol))
	}
	return a
}
