package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KongaYvan/Automates/internal/runtime"
	"github.com/KongaYvan/Automates/pkg/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		states  []string
		edges   []edge
		opts    runtime.ValidateOptions
		reasons []domain.Reason
	}{
		{
			name:   "Deterministic",
			states: []string{"A*", "B!"},
			edges:  []edge{{"A", "B", 'a'}, {"B", "B", 'b'}},
		},
		{
			name:   "Large Alphabet Is Still Deterministic",
			states: []string{"A*", "B!"},
			edges:  []edge{{"A", "B", 'a'}, {"A", "B", 'b'}, {"A", "B", 'c'}, {"A", "A", 'd'}},
		},
		{
			name:   "Duplicate Identical Edge",
			states: []string{"A*", "B!"},
			edges:  []edge{{"A", "B", 'a'}, {"A", "B", 'a'}},
		},
		{
			name:    "Zero Initial States",
			states:  []string{"A", "B!"},
			reasons: []domain.Reason{{Kind: domain.ReasonInitialCount, Count: 0}},
		},
		{
			name:    "Two Initial States",
			states:  []string{"A*", "B*!"},
			reasons: []domain.Reason{{Kind: domain.ReasonInitialCount, Count: 2}},
		},
		{
			name:   "Ambiguous Symbol",
			states: []string{"A*", "B", "C!"},
			edges:  []edge{{"A", "B", 'x'}, {"A", "C", 'x'}},
			reasons: []domain.Reason{
				{Kind: domain.ReasonAmbiguousSymbol, State: "A", Symbol: 'x', Targets: []string{"B", "C"}},
			},
		},
		{
			name:   "All Violations In One Pass",
			states: []string{"A", "B", "C"},
			edges: []edge{
				{"B", "A", 'y'}, {"B", "C", 'y'},
				{"A", "B", 'x'}, {"A", "C", 'x'}, {"A", "A", 'x'},
			},
			reasons: []domain.Reason{
				{Kind: domain.ReasonInitialCount, Count: 0},
				{Kind: domain.ReasonAmbiguousSymbol, State: "A", Symbol: 'x', Targets: []string{"B", "C", "A"}},
				{Kind: domain.ReasonAmbiguousSymbol, State: "B", Symbol: 'y', Targets: []string{"A", "C"}},
			},
		},
		{
			name:   "Bounded Alphabet When Enabled",
			states: []string{"A*", "B!"},
			edges:  []edge{{"A", "B", 'a'}, {"A", "B", 'b'}, {"A", "B", 'c'}},
			opts:   runtime.ValidateOptions{MaxSymbolsPerState: 2},
			reasons: []domain.Reason{
				{Kind: domain.ReasonAlphabetBound, State: "A", Count: 3, Limit: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustBuild(t, tt.states, tt.edges...)
			verdict := runtime.Validate(a, tt.opts)

			assert.Equal(t, tt.reasons, verdict.Reasons)
			assert.Equal(t, len(tt.reasons) == 0, verdict.Deterministic())
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	a := mustBuild(t, []string{"A*", "B*", "C"}, edge{"A", "B", 'x'}, edge{"A", "C", 'x'})

	first := runtime.Validate(a, runtime.ValidateOptions{})
	second := runtime.Validate(a, runtime.ValidateOptions{})

	require.False(t, first.Deterministic())
	assert.Equal(t, first, second)
	assert.Len(t, a.Transitions(), 2, "validation must not mutate the automaton")
}
