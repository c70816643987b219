package graph_test

import (
	"strings"
	"testing"

	"github.com/KongaYvan/Automates/internal/presentation/graph"
	"github.com/KongaYvan/Automates/pkg/domain"
)

func build(t *testing.T, def domain.Definition) *domain.Automaton {
	t.Helper()
	a, err := def.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return a
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		def      domain.Definition
		contains []string
		excludes []string
	}{
		{
			name: "State Shapes",
			def: domain.Definition{States: []domain.StateSpec{
				{Name: "A", Initial: true},
				{Name: "B", Final: true},
			}},
			contains: []string{
				"s0((\"A\"))",
				"s1(((\"B\")))",
				"s0_entry[ ]:::entry --> s0",
			},
			excludes: []string{"s1_entry"},
		},
		{
			name: "Names Are Not Identifiers",
			def: domain.Definition{States: []domain.StateSpec{
				{Name: "end"},
				{Name: `say "hi"`},
			}},
			contains: []string{
				"s0((\"end\"))",
				"s1((\"say #quot;hi#quot;\"))",
			},
		},
		{
			name: "Parallel Edges Merge",
			def: domain.Definition{
				States: []domain.StateSpec{{Name: "A", Initial: true}, {Name: "B", Final: true}},
				Transitions: []domain.TransitionSpec{
					{From: "A", To: "B", Symbol: 'a'},
					{From: "B", To: "B", Symbol: 'b'},
					{From: "A", To: "B", Symbol: 'c'},
					{From: "A", To: "B", Symbol: 'a'},
				},
			},
			contains: []string{
				"s0 -- \"a, c\" --> s1",
				"s1 -- \"b\" --> s1",
			},
		},
		{
			name: "Quote Symbol Escaping",
			def: domain.Definition{
				States:      []domain.StateSpec{{Name: "A", Initial: true}},
				Transitions: []domain.TransitionSpec{{From: "A", To: "A", Symbol: '"'}},
			},
			contains: []string{"s0 -- \"#quot;\" --> s0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(build(t, tt.def), nil)
			if !strings.HasPrefix(got, "graph LR\n") {
				t.Errorf("Expected flowchart header, got:\n%s", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("Expected output NOT to contain %q, got:\n%s", unwanted, got)
				}
			}
			if strings.Contains(got, "Overlay Styles") {
				t.Errorf("Expected no overlay section without overlay")
			}
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	a := build(t, domain.Definition{
		States: []domain.StateSpec{{Name: "A", Initial: true}, {Name: "B", Final: true}},
		Transitions: []domain.TransitionSpec{
			{From: "A", To: "B", Symbol: 'a'},
			{From: "B", To: "A", Symbol: 'b'},
		},
	})

	t.Run("Accepted", func(t *testing.T) {
		overlay := graph.OverlayFromResult(domain.Accept([]string{"A", "B", "A", "B"}))
		got := graph.GenerateMermaid(a, overlay)

		for _, want := range []string{"class s0 visited;", "class s1 accepted;"} {
			if !strings.Contains(got, want) {
				t.Errorf("Expected output to contain %q, got:\n%s", want, got)
			}
		}
		if strings.Count(got, "class s0 visited;") != 1 {
			t.Errorf("Expected visited class once, got:\n%s", got)
		}
		if strings.Contains(got, "class s1 visited;") {
			t.Errorf("Current state must not be styled as visited")
		}
	})

	t.Run("Rejected", func(t *testing.T) {
		res := domain.Reject(domain.Failure{Kind: domain.FailureNotFinal, State: "A"}, []string{"A", "B", "A"})
		got := graph.GenerateMermaid(a, graph.OverlayFromResult(res))

		if !strings.Contains(got, "class s0 rejected;") {
			t.Errorf("Expected rejected class on A, got:\n%s", got)
		}
	})

	t.Run("No Path", func(t *testing.T) {
		res := domain.Reject(domain.Failure{Kind: domain.FailureNotDeterministic}, nil)
		if overlay := graph.OverlayFromResult(res); overlay != nil {
			t.Errorf("Expected nil overlay, got %+v", overlay)
		}
	})
}
