package graph

import (
	"fmt"
	"strings"

	"github.com/KongaYvan/Automates/pkg/domain"
)

// GraphOverlay contains the trace of one evaluation to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
	Accepted      bool
}

// OverlayFromResult builds the overlay of an evaluation.
// A result without a path (non-deterministic automaton) yields nil.
func OverlayFromResult(res domain.Result) *GraphOverlay {
	if len(res.Path) == 0 {
		return nil
	}
	return &GraphOverlay{
		VisitedStates: res.Path,
		CurrentState:  res.Path[len(res.Path)-1],
		Accepted:      res.Accepted,
	}
}

// GenerateMermaid produces a Mermaid flowchart syntax string from an automaton.
// It applies semantic styling:
// - Initial: an entry arrow from a point node
// - Final: (((Double Circle)))
// - Default: ((Circle))
// Parallel transitions between the same pair of states share one edge labelled
// with every symbol. Overlay styles (Visited/Current) are applied if provided.
func GenerateMermaid(a *domain.Automaton, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	ids := make(map[string]string, a.Len())
	for i, s := range a.States() {
		ids[s.Name] = fmt.Sprintf("s%d", i)
	}

	for _, s := range a.States() {
		id := ids[s.Name]
		if s.Final {
			sb.WriteString(fmt.Sprintf("    %s(((\"%s\")))\n", id, escape(s.Name)))
		} else {
			sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", id, escape(s.Name)))
		}
		if s.Initial {
			sb.WriteString(fmt.Sprintf("    %s_entry[ ]:::entry --> %s\n", id, id))
		}
	}

	for _, e := range mergeEdges(a) {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", ids[e.from], escape(e.label()), ids[e.to]))
	}

	sb.WriteString("    classDef entry fill:none,stroke:none;\n")

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef accepted fill:#c8e6c9,stroke:#2e7d32,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef rejected fill:#ffcdd2,stroke:#c62828,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.VisitedStates {
			id, ok := ids[name]
			if !ok || seen[id] || name == overlay.CurrentState {
				continue
			}
			seen[id] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", id))
		}

		if id, ok := ids[overlay.CurrentState]; ok {
			class := "rejected"
			if overlay.Accepted {
				class = "accepted"
			}
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", id, class))
		}
	}

	return sb.String()
}

type edge struct {
	from, to string
	symbols  []rune
}

func (e *edge) label() string {
	parts := make([]string, len(e.symbols))
	for i, c := range e.symbols {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// mergeEdges groups transitions by endpoints in first-seen order.
// Identical duplicate transitions contribute one symbol.
func mergeEdges(a *domain.Automaton) []*edge {
	var edges []*edge
	byPair := make(map[[2]string]*edge)
	for _, t := range a.Transitions() {
		key := [2]string{t.From.Name, t.To.Name}
		e, ok := byPair[key]
		if !ok {
			e = &edge{from: t.From.Name, to: t.To.Name}
			byPair[key] = e
			edges = append(edges, e)
		}
		if !containsRune(e.symbols, t.Symbol) {
			e.symbols = append(e.symbols, t.Symbol)
		}
	}
	return edges
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

// escape makes text safe inside a quoted Mermaid label.
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
