package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/KongaYvan/Automates"
	"github.com/KongaYvan/Automates/internal/presentation/tui"
	"github.com/KongaYvan/Automates/internal/validator"
	"github.com/KongaYvan/Automates/pkg/runner"
)

// RunValidate loads the definition, prints a validation report, and reports
// whether the automaton is deterministic.
func RunValidate(ctx context.Context, opts Options) (bool, error) {
	logger := createLogger(opts)
	eng, err := createEngine(ctx, opts, logger)
	if err != nil {
		return false, err
	}

	out := output(opts)
	verdict := eng.Verdict()

	if richOutput(opts) {
		rendered, err := tui.NewRenderer()(ValidationMarkdown(eng))
		if err == nil {
			fmt.Fprint(out, rendered)
			return verdict.Deterministic(), nil
		}
		logger.Warn("Markdown rendering failed", "error", err)
	}

	fmt.Fprint(out, ValidationText(eng))
	return verdict.Deterministic(), nil
}

// ValidationText is the plain validation report.
func ValidationText(eng *automates.Engine) string {
	var b strings.Builder
	a := eng.Inspect()

	title := "Automaton"
	if eng.Name() != "" {
		title = fmt.Sprintf("Automaton %q", eng.Name())
	}
	fmt.Fprintf(&b, "%s: %d states, %d transitions\n", title, a.Len(), len(a.Transitions()))
	fmt.Fprintf(&b, "Alphabet: %s\n", alphabetList(eng))
	fmt.Fprintln(&b, runner.VerdictText(eng.Verdict()))
	for _, w := range warnings(eng) {
		fmt.Fprintf(&b, "Warning: %s\n", w)
	}
	return b.String()
}

// ValidationMarkdown is the validation report rendered on terminals.
func ValidationMarkdown(eng *automates.Engine) string {
	var b strings.Builder
	a := eng.Inspect()

	name := eng.Name()
	if name == "" {
		name = "Automaton"
	}
	fmt.Fprintf(&b, "# %s\n\n", name)
	b.WriteString("| State | Initial | Final |\n|---|---|---|\n")
	for _, s := range a.States() {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", s.Name, mark(s.Initial), mark(s.Final))
	}
	fmt.Fprintf(&b, "\n**Alphabet:** %s\n\n", alphabetList(eng))
	b.WriteString(runner.VerdictMarkdown(eng.Verdict()))
	if ws := warnings(eng); len(ws) > 0 {
		b.WriteString("\n### Warnings\n\n")
		for _, w := range ws {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}

// warnings lists structural oddities that do not affect determinism.
func warnings(eng *automates.Engine) []string {
	a := eng.Inspect()
	var out []string
	if names := validator.Unreachable(a); len(names) > 0 {
		out = append(out, "unreachable states: "+strings.Join(names, ", "))
	}
	if names := validator.Trapped(a); len(names) > 0 {
		out = append(out, "states that cannot reach a final state: "+strings.Join(names, ", "))
	}
	return out
}

func alphabetList(eng *automates.Engine) string {
	alphabet := eng.Inspect().Alphabet()
	if len(alphabet) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(alphabet))
	for i, c := range alphabet {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func mark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
