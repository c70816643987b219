package runner_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KongaYvan/Automates"
	"github.com/KongaYvan/Automates/pkg/domain"
	"github.com/KongaYvan/Automates/pkg/runner"
)

// abEngine accepts strings of the form (ab)*a.
func abEngine(t *testing.T) *automates.Engine {
	t.Helper()
	eng, err := automates.New(automates.ConstructionRequest{
		States: []automates.StateSpec{
			{Name: "A", Initial: true},
			{Name: "B", Final: true},
		},
		Transitions: []automates.TransitionSpec{
			{From: "A", To: "B", Symbol: 'a'},
			{From: "B", To: "A", Symbol: 'b'},
		},
	})
	require.NoError(t, err)
	return eng
}

func run(t *testing.T, eng runner.Querier, in string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	r := runner.NewRunner(runner.WithHandler(runner.NewTextHandler(strings.NewReader(in), &out)))
	err := r.Run(context.Background(), eng)
	return out.String(), err
}

func TestRunner_QueriesUntilQuit(t *testing.T) {
	out, err := run(t, abEngine(t), "a\naba\nab\nq\nab\n")
	require.NoError(t, err)

	assert.Contains(t, out, "The automaton is deterministic.")
	assert.Contains(t, out, `The string "a" is accepted.`)
	assert.Contains(t, out, `The string "aba" is accepted.`)
	assert.Contains(t, out, `The string "ab" is not accepted: string fully consumed but state "A" is not final.`)
	// Nothing after q is evaluated
	assert.Equal(t, 1, strings.Count(out, `"ab"`))
	assert.Equal(t, 4, strings.Count(out, runner.Prompt))
}

func TestRunner_UppercaseQuit(t *testing.T) {
	out, err := run(t, abEngine(t), "Q\na\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "accepted")
}

func TestRunner_EOFWithoutQuit(t *testing.T) {
	out, err := run(t, abEngine(t), "aa\r\nab")
	require.NoError(t, err)

	assert.Contains(t, out, `The string "aa" is not accepted: no transition from "B" on 'a' at index 1.`)
	assert.Contains(t, out, `The string "ab" is not accepted`)
}

func TestRunner_NotDeterministic(t *testing.T) {
	eng, err := automates.New(automates.ConstructionRequest{
		States: []automates.StateSpec{
			{Name: "A", Initial: true},
			{Name: "B", Initial: true, Final: true},
		},
	})
	require.NoError(t, err)

	out, err := run(t, eng, "a\n")
	require.ErrorIs(t, err, runner.ErrNotDeterministic)
	assert.Contains(t, out, "The automaton is not deterministic. Reasons: more than one initial state (2)")
	assert.NotContains(t, out, runner.Prompt)
}

func TestRunner_SanitizerRejectsOversizedLines(t *testing.T) {
	var out bytes.Buffer
	r := runner.NewRunner(
		runner.WithHandler(runner.NewTextHandler(strings.NewReader("ababababa\na\n"), &out)),
		runner.WithMaxInputSize(4),
	)
	require.NoError(t, r.Run(context.Background(), abEngine(t)))

	assert.Contains(t, out.String(), `The string "ababababa" was not evaluated: input exceeds maximum allowed size: size=9 limit=4.`)
	assert.NotContains(t, out.String(), `The string "ababababa" is`)
	assert.Contains(t, out.String(), `The string "a" is accepted.`)
}

func TestRunner_ControlCharactersAreNotStripped(t *testing.T) {
	out, err := run(t, abEngine(t), "a\x07\na\tb\nq\n")
	require.NoError(t, err)

	assert.Contains(t, out, `The string "a\a" was not evaluated: input contains a control character: U+0007 at index 1.`)
	assert.NotContains(t, out, `The string "a" is accepted.`)
	// Tab is a symbol like any other
	assert.Contains(t, out, "The string \"a\\tb\" is not accepted: no transition from \"B\" on '\t' at index 1.")
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	blocking, w := io.Pipe()
	defer w.Close()

	r := runner.NewRunner(runner.WithHandler(runner.NewTextHandler(blocking, &out)))
	assert.NoError(t, r.Run(ctx, abEngine(t)))
}

func TestTextHandler_Painter(t *testing.T) {
	var out bytes.Buffer
	h := runner.NewTextHandler(strings.NewReader(""), &out,
		runner.WithTextHandlerPainter(func(ok bool, line string) string {
			if ok {
				return "+ " + line
			}
			return "- " + line
		}),
	)

	require.NoError(t, h.Result(context.Background(), "a", domain.Accept([]string{"A", "B"}), "string accepted"))
	assert.Equal(t, "+ The string \"a\" is accepted.\n", out.String())
}

func TestTextHandler_Renderer(t *testing.T) {
	var out bytes.Buffer
	h := runner.NewTextHandler(strings.NewReader(""), &out,
		runner.WithTextHandlerRenderer(func(md string) (string, error) {
			return strings.ToUpper(md), nil
		}),
	)

	require.NoError(t, h.Verdict(context.Background(), domain.Verdict{}))
	assert.Contains(t, out.String(), "DETERMINISTIC")
}

func TestTextHandler_VerdictPainter(t *testing.T) {
	var out bytes.Buffer
	h := runner.NewTextHandler(strings.NewReader(""), &out,
		runner.WithTextHandlerVerdictPainter(func(det bool, line string) string {
			if det {
				return "[ok] " + line
			}
			return "[!!] " + line
		}),
	)

	require.NoError(t, h.Verdict(context.Background(), domain.Verdict{}))
	require.NoError(t, h.Verdict(context.Background(), domain.Verdict{Reasons: []domain.Reason{{Kind: domain.ReasonInitialCount}}}))
	assert.Equal(t,
		"[ok] The automaton is deterministic.\n"+
			"[!!] The automaton is not deterministic. Reasons: no initial state\n",
		out.String())
}

func TestTextHandler_Rejected(t *testing.T) {
	var out bytes.Buffer
	h := runner.NewTextHandler(strings.NewReader(""), &out)

	require.NoError(t, h.Rejected(context.Background(), strings.Repeat("é", 40), runner.ErrInputTooLarge))
	assert.Equal(t,
		"The string \""+strings.Repeat("é", 32)+"\"… was not evaluated: input exceeds maximum allowed size.\n",
		out.String())
}

func TestIsQuit(t *testing.T) {
	assert.True(t, runner.IsQuit("q"))
	assert.True(t, runner.IsQuit("Q"))
	assert.False(t, runner.IsQuit("quit"))
	assert.False(t, runner.IsQuit(""))
}
