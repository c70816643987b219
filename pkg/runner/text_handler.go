package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/KongaYvan/Automates/pkg/domain"
)

// Prompt is printed before every line read by TextHandler.
const Prompt = "Enter a string (or 'q' to quit): "

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
	Painter  Painter

	// VerdictPainter styles the one-line verdict when no Renderer output is used.
	VerdictPainter Painter

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the verdict renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerPainter configures result colouring.
func WithTextHandlerPainter(p Painter) TextHandlerOption {
	return func(h *TextHandler) {
		h.Painter = p
	}
}

// WithTextHandlerVerdictPainter configures verdict colouring.
func WithTextHandlerVerdictPainter(p Painter) TextHandlerOption {
	return func(h *TextHandler) {
		h.VerdictPainter = p
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Verdict prints the verdict, through the Renderer when one is set.
func (h *TextHandler) Verdict(ctx context.Context, v domain.Verdict) error {
	if h.Renderer != nil {
		if rendered, err := h.Renderer(VerdictMarkdown(v)); err == nil {
			_, err := fmt.Fprintln(h.Writer, strings.TrimRight(rendered, "\n"))
			return err
		}
	}
	text := VerdictText(v)
	if h.VerdictPainter != nil {
		text = h.VerdictPainter(v.Deterministic(), text)
	}
	_, err := fmt.Fprintln(h.Writer, text)
	return err
}

// Result prints one line per query.
func (h *TextHandler) Result(ctx context.Context, input string, res domain.Result, explanation string) error {
	var line string
	if res.Accepted {
		line = fmt.Sprintf("The string %q is accepted.", input)
	} else {
		line = fmt.Sprintf("The string %q is not accepted: %s.", input, explanation)
	}
	if h.Painter != nil {
		line = h.Painter(res.Accepted, line)
	}
	_, err := fmt.Fprintln(h.Writer, line)
	return err
}

// Rejected prints why a line was not evaluated.
// Long inputs are shortened so that the message stays on one line.
func (h *TextHandler) Rejected(ctx context.Context, input string, err error) error {
	line := fmt.Sprintf("The string %s was not evaluated: %v.", preview(input), err)
	if h.Painter != nil {
		line = h.Painter(false, line)
	}
	_, werr := fmt.Fprintln(h.Writer, line)
	return werr
}

func preview(input string) string {
	const max = 32
	runes := []rune(input)
	if len(runes) <= max {
		return strconv.Quote(input)
	}
	return strconv.Quote(string(runes[:max])) + "…"
}

// Input prompts and reads one line.
// The read happens on a background goroutine so that ctx cancellation
// unblocks the caller even while the reader is waiting on a terminal.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.startOnce.Do(h.startReader)

	fmt.Fprint(h.Writer, Prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-h.inputChan:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

func (h *TextHandler) startReader() {
	h.inputChan = make(chan inputResult)
	go func() {
		defer close(h.inputChan)
		for {
			text, err := h.Reader.ReadString('\n')
			if err != nil {
				// A last line without terminator is still a query.
				if err == io.EOF && text != "" {
					h.inputChan <- inputResult{text: strings.TrimRight(text, "\r\n")}
				}
				h.inputChan <- inputResult{err: err}
				return
			}
			h.inputChan <- inputResult{text: strings.TrimRight(text, "\r\n")}
		}
	}()
}

// VerdictText is the plain rendering of a verdict.
func VerdictText(v domain.Verdict) string {
	if v.Deterministic() {
		return "The automaton is deterministic."
	}
	return "The automaton is not deterministic. Reasons: " + strings.Join(v.Messages(), "; ")
}

// VerdictMarkdown is the report handed to a ContentRenderer.
func VerdictMarkdown(v domain.Verdict) string {
	var b strings.Builder
	if v.Deterministic() {
		b.WriteString("## ✅ Deterministic\n\nEvery state has at most one transition per symbol.\n")
		return b.String()
	}
	b.WriteString("## ❌ Not deterministic\n\n")
	for _, msg := range v.Messages() {
		fmt.Fprintf(&b, "- %s\n", msg)
	}
	return b.String()
}
