package tui

import (
	"github.com/muesli/termenv"
)

// Painter colours result lines: green when accepted, red otherwise.
type Painter struct {
	profile termenv.Profile
}

// NewPainter detects the colour profile of the standard output.
func NewPainter() Painter {
	return Painter{profile: termenv.ColorProfile()}
}

// NewPainterWithProfile is NewPainter with an explicit profile.
func NewPainterWithProfile(p termenv.Profile) Painter {
	return Painter{profile: p}
}

// Paint styles line according to the outcome.
func (p Painter) Paint(accepted bool, line string) string {
	color := "#ef4444"
	if accepted {
		color = "#22c55e"
	}
	return termenv.String(line).Foreground(p.profile.Color(color)).String()
}

// Verdict styles the one-line verdict summary.
func (p Painter) Verdict(deterministic bool, line string) string {
	s := termenv.String(line).Bold()
	if deterministic {
		return s.Foreground(p.profile.Color("#22c55e")).String()
	}
	return s.Foreground(p.profile.Color("#f59e0b")).String()
}
