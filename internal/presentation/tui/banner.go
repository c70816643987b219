package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner followed by the version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	// Using a subtle gradient-like color scheme (Teal/Cyan)
	lines := []struct {
		text, color string
	}{
		{"     _         _                        _            ", "#2dd4bf"},
		{"    / \\  _   _| |_ ___  _ __ ___   __ _| |_ ___  ___ ", "#22d3ee"},
		{"   / _ \\| | | | __/ _ \\| '_ ` _ \\ / _` | __/ _ \\/ __|", "#38bdf8"},
		{"  / ___ \\ |_| | || (_) | | | | | | (_| | ||  __/\\__ \\", "#60a5fa"},
		{" /_/   \\_\\__,_|\\__\\___/|_| |_| |_|\\__,_|\\__\\___||___/", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
