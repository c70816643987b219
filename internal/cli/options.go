package cli

import "io"

// Options contains the configuration shared by every command.
type Options struct {
	// File is the YAML or JSON definition to load.
	File string
	// Debug enables debug logging and event auditing on Stderr.
	Debug bool
	// LogLevel applies when Debug is off. Empty means warnings only.
	LogLevel string
	// MaxSymbols enables the bounded-alphabet check when positive.
	MaxSymbols int
	// MaxInputSize bounds candidate strings in bytes. Zero keeps the default.
	MaxInputSize int
	// Rich forces markdown and colour rendering on or off. Nil means auto-detect.
	Rich *bool

	// Out is where results are written. Nil means Stdout.
	Out io.Writer
	// In is where the query shell reads from. Nil means Stdin.
	In io.Reader
}
