package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 4KB (conservative default)
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "AUTOMATES_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge    = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8      = errors.New("input contains invalid UTF-8 sequences")
	ErrControlCharacter = errors.New("input contains a control character")
)

// Sanitizer enforces size limits, UTF-8 validity and the absence of control
// characters on candidate strings. It never rewrites a string: a string that
// passes is evaluated exactly as received.
type Sanitizer struct {
	// MaxSize is the limit in bytes. Zero means DefaultMaxInputSize.
	MaxSize int
}

// NewSanitizer returns a Sanitizer whose limit comes from EnvMaxInputSize.
func NewSanitizer() Sanitizer {
	return Sanitizer{MaxSize: getMaxInputSize()}
}

// Check reports why input cannot be evaluated, or nil.
func (s Sanitizer) Check(input string) error {
	// 1. Enforce Size Limit
	limit := s.MaxSize
	if limit <= 0 {
		limit = DefaultMaxInputSize
	}
	if len(input) > limit {
		return fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	// 2. Validate UTF-8
	if !utf8.ValidString(input) {
		return ErrInvalidUTF8
	}

	// 3. Reject Control Characters
	// Tab is a legitimate symbol. ESC, NULL, BEL and line terminators are not.
	i := 0
	for _, r := range input {
		if unicode.IsControl(r) && !isSafeControl(r) {
			return fmt.Errorf("%w: %U at index %d", ErrControlCharacter, r, i)
		}
		i++
	}
	return nil
}

func isSafeControl(r rune) bool {
	return r == '\t'
}

func getMaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
