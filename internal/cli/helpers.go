package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/KongaYvan/Automates/internal/logging"
	"github.com/KongaYvan/Automates/internal/presentation/tui"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// ReportSignal prints how sc was stopped, when a signal stopped it.
func ReportSignal(w io.Writer, sc *SignalContext) {
	if msg := completionMessage(sc.Signal()); msg != "" {
		fmt.Fprintln(w, msg)
	}
}

func completionMessage(sig os.Signal) string {
	switch sig {
	case nil:
		return ""
	case os.Interrupt:
		return "[CTRL+C] Interrupted."
	case syscall.SIGTERM:
		return "Terminated."
	default:
		return fmt.Sprintf("Stopped by signal %v.", sig)
	}
}

// createLogger configures the application logger.
// Debug wins over level; an empty level keeps only warnings and errors.
func createLogger(opts Options) *slog.Logger {
	if opts.Debug {
		return logging.New(slog.LevelDebug)
	}
	if opts.LogLevel == "" {
		return logging.New(slog.LevelWarn)
	}
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		logger := logging.New(slog.LevelWarn)
		logger.Warn("Ignoring log level", "error", err)
		return logger
	}
	return logging.New(level)
}

func output(opts Options) io.Writer {
	if opts.Out != nil {
		return opts.Out
	}
	return os.Stdout
}

func input(opts Options) io.Reader {
	if opts.In != nil {
		return opts.In
	}
	return os.Stdin
}

// richOutput reports whether markdown and colours should be used.
func richOutput(opts Options) bool {
	if opts.Rich != nil {
		return *opts.Rich
	}
	if opts.Out != nil {
		f, ok := opts.Out.(*os.File)
		return ok && tui.IsTerminal(f)
	}
	return tui.IsTerminal(os.Stdout)
}
