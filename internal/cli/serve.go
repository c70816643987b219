package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/KongaYvan/Automates/internal/config"
	httpadapter "github.com/KongaYvan/Automates/pkg/adapters/http"
	"github.com/KongaYvan/Automates/pkg/domain"
	"github.com/KongaYvan/Automates/pkg/observability"
	"github.com/KongaYvan/Automates/pkg/runner"
)

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	Options
	Port    int
	Metrics bool
}

// ApplyConfig fills unset fields from the environment configuration.
// Explicit flags always win.
func (o *ServeOptions) ApplyConfig(cfg config.Config, portSet, metricsSet bool) {
	if !portSet {
		o.Port = cfg.Port
	}
	if !metricsSet {
		o.Metrics = cfg.Metrics
	}
	if o.LogLevel == "" {
		o.LogLevel = cfg.LogLevel
	}
	if o.MaxInputSize == 0 {
		o.MaxInputSize = cfg.MaxInputSize
	}
}

// NewServeHandler builds the engine and the HTTP handler serving it.
func NewServeHandler(ctx context.Context, opts ServeOptions) (http.Handler, error) {
	logger := createLogger(opts.Options)

	var hooks []domain.LifecycleHooks
	var metrics *observability.Metrics
	if opts.Metrics {
		metrics = observability.NewMetrics()
		hooks = append(hooks, metrics.Hooks())
	}

	eng, err := createEngine(ctx, opts.Options, logger, hooks...)
	if err != nil {
		return nil, err
	}

	handlerOpts := []httpadapter.Option{
		httpadapter.WithLogger(logger),
		httpadapter.WithSanitizer(runner.Sanitizer{MaxSize: opts.MaxInputSize}),
	}
	if metrics != nil {
		handlerOpts = append(handlerOpts, httpadapter.WithMetrics(metrics.Handler()))
	}
	return httpadapter.NewHandler(eng, handlerOpts...), nil
}

// RunServe serves the JSON API until ctx is cancelled, then shuts down gracefully.
func RunServe(ctx context.Context, opts ServeOptions) error {
	handler, err := NewServeHandler(ctx, opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		fmt.Fprintf(output(opts.Options), "Starting Automates Server on %s\n", srv.Addr)
		fmt.Fprintf(output(opts.Options), "Serving automaton from: %s\n", opts.File)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		fmt.Fprintln(output(opts.Options), "\nStart shutdown...")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// Asking listener to shut down and shed load.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			if closeErr := srv.Close(); closeErr != nil {
				return fmt.Errorf("error killing server: %w", closeErr)
			}
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", 5*time.Second, err)
		}
		fmt.Fprintln(output(opts.Options), "Automates Server stopped gracefully")
		return nil
	}
}
