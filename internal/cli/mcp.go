package cli

import (
	"context"
	"fmt"

	mcpadapter "github.com/KongaYvan/Automates/pkg/adapters/mcp"
)

// RunMCP exposes the automaton over the Model Context Protocol.
// transport is "stdio" or "sse"; port only applies to sse.
func RunMCP(ctx context.Context, opts Options, transport string, port int) error {
	logger := createLogger(opts)
	eng, err := createEngine(ctx, opts, logger)
	if err != nil {
		return err
	}

	srv := mcpadapter.NewServer(eng)
	switch transport {
	case "", "stdio":
		return srv.ServeStdio()
	case "sse":
		return srv.ServeSSE(ctx, port)
	default:
		return fmt.Errorf("unknown transport %q (use stdio or sse)", transport)
	}
}
