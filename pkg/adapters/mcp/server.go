package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/KongaYvan/Automates"
	"github.com/KongaYvan/Automates/internal/presentation/graph"
	"github.com/KongaYvan/Automates/pkg/domain"
	"github.com/KongaYvan/Automates/pkg/runner"
)

// AutomatonURI identifies the automaton resource.
const AutomatonURI = "automates://automaton"

// EvaluateResponse is the structured output of the evaluate and explain tools.
type EvaluateResponse struct {
	Input       string          `json:"input" jsonschema_description:"The evaluated string after sanitization"`
	Accepted    bool            `json:"accepted" jsonschema_description:"True if the walk ended in a final state"`
	Failure     *domain.Failure `json:"failure,omitempty" jsonschema_description:"Why the string was rejected: kind, index, symbol, state, reasons"`
	Path        []string        `json:"path" jsonschema_description:"Visited states, starting with the initial state"`
	Explanation string          `json:"explanation,omitempty" jsonschema_description:"Human-readable diagnostic"`
}

// VerdictResponse is the structured output of the validate tool.
type VerdictResponse struct {
	Deterministic bool     `json:"deterministic" jsonschema_description:"True if the automaton is deterministic"`
	Reasons       []string `json:"reasons" jsonschema_description:"Every determinism violation found"`
	Alphabet      string   `json:"alphabet" jsonschema_description:"Distinct symbols in first-use order"`
}

// Engine defines the part of the automates façade exposed over MCP.
type Engine interface {
	Verdict() domain.Verdict
	Explain(ctx context.Context, input string) (domain.Result, string)
	Inspect() *domain.Automaton
	Definition() domain.Definition
}

// Server wraps an automates Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	sanitizer runner.Sanitizer
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		sanitizer: runner.NewSanitizer(),
		mcpServer: server.NewMCPServer("automates-mcp", strings.TrimSpace(automates.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: evaluate
	evaluateTool := mcp.NewTool("evaluate",
		mcp.WithDescription("Run a string through the automaton and report acceptance or the point of rejection."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Candidate string, one symbol per character")),
		mcp.WithOutputSchema[EvaluateResponse](),
	)
	s.mcpServer.AddTool(evaluateTool, mcp.NewStructuredToolHandler(s.handleEvaluate))

	// TOOL: explain
	explainTool := mcp.NewTool("explain",
		mcp.WithDescription("Like evaluate, with a human-readable diagnostic of the walk."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Candidate string, one symbol per character")),
		mcp.WithOutputSchema[EvaluateResponse](),
	)
	s.mcpServer.AddTool(explainTool, mcp.NewStructuredToolHandler(s.handleExplain))

	// TOOL: validate
	validateTool := mcp.NewTool("validate",
		mcp.WithDescription("Report whether the automaton is deterministic and list every violation."),
		mcp.WithOutputSchema[VerdictResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the automaton as a Mermaid flowchart."),
		mcp.WithString("input", mcp.Description("Optional string whose walk is highlighted")),
	), s.handleGraph)
}

// Handler methods for structured tools

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EvaluateResponse, error) {
	resp, err := s.evaluate(ctx, args)
	resp.Explanation = ""
	return resp, err
}

func (s *Server) handleExplain(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EvaluateResponse, error) {
	return s.evaluate(ctx, args)
}

func (s *Server) evaluate(ctx context.Context, args map[string]interface{}) (EvaluateResponse, error) {
	input, ok := args["input"].(string)
	if !ok {
		return EvaluateResponse{}, errors.New("input is required and must be a string")
	}

	if err := s.sanitizer.Check(input); err != nil {
		slog.Warn("MCP Evaluate: Input rejected", "error", err, "size", len(input))
		return EvaluateResponse{}, fmt.Errorf("input rejected: %w", err)
	}

	res, explanation := s.engine.Explain(ctx, input)
	path := res.Path
	if path == nil {
		path = []string{}
	}
	return EvaluateResponse{
		Input:       input,
		Accepted:    res.Accepted,
		Failure:     res.Failure,
		Path:        path,
		Explanation: explanation,
	}, nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (VerdictResponse, error) {
	v := s.engine.Verdict()
	reasons := v.Messages()
	if reasons == nil {
		reasons = []string{}
	}
	return VerdictResponse{
		Deterministic: v.Deterministic(),
		Reasons:       reasons,
		Alphabet:      string(s.engine.Inspect().Alphabet()),
	}, nil
}

func (s *Server) handleGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var overlay *graph.GraphOverlay
	if input := request.GetString("input", ""); input != "" {
		if err := s.sanitizer.Check(input); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("input rejected: %v", err)), nil
		}
		res, _ := s.engine.Explain(ctx, input)
		overlay = graph.OverlayFromResult(res)
	}
	return mcp.NewToolResultText(graph.GenerateMermaid(s.engine.Inspect(), overlay)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(AutomatonURI, "Automaton Definition",
		mcp.WithMIMEType("application/json"),
	), s.handleAutomatonResource)
}

func (s *Server) handleAutomatonResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.engine.Definition())
	if err != nil {
		return nil, fmt.Errorf("failed to encode automaton: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      AutomatonURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
