package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/prompter/internal/share"
)

// Version is set via ldflags at build time.
var Version = "dev"

// ScriptStore saves and fetches shared scripts.
type ScriptStore interface {
	Save(ctx context.Context, content string) (*share.SharedScript, error)
	share.Loader
}

// Server wraps an MCP server that exposes script tools to agents.
type Server struct {
	store   ScriptStore
	baseURL string
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server. store may be nil, in which case the
// sharing tools report that sharing is unavailable.
func NewServer(store ScriptStore, baseURL string) *Server {
	s := &Server{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
	}

	s.mcp = server.NewMCPServer(
		"prompter",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(parseScriptTool, s.handleParseScript)
	s.mcp.AddTool(estimateDurationTool, s.handleEstimateDuration)
	s.mcp.AddTool(shareScriptTool, s.handleShareScript)
	s.mcp.AddTool(getSharedScriptTool, s.handleGetSharedScript)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
