package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/nesc-lab/paperpage/internal/paper"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the paper record to agents.
type Server struct {
	paper *paper.Paper
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server for a copy of p.
func NewServer(p *paper.Paper) *Server {
	s := &Server{paper: p.Clone()}

	s.mcp = server.NewMCPServer(
		"paperpage",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(getPaperTool, s.handleGetPaper)
	s.mcp.AddTool(getCitationTool, s.handleGetCitation)
	s.mcp.AddTool(listScenariosTool, s.handleListScenarios)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
