package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/oas-examples/internal/catalog"
	"github.com/ziadkadry99/oas-examples/internal/viewer"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the example catalog.
type Server struct {
	cat   *catalog.Catalog
	links viewer.Links
	mcp   *server.MCPServer
}

// NewServer creates a new MCP server over cat.
func NewServer(cat *catalog.Catalog, links viewer.Links) *Server {
	s := &Server{
		cat:   cat,
		links: links,
	}

	s.mcp = server.NewMCPServer(
		"oasexamples",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listVersionsTool, s.handleListVersions)
	s.mcp.AddTool(listExamplesTool, s.handleListExamples)
	s.mcp.AddTool(getExampleTool, s.handleGetExample)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
