// Package mcp exposes the campus knowledge base over the Model Context
// Protocol so agent tooling can ask it questions directly.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/campus-bot/internal/chat"
	"github.com/ziadkadry99/campus-bot/internal/engine"
	"github.com/ziadkadry99/campus-bot/internal/knowledge"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes campus enquiry tools.
type Server struct {
	svc    *chat.Service
	kb     *knowledge.Store
	engine *engine.Engine
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(svc *chat.Service, kb *knowledge.Store, eng *engine.Engine) *Server {
	s := &Server{
		svc:    svc,
		kb:     kb,
		engine: eng,
	}

	s.mcp = server.NewMCPServer(
		"campusbot",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(askCampusTool, s.handleAskCampus)
	s.mcp.AddTool(searchKnowledgeTool, s.handleSearchKnowledge)
	s.mcp.AddTool(listEntriesTool, s.handleListEntries)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
