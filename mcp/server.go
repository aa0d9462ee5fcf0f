// Package mcp exposes docsearch to agent hosts over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName is the implementation name reported to hosts.
const ServerName = "docs"

// Server is the MCP server exposing the get_docs tool.
type Server struct {
	docs      docsearch.DocsService
	libraries []string
	server    *mcp.Server
}

// NewServer creates a new MCP server backed by docs. libraries are listed in
// the tool description so the host knows which identifiers are accepted.
func NewServer(docs docsearch.DocsService, libraries []string, version string) *Server {
	s := &Server{
		docs:      docs,
		libraries: libraries,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    ServerName,
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

// Run serves over stdio until ctx is cancelled or the host disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves a single session over t. Used for in-process hosts.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

// Handler returns an http.Handler serving the streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves the streamable HTTP transport on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
