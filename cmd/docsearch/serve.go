package main

import (
	"github.com/fwojciec/docsearch/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := mcp.NewServer(deps.Docs, deps.Registry.Libraries(), Version)

	if c.HTTP != "" {
		deps.Logger.Info("serving MCP over HTTP", "addr", c.HTTP)
		return server.RunHTTP(deps.Ctx, c.HTTP)
	}

	deps.Logger.Info("serving MCP over stdio")
	return server.Run(deps.Ctx)
}
