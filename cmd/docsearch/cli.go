package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docsearch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Registry *docsearch.Registry
	Docs     docsearch.DocsService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" help:"Path to YAML config file (default: ./docsearch.yaml or ~/.config/docsearch/config.yaml)" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging on stderr"`

	// Without arguments the binary serves over stdio, which is how agent
	// hosts launch it.
	Serve     ServeCmd     `cmd:"" default:"withargs" help:"Serve the get_docs tool over MCP (stdio by default)"`
	Get       GetCmd       `cmd:"" help:"Retrieve documentation for a query once and print it"`
	Libraries LibrariesCmd `cmd:"" help:"List supported libraries and their documentation scope"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	HTTP string `name:"http" placeholder:"ADDR" help:"Serve streamable HTTP on ADDR instead of stdio"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Library string   `arg:"" help:"Library identifier (see 'docsearch libraries')"`
	Query   []string `arg:"" help:"Query to search for"`
}

// LibrariesCmd is the "libraries" subcommand.
type LibrariesCmd struct{}
