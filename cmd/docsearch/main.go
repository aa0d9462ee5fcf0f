package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsearch"
	"github.com/joho/godotenv"
)

// Version is reported to MCP hosts.
const Version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	// Run has already reported the error on stderr.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up environment overrides. Defaults to os.Getenv.
	Getenv func(string) string

	// Docs replaces the wired pipeline when set. Used for end-to-end testing.
	Docs docsearch.DocsService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Run executes the CLI with the given arguments. A failure is reported on
// stderr once, as "error: <message>", and returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorText(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsearch"),
		kong.Description("Search official library documentation and return it as cleaned, source-labeled text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	cfg, err := LoadConfig(cli.Config, m.getenv)
	if err != nil {
		return err
	}
	deps.Registry = docsearch.NewRegistry(cfg.Libraries)

	// Only commands that run the pipeline need credentials.
	switch commandName(kongCtx.Command()) {
	case "get", "serve":
		if m.Docs != nil {
			deps.Docs = m.Docs
			break
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(stderr, "Hint: set SERPER_API_KEY and the summarizer API key in the environment or a .env file")
			return err
		}
		docs, closeFn, err := NewDocsService(ctx, cfg, deps.Logger)
		if err != nil {
			return err
		}
		defer func() { _ = closeFn() }()
		deps.Docs = docs
	}

	return kongCtx.Run(deps)
}

func (m *Main) getenv(key string) string {
	if m.Getenv == nil {
		return os.Getenv(key)
	}
	return m.Getenv(key)
}

// errorText returns the message of an application error, or the full text of
// any other error such as a usage error from the parser.
func errorText(err error) string {
	var e *docsearch.Error
	if errors.As(err, &e) {
		return docsearch.ErrorMessage(err)
	}
	return err.Error()
}

// newLogger returns a text logger writing to w. Logs never go to stdout,
// which carries the MCP stdio transport.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// commandName returns the leading word of a kong command path such as
// "get <library> <query>".
func commandName(path string) string {
	name, _, _ := strings.Cut(path, " ")
	return name
}
