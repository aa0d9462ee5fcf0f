package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolName is the name of the documentation retrieval tool.
const ToolName = "get_docs"

// GetDocsInput is the input schema for the get_docs tool.
type GetDocsInput struct {
	Query   string `json:"query" jsonschema:"the query to search for, e.g. Publish a package with UV"`
	Library string `json:"library" jsonschema:"the library to search in, e.g. uv"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolName,
		Description: s.description(),
	}, s.handleGetDocs)
}

func (s *Server) description() string {
	desc := "Search the latest docs for a given query and library. Returns cleaned text from the docs with source links."
	if len(s.libraries) > 0 {
		desc += " Supports " + strings.Join(s.libraries, ", ") + "."
	}
	return desc
}

// handleGetDocs runs one retrieval. Failures are reported as tool errors
// carrying the error code so the host can tell them apart.
func (s *Server) handleGetDocs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDocsInput,
) (*mcp.CallToolResult, any, error) {
	doc, err := s.docs.GetDocs(ctx, input.Query, input.Library)
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: formatError(err)}},
		}, nil, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: doc}},
	}, nil, nil
}

func formatError(err error) string {
	return fmt.Sprintf("%s: %s", docsearch.ErrorCode(err), docsearch.ErrorMessage(err))
}
