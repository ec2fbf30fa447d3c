package mcpadapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/cardwise/card-assistant/internal/index"
	"github.com/cardwise/card-assistant/internal/models"
	"github.com/cardwise/card-assistant/internal/orchestrator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the MCP tool input schema (matches HTTP API field names).
type AskInput struct {
	Query string `json:"query" jsonschema:"credit card question to answer"`
}

// SearchDocumentsInput is the MCP tool input schema for raw index search.
type SearchDocumentsInput struct {
	Query string `json:"query" jsonschema:"search query"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"maximum number of results (default: 3)"`
}

// SearchDocumentsOutput holds the scored chunks from the document index.
type SearchDocumentsOutput struct {
	Results []models.SearchResult `json:"results"`
}

// NewAskHandler returns a tool handler that answers through the full tiered pipeline.
// Pass the returned function to mcp.AddTool.
func NewAskHandler(orch *orchestrator.Orchestrator) func(context.Context, *mcp.CallToolRequest, AskInput) (*mcp.CallToolResult, models.Answer, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AskInput) (*mcp.CallToolResult, models.Answer, error) {
		if strings.TrimSpace(input.Query) == "" {
			return nil, models.Answer{}, fmt.Errorf("query is required")
		}
		return nil, orch.Answer(ctx, input.Query), nil
	}
}

// NewSearchDocumentsHandler returns a tool handler over the document index.
// Pass the returned function to mcp.AddTool.
func NewSearchDocumentsHandler(idx *index.Index) func(context.Context, *mcp.CallToolRequest, SearchDocumentsInput) (*mcp.CallToolResult, SearchDocumentsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchDocumentsInput) (*mcp.CallToolResult, SearchDocumentsOutput, error) {
		if strings.TrimSpace(input.Query) == "" {
			return nil, SearchDocumentsOutput{}, fmt.Errorf("query is required")
		}

		results := idx.Search(input.Query, input.TopK, 0)
		return nil, SearchDocumentsOutput{Results: results}, nil
	}
}
