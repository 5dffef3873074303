package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ccwkit/ccwkit/internal/adapters/outbound/catalog"
	"github.com/ccwkit/ccwkit/internal/application"
	"github.com/ccwkit/ccwkit/internal/domain"
	"github.com/ccwkit/ccwkit/internal/domain/scoring"
)

// registerTools registers all CCWKit MCP tools on the given server.
func registerTools(s *server.MCPServer, catalogPath string) {
	// 1. ccwkit_score
	s.AddTool(
		mcplib.NewTool("ccwkit_score",
			mcplib.WithDescription("Score a complete response set and return the full assessment report as JSON"),
			mcplib.WithString("answers",
				mcplib.Required(),
				mcplib.Description(`JSON object mapping item IDs to raw scale values, e.g. {"q1": 5, "q2": 3}`),
			),
			mcplib.WithNumber("top_k",
				mcplib.Description("Number of top dimensions to select (defaults to the catalog's setting)"),
			),
		),
		handleScore(catalogPath),
	)

	// 2. ccwkit_resolve_profile
	s.AddTool(
		mcplib.NewTool("ccwkit_resolve_profile",
			mcplib.WithDescription("Resolve a set of dimension IDs to its narrative profile via the combination table"),
			mcplib.WithString("dimensions",
				mcplib.Required(),
				mcplib.Description("Comma-separated dimension IDs, order irrelevant"),
			),
		),
		handleResolveProfile(catalogPath),
	)

	// 3. ccwkit_get_catalog
	s.AddTool(
		mcplib.NewTool("ccwkit_get_catalog",
			mcplib.WithDescription("Return the active survey catalog (dimensions, items, scale, profile tables) as JSON"),
		),
		handleGetCatalog(catalogPath),
	)

	// 4. ccwkit_validate_catalog
	s.AddTool(
		mcplib.NewTool("ccwkit_validate_catalog",
			mcplib.WithDescription("Validate the active catalog's structural integrity and report every problem found"),
		),
		handleValidateCatalog(catalogPath),
	)
}

func loadCatalog(catalogPath string) (*application.AssessService, *domain.Catalog, error) {
	svc := application.NewAssessService(catalog.New())
	cat, err := svc.LoadCatalog(catalogPath)
	return svc, cat, err
}

func handleScore(catalogPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		answersJSON, err := request.RequireString("answers")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var responses domain.Responses
		if err := json.Unmarshal([]byte(answersJSON), &responses); err != nil {
			return errorResult(fmt.Sprintf("parsing answers: %v", err)), nil
		}

		topK := 0
		if k, ok := request.GetArguments()["top_k"].(float64); ok {
			topK = int(k)
		}

		svc, cat, err := loadCatalog(catalogPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading catalog: %v", err)), nil
		}

		report, err := svc.Assess(cat, responses, topK)
		if err != nil {
			return errorResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleResolveProfile(catalogPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dimsStr, err := request.RequireString("dimensions")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		_, cat, err := loadCatalog(catalogPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading catalog: %v", err)), nil
		}

		ids := splitAndTrim(dimsStr)
		for _, id := range ids {
			if _, ok := cat.Dimension(id); !ok {
				return errorResult(fmt.Sprintf("unknown dimension %q", id)), nil
			}
		}

		resolution := scoring.ResolveProfile(ids, cat.Profiles)
		return jsonResult(resolution)
	}
}

func handleGetCatalog(catalogPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		_, cat, err := loadCatalog(catalogPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading catalog: %v", err)), nil
		}
		return jsonResult(cat)
	}
}

func handleValidateCatalog(catalogPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		type validation struct {
			Valid    bool     `json:"valid"`
			Problems []string `json:"problems,omitempty"`
		}

		_, _, err := loadCatalog(catalogPath)
		if err != nil {
			var catErr *domain.CatalogError
			if errors.As(err, &catErr) {
				return jsonResult(validation{Problems: catErr.Problems})
			}
			return errorResult(fmt.Sprintf("loading catalog: %v", err)), nil
		}
		return jsonResult(validation{Valid: true})
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
