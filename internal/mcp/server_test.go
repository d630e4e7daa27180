package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/oas-examples/internal/catalog"
	"github.com/ziadkadry99/oas-examples/internal/viewer"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cat, err := catalog.New([]catalog.Version{
		{Label: "2.0", Examples: []catalog.ExampleRecord{
			{Identifier: "petstore", DisplayName: "Petstore", JSONText: "{\n  \"swagger\": \"2.0\"\n}", YAMLText: "swagger: \"2.0\"\n"},
		}},
		{Label: "3.0", Examples: []catalog.ExampleRecord{
			{Identifier: "petstore", DisplayName: "Petstore", JSONText: "{\n  \"openapi\": \"3.0.0\"\n}", YAMLText: "openapi: 3.0.0\n"},
			{Identifier: "callbacks", DisplayName: "Callbacks", JSONText: "{\n  \"openapi\": \"3.0.3\"\n}", YAMLText: "openapi: 3.0.3\n"},
		}},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	links := viewer.Links{RawTemplate: "https://example.com/{version}/{format}/{identifier}.{format}"}
	return NewServer(cat, links)
}

func TestToolDefinitions(t *testing.T) {
	// Verify tool names and required properties.
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_versions", listVersionsTool, "list_versions"},
		{"list_examples", listExamplesTool, "list_examples"},
		{"get_example", getExampleTool, "get_example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := testServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.cat.Count() != 3 {
		t.Errorf("catalog not set correctly")
	}
}

func TestHandleListVersions(t *testing.T) {
	srv := testServer(t)
	result, err := srv.handleListVersions(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := extractText(result)
	if !strings.Contains(text, "- 2.0 (v2.0): 1 example(s)") || !strings.Contains(text, "- 3.0 (v3.0): 2 example(s)") {
		t.Errorf("unexpected text:\n%s", text)
	}
	if strings.Index(text, "2.0") > strings.Index(text, "3.0") {
		t.Error("versions should be listed in declared order")
	}
}

func TestHandleListExamples(t *testing.T) {
	srv := testServer(t)
	ctx := context.Background()

	t.Run("known version", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"version": "3.0"}

		result, err := srv.handleListExamples(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := extractText(result)
		if !strings.Contains(text, "- callbacks: Callbacks") {
			t.Errorf("unexpected text:\n%s", text)
		}
	})

	t.Run("unknown version", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"version": "4.0"}

		result, err := srv.handleListExamples(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown version")
		}
	})

	t.Run("missing version", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleListExamples(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing version")
		}
	})
}

func TestHandleGetExample(t *testing.T) {
	srv := testServer(t)
	ctx := context.Background()

	t.Run("default json", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"version": "3.0", "identifier": "callbacks"}

		result, err := srv.handleGetExample(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := extractText(result)
		if !strings.HasSuffix(text, "{\n  \"openapi\": \"3.0.3\"\n}") {
			t.Errorf("unexpected text:\n%s", text)
		}
		if !strings.Contains(text, "Source: https://example.com/3.0/json/callbacks.json") {
			t.Errorf("missing source link:\n%s", text)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"version": "2.0", "identifier": "petstore", "format": "yaml"}

		result, err := srv.handleGetExample(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(extractText(result), "swagger: \"2.0\"\n") {
			t.Errorf("unexpected text:\n%s", extractText(result))
		}
	})

	t.Run("errors", func(t *testing.T) {
		cases := []map[string]any{
			{"identifier": "petstore"},
			{"version": "3.0"},
			{"version": "3.0", "identifier": "petstore", "format": "xml"},
			{"version": "2.0", "identifier": "callbacks"},
		}
		for _, args := range cases {
			req := mcp.CallToolRequest{}
			req.Params.Arguments = args

			result, err := srv.handleGetExample(ctx, req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.IsError {
				t.Errorf("expected tool error for %v", args)
			}
		}
	})
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
