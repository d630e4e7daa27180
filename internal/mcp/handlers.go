package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/oas-examples/internal/viewer"
)

// handleListVersions lists catalog versions with their example counts.
func (s *Server) handleListVersions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	labels := s.cat.Labels()
	if len(labels) == 0 {
		return mcp.NewToolResultText("The catalog is empty. Run `oasexamples build` first."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d version(s):\n", len(labels)))
	for _, label := range labels {
		examples, _ := s.cat.Examples(label)
		sb.WriteString(fmt.Sprintf("- %s (%s): %d example(s)\n", label, viewer.TabName(label), len(examples)))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleListExamples lists the examples of one version.
func (s *Server) handleListExamples(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	version, err := request.RequireString("version")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: version"), nil
	}

	examples, ok := s.cat.Examples(version)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Unknown version %q. Available versions: %s",
			version, strings.Join(s.cat.Labels(), ", "),
		)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d example(s) for %s:\n", len(examples), version))
	for _, ex := range examples {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", ex.Identifier, ex.DisplayName))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetExample returns one example in the requested format.
func (s *Server) handleGetExample(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	version, err := request.RequireString("version")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: version"), nil
	}
	identifier, err := request.RequireString("identifier")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: identifier"), nil
	}
	format := viewer.Format(request.GetString("format", string(viewer.FormatJSON)))
	if !format.Valid() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q, expected json or yaml", format)), nil
	}

	rec, ok := s.cat.Example(version, identifier)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No example %q for version %q. Use list_examples to see what is available.",
			identifier, version,
		)), nil
	}

	text, _ := rec.Text(string(format))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (%s, %s)\n", rec.DisplayName, version, format))
	if raw := s.links.RawURL(version, identifier, format); strings.Contains(raw, "://") {
		sb.WriteString(fmt.Sprintf("Source: %s\n", raw))
	}
	sb.WriteString("\n")
	sb.WriteString(text)
	return mcp.NewToolResultText(sb.String()), nil
}
