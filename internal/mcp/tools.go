package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listVersionsTool defines the list_versions MCP tool.
var listVersionsTool = mcp.NewTool("list_versions",
	mcp.WithDescription("List the OpenAPI/Swagger versions in the example catalog, in display order, with example counts."),
)

// listExamplesTool defines the list_examples MCP tool.
var listExamplesTool = mcp.NewTool("list_examples",
	mcp.WithDescription("List the examples published for one OAS version."),
	mcp.WithString("version",
		mcp.Required(),
		mcp.Description("Version label, e.g. 3.0"),
	),
)

// getExampleTool defines the get_example MCP tool.
var getExampleTool = mcp.NewTool("get_example",
	mcp.WithDescription("Get the full text of one example API definition."),
	mcp.WithString("version",
		mcp.Required(),
		mcp.Description("Version label, e.g. 3.1"),
	),
	mcp.WithString("identifier",
		mcp.Required(),
		mcp.Description("Example identifier, e.g. petstore"),
	),
	mcp.WithString("format",
		mcp.Description("Serialization to return (default json)"),
		mcp.Enum("json", "yaml"),
	),
)
