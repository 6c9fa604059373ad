package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getPaperTool defines the get_paper MCP tool.
var getPaperTool = mcp.NewTool("get_paper",
	mcp.WithDescription("Get a markdown summary of the paper: title, venue, authors, links, abstract and scenarios."),
)

// getCitationTool defines the get_citation MCP tool.
var getCitationTool = mcp.NewTool("get_citation",
	mcp.WithDescription("Get the exact BibTeX entry for the paper."),
)

// listScenariosTool defines the list_scenarios MCP tool.
var listScenariosTool = mcp.NewTool("list_scenarios",
	mcp.WithDescription("List the evaluation scenarios with their reported metrics."),
	mcp.WithString("title",
		mcp.Description("Return only the scenario with this title"),
	),
)
