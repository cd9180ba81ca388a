package mcp

import "github.com/mark3labs/mcp-go/mcp"

// askCampusTool defines the ask_campus MCP tool.
var askCampusTool = mcp.NewTool("ask_campus",
	mcp.WithDescription("Ask the campus assistant a question. Answers from the curated knowledge base when confident, otherwise escalates to the configured LLM."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("The question to ask, e.g. 'what are the BCA fees'"),
	),
	mcp.WithString("session_id",
		mcp.Description("Session ID from a previous call, to continue a conversation"),
	),
)

// searchKnowledgeTool defines the search_knowledge MCP tool.
var searchKnowledgeTool = mcp.NewTool("search_knowledge",
	mcp.WithDescription("Score a query against the knowledge base and return the top candidate entries with their scores and match reasons. Does not escalate."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language query to score"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of candidates to return (default 5)"),
	),
)

// listEntriesTool defines the list_knowledge_entries MCP tool.
var listEntriesTool = mcp.NewTool("list_knowledge_entries",
	mcp.WithDescription("List the questions and categories of all curated knowledge base entries."),
	mcp.WithString("category",
		mcp.Description("Only list entries in this category"),
	),
)
