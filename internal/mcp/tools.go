package mcp

import "github.com/mark3labs/mcp-go/mcp"

// parseScriptTool defines the parse_script MCP tool.
var parseScriptTool = mcp.NewTool("parse_script",
	mcp.WithDescription("Parse teleprompter script text into slides, spoken lines and cues. Returns an outline or the sanitized JSON structure."),
	mcp.WithString("content",
		mcp.Required(),
		mcp.Description("Script text: '## ' headings start slides, [CLICK], [PAUSE] and [NOTE ...] lines are cues, **text** marks slow delivery"),
	),
	mcp.WithString("format",
		mcp.Description("Output format (default outline)"),
		mcp.Enum("outline", "json"),
	),
)

// estimateDurationTool defines the estimate_duration MCP tool.
var estimateDurationTool = mcp.NewTool("estimate_duration",
	mcp.WithDescription("Estimate how long a script takes to read through with auto-scroll at a given speed level."),
	mcp.WithString("content",
		mcp.Required(),
		mcp.Description("Script text"),
	),
	mcp.WithNumber("scroll_level",
		mcp.Description("Auto-scroll speed level from 1 (slowest) to 7 (fastest), default 3"),
	),
)

// shareScriptTool defines the share_script MCP tool.
var shareScriptTool = mcp.NewTool("share_script",
	mcp.WithDescription("Store a script and return a share link and id that a presenter can open later."),
	mcp.WithString("content",
		mcp.Required(),
		mcp.Description("Script text, at most the configured character limit (100,000 by default)"),
	),
)

// getSharedScriptTool defines the get_shared_script MCP tool.
var getSharedScriptTool = mcp.NewTool("get_shared_script",
	mcp.WithDescription("Fetch a previously shared script by its 12-character id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Share id returned by share_script"),
	),
	mcp.WithString("format",
		mcp.Description("Output format (default text)"),
		mcp.Enum("text", "outline"),
	),
)
