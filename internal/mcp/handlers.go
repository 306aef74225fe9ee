package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/prompter/internal/rehearse"
	"github.com/ziadkadry99/prompter/internal/sanitize"
	"github.com/ziadkadry99/prompter/internal/script"
	"github.com/ziadkadry99/prompter/internal/session"
	"github.com/ziadkadry99/prompter/internal/share"
)

// handleParseScript parses script text and returns its structure.
func (s *Server) handleParseScript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: content"), nil
	}

	sc := script.Parse(content)
	switch format := request.GetString("format", "outline"); format {
	case "outline":
		return mcp.NewToolResultText(summary(sc) + "\n\n" + rehearse.Outline(sc)), nil
	case "json":
		data, err := json.MarshalIndent(sanitize.Script(sc), "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encoding script: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q: use outline or json", format)), nil
	}
}

// handleEstimateDuration reports the auto-scroll reading time for a script.
func (s *Server) handleEstimateDuration(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: content"), nil
	}

	level := request.GetInt("scroll_level", session.DefaultScrollLevel)
	if level < session.MinScrollLevel || level > session.MaxScrollLevel {
		return mcp.NewToolResultError(fmt.Sprintf("scroll_level must be between %d and %d", session.MinScrollLevel, session.MaxScrollLevel)), nil
	}

	sc := script.Parse(content)
	d := rehearse.EstimateDuration(sc, level)
	return mcp.NewToolResultText(fmt.Sprintf(
		"%s at level %d (%.0f px/s) for %s.",
		session.FormatElapsed(d), level, session.Speed(level), summary(sc),
	)), nil
}

// handleShareScript stores a script and returns its link.
func (s *Server) handleShareScript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.store == nil {
		return mcp.NewToolResultError("sharing is not configured"), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: content"), nil
	}

	saved, err := s.store.Save(ctx, content)
	if errors.Is(err, share.ErrEmptyScript) || errors.Is(err, share.ErrScriptTooLarge) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("saving script: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("id: %s\nurl: %s/s/%s", saved.ID, s.baseURL, saved.ID)), nil
}

// handleGetSharedScript returns a shared script's text or outline.
func (s *Server) handleGetSharedScript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.store == nil {
		return mcp.NewToolResultError("sharing is not configured"), nil
	}
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	saved, err := s.store.Load(ctx, id)
	if errors.Is(err, share.ErrNotFound) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading script: %v", err)), nil
	}

	if request.GetString("format", "text") == "outline" {
		return mcp.NewToolResultText(rehearse.Outline(script.Parse(saved.Content))), nil
	}
	return mcp.NewToolResultText(saved.Content), nil
}

// summary describes a script's size in one line.
func summary(sc script.Script) string {
	return fmt.Sprintf("%d slide(s), %d line(s)", len(sc), sc.TotalLines())
}
