package remote

import (
	"github.com/ziadkadry99/prompter/internal/script"
	"github.com/ziadkadry99/prompter/internal/session"
)

// clientMessage is the incoming WebSocket message format.
type clientMessage struct {
	Type    string `json:"type"`    // "load", "load_shared", "metrics", "command", "discard"
	Content string `json:"content"` // script text for "load"
	ID      string `json:"id"`      // shared script id for "load_shared"
	Command string `json:"command"` // session command for "command"

	ScrollHeight   float64 `json:"scroll_height"`
	ViewportHeight float64 `json:"viewport_height"`
	Offset         float64 `json:"offset"`
}

// serverMessage is the outgoing WebSocket message format.
type serverMessage struct {
	Type      string            `json:"type"` // "joined", "snapshot", "script", "scroll", "behavior", "focus" or "error"
	SessionID string            `json:"session_id,omitempty"`
	Content   string            `json:"content,omitempty"`
	State     *session.Snapshot `json:"state,omitempty"`
	Slides    script.Script     `json:"slides,omitempty"`
	Pixels    int               `json:"pixels,omitempty"`
	Mode      string            `json:"mode,omitempty"`
	Line      *int              `json:"line,omitempty"`
}

func snapshotMessage(snap session.Snapshot) serverMessage {
	return serverMessage{Type: "snapshot", State: &snap}
}

func errorMessage(sessionID, content string) serverMessage {
	return serverMessage{Type: "error", SessionID: sessionID, Content: content}
}
