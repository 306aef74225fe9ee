// Package remote drives presentation sessions over WebSocket. Each session
// runs one controller loop; any number of clients (the prompter screen, a
// phone used as a clicker) can join it and see the same state.
package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/prompter/internal/sanitize"
	"github.com/ziadkadry99/prompter/internal/script"
	"github.com/ziadkadry99/prompter/internal/session"
	"github.com/ziadkadry99/prompter/internal/share"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 5 * time.Second

// Config holds per-session defaults.
type Config struct {
	FrameInterval time.Duration
	TimerInterval time.Duration
	ScrollLevel   int
	MaxChars      int
}

// Hub tracks live sessions by id.
type Hub struct {
	cfg    Config
	loader share.Loader

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	rooms map[string]*room
}

// NewHub creates a hub. loader resolves "load_shared" requests and may be
// nil when sharing is disabled.
func NewHub(cfg Config, loader share.Loader) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		cfg:    cfg,
		loader: loader,
		ctx:    ctx,
		cancel: cancel,
		rooms:  make(map[string]*room),
	}
}

// RegisterRoutes mounts the session WebSocket endpoint.
func RegisterRoutes(r chi.Router, hub *Hub) {
	r.Get("/ws/session", hub.handleWebSocket)
}

// Sessions returns the number of live sessions.
func (h *Hub) Sessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms)
}

// Close stops every session loop.
func (h *Hub) Close() {
	h.cancel()
}

func (h *Hub) join(id string, c *client) *room {
	h.mu.Lock()
	defer h.mu.Unlock()

	rm, ok := h.rooms[id]
	if !ok {
		rm = newRoom(h.ctx, id, h.cfg)
		h.rooms[id] = rm
		slog.Info("remote session started", "session", id)
	}
	rm.add(c)
	return rm
}

func (h *Hub) leave(rm *room, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if rm.remove(c) == 0 {
		rm.stop()
		delete(h.rooms, rm.id)
		slog.Info("remote session ended", "session", rm.id)
	}
}

func (h *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(share.MaxBodyBytes(h.cfg.MaxChars))

	c := &client{conn: conn}
	rm := h.join(id, c)
	defer h.leave(rm, c)

	c.send(serverMessage{Type: "joined", SessionID: id})
	rm.do(func() {
		c.send(snapshotMessage(rm.ctrl.Store().Snapshot()))
		if rm.ctrl.Store().Loaded() {
			c.send(serverMessage{Type: "script", Slides: sanitize.Script(rm.ctrl.Store().Script())})
		}
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read", "session", id, "error", err)
			}
			return
		}

		var req clientMessage
		if err := json.Unmarshal(msg, &req); err != nil {
			c.send(errorMessage(id, "invalid message format"))
			continue
		}
		h.handleMessage(r.Context(), rm, c, req)
	}
}

func (h *Hub) handleMessage(ctx context.Context, rm *room, c *client, req clientMessage) {
	switch req.Type {
	case "load":
		if err := share.ValidateContent(req.Content, h.cfg.MaxChars); err != nil {
			c.send(errorMessage(rm.id, err.Error()))
			return
		}
		rm.load(script.Parse(req.Content))
	case "load_shared":
		if h.loader == nil {
			c.send(errorMessage(rm.id, "sharing is not enabled"))
			return
		}
		sc, ok, err := share.LoadScript(ctx, h.loader, req.ID)
		if err != nil {
			slog.Error("loading shared script", "id", req.ID, "error", err)
			c.send(errorMessage(rm.id, "failed to load the shared script"))
			return
		}
		if !ok {
			c.send(errorMessage(rm.id, share.ErrNotFound.Error()))
			return
		}
		rm.load(sc)
	case "metrics":
		rm.do(func() {
			rm.viewport.SetMetrics(req.ScrollHeight, req.ViewportHeight, req.Offset)
		})
	case "command":
		var err error
		rm.do(func() { err = rm.ctrl.Handle(session.Command(req.Command)) })
		if err != nil {
			c.send(errorMessage(rm.id, err.Error()))
		}
	case "discard":
		rm.do(rm.ctrl.Discard)
	default:
		c.send(errorMessage(rm.id, "unknown message type: "+req.Type))
	}
}

// client is one WebSocket connection. Writes come from both the session
// loop and the connection's reader, so they are serialized.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(msg serverMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		slog.Debug("websocket write", "error", err)
	}
}
