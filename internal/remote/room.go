package remote

import (
	"context"
	"sync"

	"github.com/ziadkadry99/prompter/internal/sanitize"
	"github.com/ziadkadry99/prompter/internal/script"
	"github.com/ziadkadry99/prompter/internal/session"
)

// room is one live session and the clients watching it. Store, viewport
// and controller are touched only on the controller's loop.
type room struct {
	id       string
	ctrl     *session.Controller
	viewport *session.VirtualViewport
	cancel   context.CancelFunc

	mu      sync.Mutex
	clients map[*client]struct{}
}

func newRoom(parent context.Context, id string, cfg Config) *room {
	rm := &room{
		id:       id,
		viewport: session.NewVirtualViewport(0, 0),
		clients:  make(map[*client]struct{}),
	}
	rm.ctrl = session.NewController(rm.viewport, session.ControllerConfig{
		FrameInterval: cfg.FrameInterval,
		TimerInterval: cfg.TimerInterval,
		ScrollLevel:   cfg.ScrollLevel,
		OnFocus: func(line int) {
			rm.broadcast(serverMessage{Type: "focus", Line: &line})
		},
	})

	rm.viewport.OnScroll(func(px int, _ float64) {
		rm.broadcast(serverMessage{Type: "scroll", Pixels: px})
	})
	rm.viewport.OnBehavior(func(b session.ScrollBehavior) {
		rm.broadcast(serverMessage{Type: "behavior", Mode: string(b)})
	})
	rm.ctrl.Store().Subscribe(func(snap session.Snapshot) {
		rm.broadcast(snapshotMessage(snap))
	})

	ctx, cancel := context.WithCancel(parent)
	rm.cancel = cancel
	go rm.ctrl.Run(ctx)
	return rm
}

func (rm *room) add(c *client) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.clients[c] = struct{}{}
}

// remove drops c and returns how many clients remain.
func (rm *room) remove(c *client) int {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	delete(rm.clients, c)
	return len(rm.clients)
}

func (rm *room) broadcast(msg serverMessage) {
	rm.mu.Lock()
	clients := make([]*client, 0, len(rm.clients))
	for c := range rm.clients {
		clients = append(clients, c)
	}
	rm.mu.Unlock()

	for _, c := range clients {
		c.send(msg)
	}
}

// do runs fn on the session loop and waits for it. It is a no-op once the
// session has stopped.
func (rm *room) do(fn func()) {
	rm.ctrl.Do(context.Background(), func() error {
		fn()
		return nil
	})
}

func (rm *room) load(sc script.Script) {
	rm.do(func() {
		rm.broadcast(serverMessage{Type: "script", Slides: sanitize.Script(sc)})
		rm.ctrl.Load(sc)
	})
}

func (rm *room) stop() {
	rm.cancel()
}
