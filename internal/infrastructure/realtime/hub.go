package realtime

import (
	"context"
	"log"
	"sync"
	"time"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/domain/lifecycle"
	"autocare_api/internal/usecase/interfaces"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	defaultBuffer = 64
)

type subscriber struct {
	actor entities.Actor
	ch    chan entities.JobEvent
}

// Hub fans job events out to websocket subscribers. Each subscriber only receives jobs it
// may see; a subscriber whose buffer is full misses events instead of slowing writers.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*subscriber]struct{}
	buffer int
}

var _ interfaces.IJobEventPublisher = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{subs: map[*subscriber]struct{}{}, buffer: defaultBuffer}
}

// Subscribe registers actor and returns its event stream plus the func that unregisters
// it and closes the stream.
func (h *Hub) Subscribe(actor entities.Actor) (<-chan entities.JobEvent, func()) {
	s := &subscriber{actor: actor, ch: make(chan entities.JobEvent, h.buffer)}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return s.ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, s)
			h.mu.Unlock()
			close(s.ch)
		})
	}
}

func (h *Hub) Publish(_ context.Context, event entities.JobEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		ev, ok := eventFor(s.actor, event)
		if !ok {
			continue
		}
		select {
		case s.ch <- ev:
		default:
			log.Printf("[realtime][hub] subscriber buffer full actor_id=%s job_id=%s", s.actor.ID, event.JobID)
		}
	}
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// eventFor decides what actor receives. Technicians who lost an open job to a colleague
// get the status change without the job body, so their board can drop it.
func eventFor(actor entities.Actor, event entities.JobEvent) (entities.JobEvent, bool) {
	if event.Job.VisibleTo(actor) {
		return event, true
	}
	if actor.Role == entities.RoleTechnician && event.Command == string(lifecycle.KindAccept) {
		event.Job = entities.Job{}
		return event, true
	}
	return entities.JobEvent{}, false
}

// Serve streams actor's events to conn until the peer goes away or ctx ends.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn, actor entities.Actor) {
	events, unsubscribe := h.Subscribe(actor)
	defer unsubscribe()
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Reader side: only pongs and close frames are expected.
	conn.SetReadLimit(4 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	log.Printf("[realtime][hub] subscriber connected actor_id=%s role=%s", actor.ID, actor.Role)
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			log.Printf("[realtime][hub] subscriber disconnected actor_id=%s", actor.ID)
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				log.Printf("[realtime][hub] write failed actor_id=%s err=%v", actor.ID, err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
