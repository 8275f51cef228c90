// Package websocket pushes vote snapshots and user notifications to connected UI clients.
package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jbeshir/forum-vote-sync/internal/datasources"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
	"github.com/jbeshir/forum-vote-sync/internal/metrics"
)

const (
	maxClients       = 50
	clientBufferSize = 64
	writeTimeout     = 5 * time.Second
)

var errHubStopped = errors.New("hub stopped")

var (
	_ datasources.VoteObserver = (*Hub)(nil)
	_ datasources.UserNotifier = (*Hub)(nil)
)

// Event is the JSON message sent to clients.
type Event struct {
	Type    string            `json:"type"`
	Target  *domain.TargetRef `json:"target,omitempty"`
	Votes   *domain.VoteSets  `json:"votes,omitempty"`
	Message string            `json:"message,omitempty"`
}

const (
	EventTypeVotes        = "votes"
	EventTypeNotification = "notification"
)

// --- Command types ---

type hubCmd interface{ hubCmd() }

type cmdRegister struct {
	id    uuid.UUID
	conn  *websocket.Conn
	errCh chan error
}

func (cmdRegister) hubCmd() {}

type cmdUnregister struct {
	id uuid.UUID
}

func (cmdUnregister) hubCmd() {}

type cmdBroadcast struct {
	data []byte
}

func (cmdBroadcast) hubCmd() {}

type cmdClientCount struct {
	replyCh chan int
}

func (cmdClientCount) hubCmd() {}

// --- Per-connection writer ---

type clientWriter struct {
	conn   *websocket.Conn
	sendCh chan []byte
	done   chan struct{}
}

func newClientWriter(conn *websocket.Conn) *clientWriter {
	cw := &clientWriter{
		conn:   conn,
		sendCh: make(chan []byte, clientBufferSize),
		done:   make(chan struct{}),
	}
	go cw.run()
	return cw
}

func (cw *clientWriter) run() {
	for {
		select {
		case msg := <-cw.sendCh:
			_ = cw.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := cw.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-cw.done:
			return
		}
	}
}

func (cw *clientWriter) stop() {
	close(cw.done)
	_ = cw.conn.Close()
}

// --- Hub ---

// Hub is an actor owning every client connection. All state is touched only by Run's goroutine,
// so snapshots reach each client in the order they were published.
type Hub struct {
	cmdCh   chan hubCmd
	done    chan struct{}
	logger  *slog.Logger
	clients map[uuid.UUID]*clientWriter
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		cmdCh:   make(chan hubCmd, 256),
		done:    make(chan struct{}),
		logger:  logger,
		clients: make(map[uuid.UUID]*clientWriter),
	}
}

// Run processes hub commands until ctx is cancelled, then closes every connection.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)

	for {
		select {
		case cmd := <-h.cmdCh:
			switch c := cmd.(type) {
			case cmdRegister:
				h.handleRegister(c)
			case cmdUnregister:
				h.handleUnregister(c.id)
			case cmdBroadcast:
				h.handleBroadcast(c)
			case cmdClientCount:
				c.replyCh <- len(h.clients)
			}
		case <-ctx.Done():
			for id := range h.clients {
				h.handleUnregister(id)
			}
			return nil
		}
	}
}

func (h *Hub) handleRegister(c cmdRegister) {
	if len(h.clients) >= maxClients {
		h.logger.Warn("rejecting event client, limit reached", "max_clients", maxClients)
		_ = c.conn.Close()
		c.errCh <- fmt.Errorf("max clients (%d) reached", maxClients)
		return
	}

	h.clients[c.id] = newClientWriter(c.conn)
	metrics.EventClientsConnected.Inc()
	h.logger.Debug("event client registered", "client_id", c.id.String(), "clients", len(h.clients))
	c.errCh <- nil
}

func (h *Hub) handleUnregister(id uuid.UUID) {
	cw, exists := h.clients[id]
	if !exists {
		return
	}

	cw.stop()
	delete(h.clients, id)
	metrics.EventClientsConnected.Dec()
	h.logger.Debug("event client unregistered", "client_id", id.String(), "clients", len(h.clients))
}

func (h *Hub) handleBroadcast(c cmdBroadcast) {
	var slow []uuid.UUID
	for id, cw := range h.clients {
		select {
		case cw.sendCh <- c.data:
		default:
			slow = append(slow, id)
		}
	}

	for _, id := range slow {
		metrics.EventMessagesDropped.Inc()
		h.logger.Warn("disconnecting slow event client", "client_id", id.String())
		h.handleUnregister(id)
	}
}

// send enqueues cmd unless the hub has stopped.
func (h *Hub) send(cmd hubCmd) bool {
	select {
	case h.cmdCh <- cmd:
		return true
	case <-h.done:
		return false
	}
}

// trySend enqueues cmd without waiting. It reports false, counting a drop, when the queue is
// full or the hub has stopped.
func (h *Hub) trySend(cmd hubCmd) bool {
	select {
	case <-h.done:
		return false
	default:
	}

	select {
	case h.cmdCh <- cmd:
		return true
	default:
		metrics.EventMessagesDropped.Inc()
		h.logger.Warn("event queue full, dropping broadcast")
		return false
	}
}

// --- Public API ---

func (h *Hub) Register(id uuid.UUID, conn *websocket.Conn) error {
	errCh := make(chan error, 1)
	if !h.send(cmdRegister{id: id, conn: conn, errCh: errCh}) {
		_ = conn.Close()
		return errHubStopped
	}
	select {
	case err := <-errCh:
		return err
	case <-h.done:
		_ = conn.Close()
		return errHubStopped
	}
}

func (h *Hub) Unregister(id uuid.UUID) {
	h.send(cmdUnregister{id: id})
}

func (h *Hub) ClientCount() int {
	replyCh := make(chan int, 1)
	if !h.send(cmdClientCount{replyCh: replyCh}) {
		return 0
	}
	select {
	case n := <-replyCh:
		return n
	case <-h.done:
		return 0
	}
}

// PublishVotes broadcasts a vote snapshot. It is called synchronously by the store,
// so it never waits for queue space; a full queue drops the snapshot.
func (h *Hub) PublishVotes(snapshot domain.VoteSnapshot) {
	h.broadcast(Event{Type: EventTypeVotes, Target: &snapshot.Target, Votes: &snapshot.Votes})
}

func (h *Hub) NotifyUser(ctx context.Context, message string) {
	h.broadcast(Event{Type: EventTypeNotification, Message: message})
}

func (h *Hub) broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("unable to marshal event", "error", err, "type", event.Type)
		return
	}
	h.trySend(cmdBroadcast{data: data})
}
