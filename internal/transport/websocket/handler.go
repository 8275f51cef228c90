package websocket

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EventsHandler upgrades the request and streams hub events until the client disconnects.
type EventsHandler struct {
	Hub *Hub
}

func (c EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		logger.WarnContext(ctx, "unable to upgrade event stream", "error", err)
		return
	}

	id := uuid.New()
	if err := c.Hub.Register(id, conn); err != nil {
		logger.WarnContext(ctx, "unable to register event client", "error", err)
		return
	}
	defer c.Hub.Unregister(id)

	// Clients never send anything meaningful; reading detects the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
