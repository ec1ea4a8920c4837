package websocket

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/events"
)

// Handler streams public catalog change events to connected clients
type Handler struct {
	Upgrader websocket.Upgrader
	Log      hclog.Logger
	EventBus *events.EventBus[any]
}

type Message struct {
	EventType string      `json:"event-type"`
	Data      interface{} `json:"data"`
}

func NewHandler(log hclog.Logger, eventBus *events.EventBus[any]) *Handler {
	return &Handler{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Cross origin access is governed by the CORS settings
				return true
			},
		},
		Log:      log,
		EventBus: eventBus,
	}
}

// messageFor names an event for the wire. ok is false for event types the
// stream does not publish. Enquiries are admin data and stay off the
// unauthenticated stream.
func messageFor(event any) (msg Message, ok bool) {
	switch e := event.(type) {
	case events.ProductAdded:
		return Message{EventType: "product_added", Data: e}, true
	case events.ProductUpdated:
		return Message{EventType: "product_updated", Data: e}, true
	case events.ProductDeleted:
		return Message{EventType: "product_deleted", Data: e}, true
	case events.CarouselUpdated:
		return Message{EventType: "carousel_updated", Data: e}, true
	default:
		return Message{}, false
	}
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Error("Unable to upgrade to WebSocket", "error", err)
		return
	}
	defer conn.Close()

	subscriber := h.EventBus.Subscribe()
	defer h.EventBus.Unsubscribe(subscriber)

	// done is closed once the client goes away
	done := make(chan struct{})
	go h.readPump(conn, done)

	for {
		select {
		case event, open := <-subscriber:
			if !open {
				return
			}

			message, ok := messageFor(event)
			if !ok {
				h.Log.Trace("Event not published on the stream", "event", event)
				continue
			}

			payload, err := json.Marshal(message)
			if err != nil {
				h.Log.Error("Error marshalling message", "error", err)
				continue
			}

			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.Log.Error("Error writing message to WebSocket", "error", err)
				return
			}
		case <-done:
			h.Log.Info("WebSocket connection closed by the client")
			return
		case <-r.Context().Done():
			return
		}
	}
}

// readPump drains client frames so control messages are processed and a
// closed connection is noticed.
func (h *Handler) readPump(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Log.Error("Error reading message", "error", err)
			}
			break
		}
	}
}
