package v1

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hackhub/hackhub-api/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production!
	},
}

type streamClient struct {
	conn   *websocket.Conn
	send   chan []byte
	userID uint
}

// StreamHub tracks each user's live websocket connection and pushes their
// in-app notifications to it. It satisfies the notification Pusher interface,
// so stored notifications reach connected users without polling.
type StreamHub struct {
	mu         sync.RWMutex
	clients    map[uint]*streamClient
	register   chan *streamClient
	unregister chan *streamClient
}

func NewStreamHub() *StreamHub {
	return &StreamHub{
		clients:    make(map[uint]*streamClient),
		register:   make(chan *streamClient),
		unregister: make(chan *streamClient),
	}
}

func (h *StreamHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.userID] = client
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.userID]; ok {
				delete(h.clients, client.userID)
				close(client.send)
			}
			h.mu.Unlock()
		}
	}
}

// Push delivers a notification to the user's connection. A user without a
// live connection just misses the push; the stored notification remains.
func (h *StreamHub) Push(userID uint, notification domain.Notification) {
	payload, err := json.Marshal(notification)
	if err != nil {
		zap.L().Error("failed to marshal notification", zap.Error(err))
		return
	}

	h.mu.RLock()
	client, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case client.send <- payload:
	default:
		// Slow consumer; drop the push rather than block the sender.
	}
}

func (c *streamClient) writePump() {
	defer func() {
		c.conn.Close()
	}()
	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump only watches for the client closing the connection; the stream is
// one-way.
func (c *streamClient) readPump(h *StreamHub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("notification stream closed", zap.Error(err))
			}
			break
		}
	}
}
