package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/etama123/mo-ment/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now - can be restricted in production
		return true
	},
}

// WebSocketHandler handles WebSocket connections for calendar change events
type WebSocketHandler struct {
	hub    *services.EventsHub
	logger *zap.Logger
}

// NewWebSocketHandler creates a new WebSocketHandler
func NewWebSocketHandler(hub *services.EventsHub, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection upgrades HTTP to WebSocket and manages the connection.
// An optional ?calendar= subscribes the client to that calendar's events
// immediately; further subscriptions arrive as messages.
func (h *WebSocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	clientID := uuid.New().String()
	client := h.hub.NewClient(clientID, conn)

	h.hub.Register(client)

	if calendarID := r.URL.Query().Get("calendar"); calendarID != "" {
		h.hub.Subscribe(client, calendarID)
	}

	// Start the write pump in a goroutine
	go client.WritePump()

	// Run the read pump (blocks until connection closes)
	client.ReadPump(h.handleMessage)
}

// clientMessage is what connected clients send to manage subscriptions
type clientMessage struct {
	Action     string `json:"action"`
	CalendarID string `json:"calendarId"`
}

func (h *WebSocketHandler) handleMessage(client *services.WSClient, messageType int, data []byte) {
	if messageType != websocket.TextMessage {
		return
	}

	var msg clientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		h.logger.Debug("ignoring malformed websocket message", zap.Error(err))
		return
	}

	switch msg.Action {
	case "subscribe":
		if msg.CalendarID != "" {
			h.hub.Subscribe(client, msg.CalendarID)
		}
	case "unsubscribe":
		if msg.CalendarID != "" {
			h.hub.Unsubscribe(client, msg.CalendarID)
		}
	}
}
