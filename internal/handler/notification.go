package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"cinehub-rest-api/internal/service"
	"cinehub-rest-api/pkg/response"
)

// NotificationHandler handles the notification log and its live stream.
type NotificationHandler struct {
	notifier *service.NotificationService
	upgrader websocket.Upgrader
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notifier *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from the site origin; the API does
			// not restrict it.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// List handles GET /api/v1/notifications?limit=
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	notifications, err := h.notifier.List(r.Context(), s.UserID, limit)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, notifications)
}

// UnreadCount handles GET /api/v1/notifications/unread
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	count, err := h.notifier.UnreadCount(r.Context(), s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, map[string]interface{}{"unread": count})
}

// MarkRead handles POST /api/v1/notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.notifier.MarkRead(r.Context(), id, s.UserID); err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, map[string]interface{}{"status": "read", "id": id})
}

// MarkAllRead handles POST /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	if err := h.notifier.MarkAllRead(r.Context(), s.UserID); err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, map[string]interface{}{"status": "read"})
}

// Stream handles GET /api/v1/notifications/stream, upgrading to a WebSocket
// that pushes the user's notifications as they are created.
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[NotificationHandler] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ch, cancel := h.notifier.Subscribe(s.UserID)
	defer cancel()

	// Reader goroutine detects client disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	for {
		select {
		case n, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(n); err != nil {
				return
			}
		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
