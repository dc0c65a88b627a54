package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"fightpicks/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// keepaliveInterval keeps intermediaries from closing quiet streams
const keepaliveInterval = 25 * time.Second

type EventsHandler struct {
	hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// StreamEvents pushes a game's state changes to the client over SSE: pick
// scores (with previous and new points), player updates, fight results, and
// game status transitions
// GET /api/live/:id/events
func (h *EventsHandler) StreamEvents(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // nginx

	ch, cancel := h.hub.Subscribe(gameID)
	defer cancel()

	log.Printf("[Events] viewer connected to game %s (%d total)", gameID, h.hub.SubscriberCount(gameID))

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-ch:
			if !ok {
				return false
			}
			payload, err := json.Marshal(event.Payload)
			if err != nil {
				log.Printf("[Events] failed to marshal %s event: %v", event.Type, err)
				return true
			}
			c.SSEvent(string(event.Type), string(payload))
			return true
		case <-keepalive.C:
			c.SSEvent("keepalive", "{}")
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
