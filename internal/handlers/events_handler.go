package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-board/internal/events"
)

type EventsHandler struct {
	Broker *events.Broker
}

func NewEventsHandler(b *events.Broker) *EventsHandler {
	return &EventsHandler{Broker: b}
}

// Stream is GET /events: notifications as server-sent events until the
// client disconnects.
func (h *EventsHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	ch, cleanup := h.Broker.Subscribe(ctx)
	defer cleanup()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			c.SSEvent(ev.Type, ev)
			c.Writer.Flush()
		}
	}
}
