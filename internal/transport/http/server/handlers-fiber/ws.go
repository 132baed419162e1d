package handlers_fiber

import (
	"github.com/hariprasadd0/codora/internal/events"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// ProjectEvents upgrades the connection and streams the project's task
// lifecycle events until the client disconnects.
func (h *Handler) ProjectEvents() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		scope := events.ProjectScope(conn.Params("projectId"))
		sub := h.hub.Subscribe(scope)
		defer h.hub.Unsubscribe(sub)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case msg, ok := <-sub.C():
				if !ok {
					return
				}
				if err := conn.WriteJSON(msg); err != nil {
					h.log.Debugw("websocket write failed", "scope", scope, "error", err)
					return
				}
			case <-done:
				return
			}
		}
	})
}
