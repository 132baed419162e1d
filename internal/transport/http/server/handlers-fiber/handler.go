// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/hariprasadd0/codora/internal/events"
	"github.com/hariprasadd0/codora/internal/transport/http/middleware"
	"github.com/hariprasadd0/codora/internal/usecase"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler implements HTTP delivery using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
	hub *events.Hub
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, hub *events.Hub) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
		hub: hub,
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	v1 := app.Group("/api/v1", middleware.Identity())

	v1.Post("/users", h.PostUser)
	v1.Get("/users/:userId", h.GetUser)
	v1.Post("/users/:userId/calendar/enable", h.PostEnableCalendar)
	v1.Post("/users/:userId/calendar/disable", h.PostDisableCalendar)

	v1.Post("/teams", h.PostTeam)
	v1.Get("/teams/:teamId", h.GetTeam)
	v1.Post("/teams/:teamId/members", h.PostMember)
	v1.Delete("/teams/:teamId/members/:userId", h.DeleteMember)

	v1.Post("/projects", h.PostProject)
	v1.Get("/projects", h.GetProjects)
	v1.Get("/projects/:projectId", h.GetProject)
	v1.Patch("/projects/:projectId", h.PatchProject)
	v1.Post("/projects/:projectId/team", h.PostAttachTeam)
	v1.Delete("/projects/:projectId", h.DeleteProject)

	v1.Post("/projects/:projectId/tasks", h.PostTask)
	v1.Get("/projects/:projectId/tasks", h.GetTasks)
	v1.Get("/tasks/:taskId", h.GetTask)
	v1.Patch("/tasks/:taskId", h.PatchTask)
	v1.Delete("/tasks/:taskId", h.DeleteTask)
	v1.Post("/tasks/:taskId/assign", h.PostAssignTask)
	v1.Post("/tasks/:taskId/sync", h.PostSyncTask)

	v1.Get("/calendar/events", h.GetCalendarEvents)
	v1.Get("/calendar/events/:eventId", h.GetCalendarEvent)
	v1.Delete("/calendar/events/:eventId", h.DeleteCalendarEvent)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/projects/:projectId", h.ProjectEvents())
}
