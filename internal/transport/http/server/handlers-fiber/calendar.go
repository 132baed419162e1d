package handlers_fiber

import (
	"net/http"

	"github.com/hariprasadd0/codora/internal/mapper"
	"github.com/hariprasadd0/codora/internal/transport/http/dto"
	"github.com/hariprasadd0/codora/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostSyncTask synchronously mirrors a task's deadline into the caller's
// calendar; provider errors surface to the caller.
func (h *Handler) PostSyncTask(c *fiber.Ctx) error {
	event, err := h.uc.SyncTask(c.Context(), c.Params("taskId"), middleware.CallerID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Event dto.CalendarEvent `json:"event"`
	}{Event: mapper.ToDTOCalendarEvent(*event)})
}

// GetCalendarEvents lists the caller's synced event records.
func (h *Handler) GetCalendarEvents(c *fiber.Ctx) error {
	events, err := h.uc.ListCalendarEvents(c.Context(), middleware.CallerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Events []dto.CalendarEvent `json:"events"`
	}{Events: mapper.ToDTOCalendarEvents(events)})
}

// GetCalendarEvent returns one of the caller's event records.
func (h *Handler) GetCalendarEvent(c *fiber.Ctx) error {
	event, err := h.uc.CalendarEvent(c.Context(), middleware.CallerID(c), c.Params("eventId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOCalendarEvent(*event))
}

// DeleteCalendarEvent removes one of the caller's event records.
func (h *Handler) DeleteCalendarEvent(c *fiber.Ctx) error {
	if err := h.uc.DeleteCalendarEvent(c.Context(), middleware.CallerID(c), c.Params("eventId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
