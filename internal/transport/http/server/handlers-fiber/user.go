package handlers_fiber

import (
	"net/http"

	"github.com/hariprasadd0/codora/internal/entities"
	"github.com/hariprasadd0/codora/internal/mapper"
	"github.com/hariprasadd0/codora/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostUser registers an account.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	user, err := h.uc.CreateUser(c.Context(), body.Email, body.Name)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		User dto.User `json:"user"`
	}{User: mapper.ToDTOUser(*user)})
}

// GetUser returns a user by id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.uc.User(c.Context(), c.Params("userId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOUser(*user))
}

// PostEnableCalendar attaches delegated calendar credentials.
func (h *Handler) PostEnableCalendar(c *fiber.Ctx) error {
	var body dto.EnableCalendarRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	user, err := h.uc.EnableCalendar(c.Context(), c.Params("userId"), entities.CalendarCredentials{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		CalendarID:   body.CalendarID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToDTOUser(*user))
}

// PostDisableCalendar clears delegated calendar credentials.
func (h *Handler) PostDisableCalendar(c *fiber.Ctx) error {
	user, err := h.uc.DisableCalendar(c.Context(), c.Params("userId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOUser(*user))
}
