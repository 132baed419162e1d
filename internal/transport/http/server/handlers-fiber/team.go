package handlers_fiber

import (
	"net/http"

	"github.com/hariprasadd0/codora/internal/entities"
	"github.com/hariprasadd0/codora/internal/mapper"
	"github.com/hariprasadd0/codora/internal/transport/http/dto"
	"github.com/hariprasadd0/codora/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostTeam creates a team owned by the caller.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body dto.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	team, err := h.uc.CreateTeam(c.Context(), middleware.CallerID(c), body.Name)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Team dto.Team `json:"team"`
	}{Team: mapper.ToDTOTeam(*team)})
}

// GetTeam returns a team with members.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.uc.Team(c.Context(), c.Params("teamId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeam(*team))
}

// PostMember adds a user to a team; the caller must be a team lead.
func (h *Handler) PostMember(c *fiber.Ctx) error {
	var body dto.AddMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	member, err := h.uc.AddMember(c.Context(), middleware.CallerID(c), c.Params("teamId"), body.UserID, entities.TeamRole(body.Role))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Member dto.TeamMember `json:"member"`
	}{Member: mapper.ToDTOMember(*member)})
}

// DeleteMember removes a user from a team; the caller must be a team lead.
func (h *Handler) DeleteMember(c *fiber.Ctx) error {
	if err := h.uc.RemoveMember(c.Context(), middleware.CallerID(c), c.Params("teamId"), c.Params("userId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
