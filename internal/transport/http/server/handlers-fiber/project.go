package handlers_fiber

import (
	"net/http"

	"github.com/hariprasadd0/codora/internal/mapper"
	"github.com/hariprasadd0/codora/internal/transport/http/dto"
	"github.com/hariprasadd0/codora/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostProject creates a solo project owned by the caller.
func (h *Handler) PostProject(c *fiber.Ctx) error {
	var body dto.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	project, err := h.uc.CreateProject(c.Context(), middleware.CallerID(c), body.Name, body.Description)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Project dto.Project `json:"project"`
	}{Project: mapper.ToDTOProject(*project)})
}

// GetProjects lists the caller's projects.
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	projects, err := h.uc.ListProjects(c.Context(), middleware.CallerID(c))
	if err != nil {
		return writeError(c, err)
	}

	res := make([]dto.Project, 0, len(projects))
	for _, p := range projects {
		res = append(res, mapper.ToDTOProject(p))
	}
	return c.Status(http.StatusOK).JSON(struct {
		Projects []dto.Project `json:"projects"`
	}{Projects: res})
}

// GetProject returns a project by id.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	project, err := h.uc.Project(c.Context(), c.Params("projectId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOProject(*project))
}

// PatchProject updates name/description; creator only.
func (h *Handler) PatchProject(c *fiber.Ctx) error {
	var body dto.UpdateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	project, err := h.uc.UpdateProject(c.Context(), middleware.CallerID(c), c.Params("projectId"), body.Name, body.Description)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOProject(*project))
}

// PostAttachTeam converts a solo project to team mode; creator only.
func (h *Handler) PostAttachTeam(c *fiber.Ctx) error {
	var body dto.AttachTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	project, err := h.uc.AttachTeam(c.Context(), middleware.CallerID(c), c.Params("projectId"), body.TeamID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOProject(*project))
}

// DeleteProject removes a project; creator only.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	if err := h.uc.DeleteProject(c.Context(), middleware.CallerID(c), c.Params("projectId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
