package handlers_fiber

import (
	"net/http"

	"github.com/hariprasadd0/codora/internal/entities"
	"github.com/hariprasadd0/codora/internal/mapper"
	"github.com/hariprasadd0/codora/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostTask creates a task under a project.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	var body dto.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	task, err := h.uc.CreateTask(c.Context(), entities.Task{
		ProjectID:        c.Params("projectId"),
		Title:            body.Title,
		Description:      body.Description,
		Status:           entities.TaskStatus(body.Status),
		Priority:         entities.TaskPriority(body.Priority),
		AssignedToID:     body.AssignedToID,
		DependencyTaskID: body.DependencyTaskID,
		Deadline:         body.Deadline,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Task dto.Task `json:"task"`
	}{Task: mapper.ToDTOTask(*task)})
}

// GetTasks lists the tasks of a project.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	tasks, err := h.uc.ListTasks(c.Context(), c.Params("projectId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Tasks []dto.Task `json:"tasks"`
	}{Tasks: mapper.ToDTOTasks(tasks)})
}

// GetTask returns a task by id.
func (h *Handler) GetTask(c *fiber.Ctx) error {
	task, err := h.uc.Task(c.Context(), c.Params("taskId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTask(*task))
}

// PatchTask updates mutable task fields.
func (h *Handler) PatchTask(c *fiber.Ctx) error {
	var body dto.UpdateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	upd := entities.TaskUpdate{
		Title:       body.Title,
		Description: body.Description,
		Deadline:    body.Deadline,
	}
	if body.Status != nil {
		status := entities.TaskStatus(*body.Status)
		upd.Status = &status
	}
	if body.Priority != nil {
		priority := entities.TaskPriority(*body.Priority)
		upd.Priority = &priority
	}

	task, err := h.uc.UpdateTask(c.Context(), c.Params("taskId"), upd)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTask(*task))
}

// DeleteTask removes a task.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	if err := h.uc.DeleteTask(c.Context(), c.Params("taskId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostAssignTask assigns a task through the transactional engine.
func (h *Handler) PostAssignTask(c *fiber.Ctx) error {
	var body dto.AssignTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidInput, "invalid body"))
	}

	task, err := h.uc.AssignTask(c.Context(), c.Params("taskId"), body.AssignedToID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Task dto.Task `json:"task"`
	}{Task: mapper.ToDTOTask(*task)})
}
