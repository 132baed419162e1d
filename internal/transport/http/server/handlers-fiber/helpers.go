package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/hariprasadd0/codora/internal/entities"
	"github.com/hariprasadd0/codora/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument),
		errors.Is(err, entities.ErrAssigneeNotFound),
		errors.Is(err, entities.ErrDependencyInvalid):
		status = http.StatusBadRequest
		code = dto.CodeInvalidInput
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrTaskNotFound),
		errors.Is(err, entities.ErrEventNotFound):
		status = http.StatusNotFound
		code = dto.CodeNotFound
		msg = err.Error()
	case errors.Is(err, entities.ErrTaskAlreadyAssigned):
		status = http.StatusConflict
		code = dto.CodeConflict
		msg = "task is already assigned to this user"
	case errors.Is(err, entities.ErrMemberExists):
		status = http.StatusConflict
		code = dto.CodeConflict
		msg = "user is already a member of this team"
	case errors.Is(err, entities.ErrNotTeamMember),
		errors.Is(err, entities.ErrNotProjectCreator),
		errors.Is(err, entities.ErrNotTeamLead):
		status = http.StatusForbidden
		code = dto.CodeForbidden
		msg = err.Error()
	case errors.Is(err, entities.ErrCalendarNotConnected):
		status = http.StatusPreconditionFailed
		code = dto.CodePreconditionFailed
		msg = "calendar is not connected for this user"
	case errors.Is(err, entities.ErrTaskNoDeadline):
		status = http.StatusUnprocessableEntity
		code = dto.CodeInvalidState
		msg = "task has no deadline to sync"
	case errors.Is(err, entities.ErrExternalService):
		status = http.StatusBadGateway
		code = dto.CodeExternalService
		msg = "calendar provider request failed"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	var res dto.ErrorResponse
	res.Error.Code = code
	res.Error.Message = msg
	return res
}
