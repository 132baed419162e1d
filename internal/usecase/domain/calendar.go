// Package domain contains application usecases orchestrating domain logic by calendar.
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/hariprasadd0/codora/internal/calendar"
	"github.com/hariprasadd0/codora/internal/entities"

	"github.com/google/uuid"
)

// SyncTask mirrors a task's deadline into the user's external calendar and
// records the resulting CalendarEvent. The provider call runs under a bounded
// timeout so a hanging provider surfaces as an error instead of blocking.
func (u *Usecase) SyncTask(ctx context.Context, taskID, userID string) (*entities.CalendarEvent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" || userID == "" {
		return nil, fmt.Errorf("%w: taskID and userID are required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.Connected() {
		u.log.Errorw("sync rejected: calendar not connected", "user_id", userID)
		return nil, entities.ErrCalendarNotConnected
	}

	task, err := u.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Deadline == nil {
		u.log.Errorw("sync rejected: no deadline", "task_id", taskID)
		return nil, entities.ErrTaskNoDeadline
	}

	start := *task.Deadline
	end := start.Add(time.Hour)

	providerCtx, cancelProvider := withTimeout(ctx, u.syncTimeout)
	defer cancelProvider()

	providerEventID, err := u.provider.InsertEvent(providerCtx, *user.Credentials, calendar.Event{
		Title:       task.Title,
		Description: task.Description,
		Start:       start,
		End:         end,
		Timezone:    "UTC",
	})
	if err != nil {
		return nil, err
	}

	event, err := u.repo.CreateCalendarEvent(ctx, entities.CalendarEvent{
		ID:              uuid.NewString(),
		UserID:          userID,
		TaskID:          taskID,
		ProviderEventID: providerEventID,
		Title:           task.Title,
		Start:           start,
		End:             end,
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("task synced to calendar", "task_id", taskID, "user_id", userID, "provider_event_id", providerEventID)
	return event, nil
}

// CalendarEvent returns one event record scoped to its user.
func (u *Usecase) CalendarEvent(ctx context.Context, userID, eventID string) (*entities.CalendarEvent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" || eventID == "" {
		return nil, fmt.Errorf("%w: userID and eventID are required", entities.ErrInvalidArgument)
	}

	return u.repo.GetCalendarEvent(ctx, userID, eventID)
}

// ListCalendarEvents returns a user's event records.
func (u *Usecase) ListCalendarEvents(ctx context.Context, userID string) ([]entities.CalendarEvent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", entities.ErrInvalidArgument)
	}

	return u.repo.ListCalendarEvents(ctx, userID)
}

// DeleteCalendarEvent removes a user's event record.
func (u *Usecase) DeleteCalendarEvent(ctx context.Context, userID, eventID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" || eventID == "" {
		return fmt.Errorf("%w: userID and eventID are required", entities.ErrInvalidArgument)
	}

	return u.repo.DeleteCalendarEvent(ctx, userID, eventID)
}
