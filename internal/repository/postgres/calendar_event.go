package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hariprasadd0/codora/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertEventQuery = `
INSERT INTO calendar_events(id, user_id, task_id, provider_event_id, title, start_at, end_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, task_id, provider_event_id, title, start_at, end_at, created_at`
	selectEventQuery = `
SELECT id, user_id, task_id, provider_event_id, title, start_at, end_at, created_at
FROM calendar_events WHERE user_id=$1 AND id=$2`
	listEventsQuery = `
SELECT id, user_id, task_id, provider_event_id, title, start_at, end_at, created_at
FROM calendar_events WHERE user_id=$1 ORDER BY start_at`
	deleteEventQuery = `DELETE FROM calendar_events WHERE user_id=$1 AND id=$2`
)

// CreateCalendarEvent persists the record linking a task to a provider event.
func (p *Postgres) CreateCalendarEvent(ctx context.Context, event entities.CalendarEvent) (*entities.CalendarEvent, error) {
	ev, err := scanEvent(p.db.QueryRow(ctx, insertEventQuery,
		event.ID, event.UserID, event.TaskID, event.ProviderEventID, event.Title, event.Start, event.End))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "calendar_events_task_id_fkey" {
				return nil, entities.ErrTaskNotFound
			}
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert calendar event: %w", err)
	}

	p.log.Infow("calendar event recorded", "event_id", ev.ID, "task_id", ev.TaskID, "user_id", ev.UserID)
	return ev, nil
}

// GetCalendarEvent fetches one event record scoped to its user.
func (p *Postgres) GetCalendarEvent(ctx context.Context, userID, eventID string) (*entities.CalendarEvent, error) {
	ev, err := scanEvent(p.db.QueryRow(ctx, selectEventQuery, userID, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrEventNotFound
		}
		return nil, fmt.Errorf("get calendar event: %w", err)
	}
	return ev, nil
}

// ListCalendarEvents returns a user's event records.
func (p *Postgres) ListCalendarEvents(ctx context.Context, userID string) ([]entities.CalendarEvent, error) {
	rows, err := p.db.Query(ctx, listEventsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	defer rows.Close()

	events := make([]entities.CalendarEvent, 0)
	for rows.Next() {
		var ev entities.CalendarEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.TaskID, &ev.ProviderEventID,
			&ev.Title, &ev.Start, &ev.End, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calendar event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendar events: %w", err)
	}

	return events, nil
}

// DeleteCalendarEvent removes one event record scoped to its user.
func (p *Postgres) DeleteCalendarEvent(ctx context.Context, userID, eventID string) error {
	tag, err := p.db.Exec(ctx, deleteEventQuery, userID, eventID)
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrEventNotFound
	}

	p.log.Infow("calendar event deleted", "event_id", eventID, "user_id", userID)
	return nil
}

func scanEvent(row pgx.Row) (*entities.CalendarEvent, error) {
	var ev entities.CalendarEvent
	if err := row.Scan(&ev.ID, &ev.UserID, &ev.TaskID, &ev.ProviderEventID,
		&ev.Title, &ev.Start, &ev.End, &ev.CreatedAt); err != nil {
		return nil, err
	}
	return &ev, nil
}
