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
	insertUserQuery = `
INSERT INTO users(id, email, name)
VALUES ($1, $2, $3)
RETURNING id, email, name, calendar_enabled`
	selectUserQuery = `
SELECT id, email, name, calendar_enabled, google_access_token, google_refresh_token, google_calendar_id
FROM users WHERE id=$1`
	enableCalendarQuery = `
UPDATE users
SET calendar_enabled=true, google_access_token=$2, google_refresh_token=$3, google_calendar_id=$4
WHERE id=$1
RETURNING id, email, name, calendar_enabled, google_access_token, google_refresh_token, google_calendar_id`
	disableCalendarQuery = `
UPDATE users
SET calendar_enabled=false, google_access_token=NULL, google_refresh_token=NULL, google_calendar_id=NULL
WHERE id=$1
RETURNING id, email, name, calendar_enabled`
)

// CreateUser inserts a user with a unique email.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, insertUserQuery, user.ID, user.Email, user.Name).
		Scan(&u.ID, &u.Email, &u.Name, &u.CalendarEnabled)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: email taken", entities.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID)
	return &u, nil
}

// GetUser fetches a user with credential fields.
func (p *Postgres) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserQuery, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// EnableCalendar attaches delegated credentials and sets the enabled flag.
func (p *Postgres) EnableCalendar(ctx context.Context, userID string, creds entities.CalendarCredentials) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, enableCalendarQuery, userID, creds.AccessToken, creds.RefreshToken, creds.CalendarID))
	if err != nil {
		p.log.Errorw("failed to enable calendar", "error", err, "user_id", userID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("enable calendar: %w", err)
	}

	p.log.Infow("calendar enabled", "user_id", userID)
	return u, nil
}

// DisableCalendar clears delegated credentials.
func (p *Postgres) DisableCalendar(ctx context.Context, userID string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, disableCalendarQuery, userID).
		Scan(&u.ID, &u.Email, &u.Name, &u.CalendarEnabled)
	if err != nil {
		p.log.Errorw("failed to disable calendar", "error", err, "user_id", userID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("disable calendar: %w", err)
	}

	p.log.Infow("calendar disabled", "user_id", userID)
	return &u, nil
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	var access, refresh, calID *string
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.CalendarEnabled, &access, &refresh, &calID); err != nil {
		return nil, err
	}
	if access != nil || refresh != nil {
		u.Credentials = &entities.CalendarCredentials{}
		if access != nil {
			u.Credentials.AccessToken = *access
		}
		if refresh != nil {
			u.Credentials.RefreshToken = *refresh
		}
		if calID != nil {
			u.Credentials.CalendarID = *calID
		}
	}
	return &u, nil
}
