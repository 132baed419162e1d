// Package domain contains application usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"

	"github.com/hariprasadd0/codora/internal/entities"

	"github.com/google/uuid"
)

// CreateUser registers an account with a unique email.
func (u *Usecase) CreateUser(ctx context.Context, email, name string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" || name == "" {
		return nil, fmt.Errorf("%w: email and name are required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateUser(ctx, entities.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	})
}

// User returns a user by id.
func (u *Usecase) User(ctx context.Context, userID string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetUser(ctx, userID)
}

// EnableCalendar attaches delegated calendar credentials to the user.
func (u *Usecase) EnableCalendar(ctx context.Context, userID string, creds entities.CalendarCredentials) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", entities.ErrInvalidArgument)
	}
	if creds.AccessToken == "" || creds.RefreshToken == "" {
		return nil, fmt.Errorf("%w: access and refresh tokens are required", entities.ErrInvalidArgument)
	}

	return u.repo.EnableCalendar(ctx, userID, creds)
}

// DisableCalendar clears the user's delegated credentials.
func (u *Usecase) DisableCalendar(ctx context.Context, userID string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", entities.ErrInvalidArgument)
	}

	return u.repo.DisableCalendar(ctx, userID)
}
