// Package domain contains application usecases orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"

	"github.com/hariprasadd0/codora/internal/entities"

	"github.com/google/uuid"
)

// CreateProject creates a solo-mode project owned by the caller.
func (u *Usecase) CreateProject(ctx context.Context, creatorID, name, description string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creatorID is required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateProject(ctx, entities.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatorID:   creatorID,
	})
}

// Project returns a project by id.
func (u *Usecase) Project(ctx context.Context, projectID string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: projectID is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetProject(ctx, projectID)
}

// ListProjects returns projects owned by the creator.
func (u *Usecase) ListProjects(ctx context.Context, creatorID string) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if creatorID == "" {
		return nil, fmt.Errorf("%w: creatorID is required", entities.ErrInvalidArgument)
	}

	return u.repo.ListProjects(ctx, creatorID)
}

// UpdateProject patches name/description. Only the creator may update.
func (u *Usecase) UpdateProject(ctx context.Context, callerID, projectID string, name, description *string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: projectID is required", entities.ErrInvalidArgument)
	}

	if err := u.requireCreator(ctx, callerID, projectID); err != nil {
		return nil, err
	}

	return u.repo.UpdateProject(ctx, projectID, name, description)
}

// AttachTeam converts a solo project to team mode. Only the creator may
// attach, and the conversion never reverts.
func (u *Usecase) AttachTeam(ctx context.Context, callerID, projectID, teamID string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" || teamID == "" {
		return nil, fmt.Errorf("%w: projectID and teamID are required", entities.ErrInvalidArgument)
	}

	if err := u.requireCreator(ctx, callerID, projectID); err != nil {
		return nil, err
	}

	return u.repo.AttachTeam(ctx, projectID, teamID)
}

// DeleteProject removes a project. Only the creator may delete.
func (u *Usecase) DeleteProject(ctx context.Context, callerID, projectID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return fmt.Errorf("%w: projectID is required", entities.ErrInvalidArgument)
	}

	if err := u.requireCreator(ctx, callerID, projectID); err != nil {
		return err
	}

	return u.repo.DeleteProject(ctx, projectID)
}

func (u *Usecase) requireCreator(ctx context.Context, callerID, projectID string) error {
	project, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if project.CreatorID != callerID {
		u.log.Errorw("project mutation rejected", "caller_id", callerID, "project_id", projectID)
		return entities.ErrNotProjectCreator
	}
	return nil
}
