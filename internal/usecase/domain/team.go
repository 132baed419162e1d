// Package domain contains application usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"

	"github.com/hariprasadd0/codora/internal/entities"

	"github.com/google/uuid"
)

// CreateTeam creates a team with the creator as its first TEAM_LEAD member.
func (u *Usecase) CreateTeam(ctx context.Context, creatorID, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		u.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creatorID is required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateTeam(ctx, entities.Team{
		ID:        uuid.NewString(),
		Name:      name,
		CreatorID: creatorID,
	})
}

// Team returns a team with its members.
func (u *Usecase) Team(ctx context.Context, teamID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: teamID is required", entities.ErrInvalidArgument)
	}

	return u.repo.GetTeam(ctx, teamID)
}

// AddMember adds a user to a team. The caller must be a TEAM_LEAD of it.
func (u *Usecase) AddMember(ctx context.Context, callerID, teamID, userID string, role entities.TeamRole) (*entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" || userID == "" {
		return nil, fmt.Errorf("%w: teamID and userID are required", entities.ErrInvalidArgument)
	}
	if role == "" {
		role = entities.RoleMember
	}
	if role != entities.RoleMember && role != entities.RoleTeamLead {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, role)
	}

	lead, err := u.repo.IsTeamLead(ctx, callerID, teamID)
	if err != nil {
		return nil, err
	}
	if !lead {
		u.log.Errorw("add member rejected", "caller_id", callerID, "team_id", teamID)
		return nil, entities.ErrNotTeamLead
	}

	return u.repo.AddMember(ctx, entities.TeamMember{TeamID: teamID, UserID: userID, Role: role})
}

// RemoveMember removes a user from a team. The caller must be a TEAM_LEAD.
func (u *Usecase) RemoveMember(ctx context.Context, callerID, teamID, userID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" || userID == "" {
		return fmt.Errorf("%w: teamID and userID are required", entities.ErrInvalidArgument)
	}

	lead, err := u.repo.IsTeamLead(ctx, callerID, teamID)
	if err != nil {
		return err
	}
	if !lead {
		u.log.Errorw("remove member rejected", "caller_id", callerID, "team_id", teamID)
		return entities.ErrNotTeamLead
	}

	return u.repo.RemoveMember(ctx, teamID, userID)
}

// IsMember reports team membership for the pair.
func (u *Usecase) IsMember(ctx context.Context, userID, teamID string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" || teamID == "" {
		return false, fmt.Errorf("%w: userID and teamID are required", entities.ErrInvalidArgument)
	}

	return u.repo.IsMember(ctx, userID, teamID)
}

// IsTeamLead reports whether the user holds the TEAM_LEAD role in the team.
func (u *Usecase) IsTeamLead(ctx context.Context, userID, teamID string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" || teamID == "" {
		return false, fmt.Errorf("%w: userID and teamID are required", entities.ErrInvalidArgument)
	}

	return u.repo.IsTeamLead(ctx, userID, teamID)
}
