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
	insertTeamQuery   = `INSERT INTO teams(id, name, creator_id) VALUES ($1, $2, $3)`
	insertMemberQuery = `INSERT INTO team_members(team_id, user_id, role) VALUES ($1, $2, $3)`
	selectTeamQuery   = `SELECT id, name, creator_id FROM teams WHERE id=$1`
	selectMembersQuery = `
SELECT team_id, user_id, role FROM team_members WHERE team_id=$1 ORDER BY user_id`
	deleteMemberQuery = `DELETE FROM team_members WHERE team_id=$1 AND user_id=$2`
	memberExistsQuery = `SELECT EXISTS(SELECT 1 FROM team_members WHERE user_id=$1 AND team_id=$2)`
	leadExistsQuery   = `SELECT EXISTS(SELECT 1 FROM team_members WHERE user_id=$1 AND team_id=$2 AND role='TEAM_LEAD')`
)

// CreateTeam inserts a team and its creator as TEAM_LEAD in one transaction.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, insertTeamQuery, team.ID, team.Name, team.CreatorID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, fmt.Errorf("%w: team name taken", entities.ErrInvalidArgument)
			case "23503":
				return nil, entities.ErrUserNotFound
			}
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}

	if _, err := tx.Exec(ctx, insertMemberQuery, team.ID, team.CreatorID, entities.RoleTeamLead); err != nil {
		return nil, fmt.Errorf("insert creator membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team created", "team_id", team.ID, "creator_id", team.CreatorID)
	return p.GetTeam(ctx, team.ID)
}

// GetTeam fetches a team with its members.
func (p *Postgres) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	var team entities.Team
	if err := p.db.QueryRow(ctx, selectTeamQuery, teamID).Scan(&team.ID, &team.Name, &team.CreatorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	rows, err := p.db.Query(ctx, selectMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		var m entities.TeamMember
		if err := rows.Scan(&m.TeamID, &m.UserID, &m.Role); err != nil {
			return nil, fmt.Errorf("scan members: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	team.Members = members
	return &team, nil
}

// AddMember inserts a membership row. The unique (team_id, user_id) constraint
// makes the duplicate check atomic: a concurrent insert of the same pair
// surfaces as ErrMemberExists instead of a second row.
func (p *Postgres) AddMember(ctx context.Context, member entities.TeamMember) (*entities.TeamMember, error) {
	if _, err := p.db.Exec(ctx, insertMemberQuery, member.TeamID, member.UserID, member.Role); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, entities.ErrMemberExists
			case "23503":
				if pgErr.ConstraintName == "team_members_team_id_fkey" {
					return nil, entities.ErrTeamNotFound
				}
				return nil, entities.ErrUserNotFound
			}
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	p.log.Infow("member added", "team_id", member.TeamID, "user_id", member.UserID, "role", member.Role)
	return &member, nil
}

// RemoveMember deletes a membership row.
func (p *Postgres) RemoveMember(ctx context.Context, teamID, userID string) error {
	tag, err := p.db.Exec(ctx, deleteMemberQuery, teamID, userID)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrNotTeamMember
	}

	p.log.Infow("member removed", "team_id", teamID, "user_id", userID)
	return nil
}

// IsMember reports whether any membership row exists for the pair.
func (p *Postgres) IsMember(ctx context.Context, userID, teamID string) (bool, error) {
	var ok bool
	if err := p.db.QueryRow(ctx, memberExistsQuery, userID, teamID).Scan(&ok); err != nil {
		return false, fmt.Errorf("member exists: %w", err)
	}
	return ok, nil
}

// IsTeamLead reports whether a TEAM_LEAD membership row exists for the pair.
func (p *Postgres) IsTeamLead(ctx context.Context, userID, teamID string) (bool, error) {
	var ok bool
	if err := p.db.QueryRow(ctx, leadExistsQuery, userID, teamID).Scan(&ok); err != nil {
		return false, fmt.Errorf("lead exists: %w", err)
	}
	return ok, nil
}
