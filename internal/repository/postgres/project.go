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
	insertProjectQuery = `
INSERT INTO projects(id, name, description, creator_id, team_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, description, creator_id, team_id`
	selectProjectQuery = `
SELECT id, name, description, creator_id, team_id FROM projects WHERE id=$1`
	listProjectsQuery = `
SELECT id, name, description, creator_id, team_id FROM projects WHERE creator_id=$1 ORDER BY name`
	updateProjectQuery = `
UPDATE projects
SET name = COALESCE($2, name), description = COALESCE($3, description)
WHERE id=$1
RETURNING id, name, description, creator_id, team_id`
	attachTeamQuery = `
UPDATE projects SET team_id=$2 WHERE id=$1
RETURNING id, name, description, creator_id, team_id`
	deleteProjectQuery = `DELETE FROM projects WHERE id=$1`
)

// CreateProject inserts a project. TeamID nil means solo mode.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, insertProjectQuery,
		project.ID, project.Name, project.Description, project.CreatorID, project.TeamID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "projects_team_id_fkey" {
				return nil, entities.ErrTeamNotFound
			}
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	p.log.Infow("project created", "project_id", pr.ID, "team_mode", pr.TeamMode())
	return pr, nil
}

// GetProject fetches a project by id.
func (p *Postgres) GetProject(ctx context.Context, projectID string) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, selectProjectQuery, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return pr, nil
}

// ListProjects returns projects owned by the creator.
func (p *Postgres) ListProjects(ctx context.Context, creatorID string) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, listProjectsQuery, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		var pr entities.Project
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Description, &pr.CreatorID, &pr.TeamID); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// UpdateProject patches name/description.
func (p *Postgres) UpdateProject(ctx context.Context, projectID string, name, description *string) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, updateProjectQuery, projectID, name, description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return pr, nil
}

// AttachTeam converts a solo project to team mode. Conversion is one-way:
// a project that already has a team keeps it.
func (p *Postgres) AttachTeam(ctx context.Context, projectID, teamID string) (*entities.Project, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var currentTeam *string
	if err := tx.QueryRow(ctx, `SELECT team_id FROM projects WHERE id=$1 FOR UPDATE`, projectID).Scan(&currentTeam); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("project lookup: %w", err)
	}
	if currentTeam != nil {
		return nil, fmt.Errorf("%w: project already has a team", entities.ErrInvalidArgument)
	}

	pr, err := scanProject(tx.QueryRow(ctx, attachTeamQuery, projectID, teamID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("attach team: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team attached", "project_id", projectID, "team_id", teamID)
	return pr, nil
}

// DeleteProject removes a project and its tasks (cascade).
func (p *Postgres) DeleteProject(ctx context.Context, projectID string) error {
	tag, err := p.db.Exec(ctx, deleteProjectQuery, projectID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}

	p.log.Infow("project deleted", "project_id", projectID)
	return nil
}

func scanProject(row pgx.Row) (*entities.Project, error) {
	var pr entities.Project
	if err := row.Scan(&pr.ID, &pr.Name, &pr.Description, &pr.CreatorID, &pr.TeamID); err != nil {
		return nil, err
	}
	return &pr, nil
}
