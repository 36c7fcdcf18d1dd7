package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"sheriffduty/core"
	"sheriffduty/models"
)

type PostgresWorkspacesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for workspaces table
var workspacesColumns = []string{
	"id",
	"slack_team_id",
	"slack_team_name",
	"slack_auth_token",
	"created_at",
	"updated_at",
}

func NewPostgresWorkspacesRepository(db *sqlx.DB, schema string) *PostgresWorkspacesRepository {
	return &PostgresWorkspacesRepository{db: db, schema: schema}
}

func (r *PostgresWorkspacesRepository) GetWorkspaceByTeamID(
	ctx context.Context,
	teamID string,
) (*models.Workspace, error) {
	columnsStr := strings.Join(workspacesColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.workspaces
		WHERE slack_team_id = $1
	`, columnsStr, r.schema)

	var workspace models.Workspace
	err := r.db.QueryRowxContext(ctx, query, teamID).StructScan(&workspace)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return &workspace, nil
}

func (r *PostgresWorkspacesRepository) UpsertWorkspace(
	ctx context.Context,
	teamID, teamName, authToken string,
) (*models.Workspace, error) {
	id := core.NewID("ws")
	returningStr := strings.Join(workspacesColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.workspaces (
			id, slack_team_id, slack_team_name, slack_auth_token
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT (slack_team_id)
		DO UPDATE SET
			slack_team_name = EXCLUDED.slack_team_name,
			slack_auth_token = EXCLUDED.slack_auth_token,
			updated_at = NOW()
		RETURNING %s
	`, r.schema, returningStr)

	var workspace models.Workspace
	err := r.db.QueryRowxContext(ctx, query, id, teamID, teamName, authToken).StructScan(&workspace)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert workspace: %w", err)
	}

	return &workspace, nil
}

func (r *PostgresWorkspacesRepository) DeleteWorkspaceByTeamID(ctx context.Context, teamID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s.workspaces
		WHERE slack_team_id = $1
	`, r.schema)

	if _, err := r.db.ExecContext(ctx, query, teamID); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	return nil
}
