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

type PostgresSheriffDutiesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for sheriff_duties table
var sheriffDutiesColumns = []string{
	"id",
	"duty_key",
	"duty",
	"created_at",
	"updated_at",
}

func NewPostgresSheriffDutiesRepository(db *sqlx.DB, schema string) *PostgresSheriffDutiesRepository {
	return &PostgresSheriffDutiesRepository{db: db, schema: schema}
}

// BuildDutyKey derives the storage key for a workspace's duty record.
func BuildDutyKey(teamID string) string {
	return teamID + "_sheriff"
}

func (r *PostgresSheriffDutiesRepository) GetSheriffDuty(
	ctx context.Context,
	teamID string,
) (*models.SheriffDutyRecord, error) {
	columnsStr := strings.Join(sheriffDutiesColumns, ", ")

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.sheriff_duties
		WHERE duty_key = $1
	`, columnsStr, r.schema)

	var record models.SheriffDutyRecord
	err := r.db.QueryRowxContext(ctx, query, BuildDutyKey(teamID)).StructScan(&record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sheriff duty: %w", err)
	}

	return &record, nil
}

// UpsertSheriffDuty writes the duty record for a workspace, fully replacing
// any prior record. Last write wins.
func (r *PostgresSheriffDutiesRepository) UpsertSheriffDuty(
	ctx context.Context,
	teamID string,
	duty models.SheriffDuty,
) (*models.SheriffDutyRecord, error) {
	id := core.NewID("sd")
	returningStr := strings.Join(sheriffDutiesColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.sheriff_duties (
			id, duty_key, duty
		) VALUES ($1, $2, $3)
		ON CONFLICT (duty_key)
		DO UPDATE SET
			duty = EXCLUDED.duty,
			updated_at = NOW()
		RETURNING %s
	`, r.schema, returningStr)

	var record models.SheriffDutyRecord
	err := r.db.QueryRowxContext(ctx, query, id, BuildDutyKey(teamID), duty).StructScan(&record)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert sheriff duty: %w", err)
	}

	return &record, nil
}

// DeleteSheriffDuty removes the duty record for a workspace. Deleting an
// absent record is not an error.
func (r *PostgresSheriffDutiesRepository) DeleteSheriffDuty(ctx context.Context, teamID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s.sheriff_duties
		WHERE duty_key = $1
	`, r.schema)

	if _, err := r.db.ExecContext(ctx, query, BuildDutyKey(teamID)); err != nil {
		return fmt.Errorf("failed to delete sheriff duty: %w", err)
	}

	return nil
}
