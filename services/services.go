package services

import (
	"context"

	"github.com/samber/mo"

	"sheriffduty/core"
	"sheriffduty/models"
)

// DutyStoreService is the duty-record accessor for a workspace. A lookup
// miss is a typed failure result, not an error; errors are reserved for
// storage faults.
type DutyStoreService interface {
	GetSheriffDuty(ctx context.Context, teamID string) (core.OperationResult[models.SheriffDuty], error)
	PutSheriffDuty(ctx context.Context, teamID string, duty models.SheriffDuty) (*models.SheriffDutyRecord, error)
	DeleteSheriffDuty(ctx context.Context, teamID string) error
}

// WorkspacesService resolves Slack teams to their bot tokens.
type WorkspacesService interface {
	GetWorkspaceByTeamID(ctx context.Context, teamID string) (mo.Option[*models.Workspace], error)
	UpsertWorkspace(ctx context.Context, teamID, teamName, authToken string) (*models.Workspace, error)
	DeleteWorkspace(ctx context.Context, teamID string) error
}
