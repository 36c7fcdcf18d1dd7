package workspaces

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"sheriffduty/core"
	"sheriffduty/db"
	"sheriffduty/models"
)

type WorkspacesService struct {
	workspacesRepo *db.PostgresWorkspacesRepository
}

func NewWorkspacesService(repo *db.PostgresWorkspacesRepository) *WorkspacesService {
	return &WorkspacesService{workspacesRepo: repo}
}

func (s *WorkspacesService) GetWorkspaceByTeamID(
	ctx context.Context,
	teamID string,
) (mo.Option[*models.Workspace], error) {
	log.Printf("📋 Starting to get workspace for team: %s", teamID)
	if teamID == "" {
		return mo.None[*models.Workspace](), fmt.Errorf("team ID cannot be empty")
	}

	workspace, err := s.workspacesRepo.GetWorkspaceByTeamID(ctx, teamID)
	if err != nil {
		if core.IsNotFoundError(err) {
			log.Printf("📋 Completed successfully - workspace not found for team: %s", teamID)
			return mo.None[*models.Workspace](), nil
		}
		return mo.None[*models.Workspace](), fmt.Errorf("failed to get workspace: %w", err)
	}

	log.Printf("📋 Completed successfully - retrieved workspace with ID: %s", workspace.ID)
	return mo.Some(workspace), nil
}

func (s *WorkspacesService) UpsertWorkspace(
	ctx context.Context,
	teamID, teamName, authToken string,
) (*models.Workspace, error) {
	log.Printf("📋 Starting to upsert workspace for team: %s", teamID)
	if teamID == "" {
		return nil, fmt.Errorf("team ID cannot be empty")
	}
	if authToken == "" {
		return nil, fmt.Errorf("auth token cannot be empty")
	}

	workspace, err := s.workspacesRepo.UpsertWorkspace(ctx, teamID, teamName, authToken)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert workspace: %w", err)
	}

	log.Printf("📋 Completed successfully - upserted workspace with ID: %s", workspace.ID)
	return workspace, nil
}

func (s *WorkspacesService) DeleteWorkspace(ctx context.Context, teamID string) error {
	log.Printf("📋 Starting to delete workspace for team: %s", teamID)
	if teamID == "" {
		return fmt.Errorf("team ID cannot be empty")
	}

	if err := s.workspacesRepo.DeleteWorkspaceByTeamID(ctx, teamID); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted workspace for team: %s", teamID)
	return nil
}
