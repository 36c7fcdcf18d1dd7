package workspaces

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"sheriffduty/models"
)

// MockWorkspacesService is a mock implementation of the WorkspacesService interface
type MockWorkspacesService struct {
	mock.Mock
}

func (m *MockWorkspacesService) GetWorkspaceByTeamID(
	ctx context.Context,
	teamID string,
) (mo.Option[*models.Workspace], error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(mo.Option[*models.Workspace]), args.Error(1)
}

func (m *MockWorkspacesService) UpsertWorkspace(
	ctx context.Context,
	teamID, teamName, authToken string,
) (*models.Workspace, error) {
	args := m.Called(ctx, teamID, teamName, authToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workspace), args.Error(1)
}

func (m *MockWorkspacesService) DeleteWorkspace(ctx context.Context, teamID string) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}
