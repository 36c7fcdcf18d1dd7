package workspaces

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheriffduty/core"
	"sheriffduty/db"
	"sheriffduty/testutils"
)

func setupWorkspacesTest(t *testing.T) (*WorkspacesService, func()) {
	cfg, err := testutils.LoadTestConfig()
	if err != nil {
		t.Skipf("skipping - test database not configured: %v", err)
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err)

	repo := db.NewPostgresWorkspacesRepository(dbConn, cfg.DatabaseSchema)
	service := NewWorkspacesService(repo)

	cleanup := func() {
		dbConn.Close()
	}

	return service, cleanup
}

func TestWorkspacesService_Validation(t *testing.T) {
	service := NewWorkspacesService(nil)
	ctx := context.Background()

	t.Run("Get_EmptyTeamID", func(t *testing.T) {
		_, err := service.GetWorkspaceByTeamID(ctx, "")
		assert.Error(t, err)
	})

	t.Run("Upsert_EmptyAuthToken", func(t *testing.T) {
		_, err := service.UpsertWorkspace(ctx, "T123", "Test Team", "")
		assert.Error(t, err)
	})
}

func TestWorkspacesService(t *testing.T) {
	service, cleanup := setupWorkspacesTest(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("UpsertThenGet", func(t *testing.T) {
		teamID := "T" + core.NewID("t")

		workspace, err := service.UpsertWorkspace(ctx, teamID, "Test Team", "xoxb-token-1")
		require.NoError(t, err)
		assert.Equal(t, teamID, workspace.SlackTeamID)

		maybeWorkspace, err := service.GetWorkspaceByTeamID(ctx, teamID)
		require.NoError(t, err)
		require.True(t, maybeWorkspace.IsPresent())
		assert.Equal(t, "xoxb-token-1", maybeWorkspace.MustGet().SlackAuthToken)
	})

	t.Run("Upsert_ReplacesToken", func(t *testing.T) {
		teamID := "T" + core.NewID("t")

		_, err := service.UpsertWorkspace(ctx, teamID, "Test Team", "xoxb-token-1")
		require.NoError(t, err)

		_, err = service.UpsertWorkspace(ctx, teamID, "Test Team", "xoxb-token-2")
		require.NoError(t, err)

		maybeWorkspace, err := service.GetWorkspaceByTeamID(ctx, teamID)
		require.NoError(t, err)
		require.True(t, maybeWorkspace.IsPresent())
		assert.Equal(t, "xoxb-token-2", maybeWorkspace.MustGet().SlackAuthToken)
	})

	t.Run("Get_AbsentWorkspace_None", func(t *testing.T) {
		maybeWorkspace, err := service.GetWorkspaceByTeamID(ctx, "T"+core.NewID("t"))
		require.NoError(t, err)
		assert.False(t, maybeWorkspace.IsPresent())
	})

	t.Run("DeleteThenGet_None", func(t *testing.T) {
		teamID := "T" + core.NewID("t")

		_, err := service.UpsertWorkspace(ctx, teamID, "Test Team", "xoxb-token-1")
		require.NoError(t, err)

		require.NoError(t, service.DeleteWorkspace(ctx, teamID))

		maybeWorkspace, err := service.GetWorkspaceByTeamID(ctx, teamID)
		require.NoError(t, err)
		assert.False(t, maybeWorkspace.IsPresent())
	})
}
