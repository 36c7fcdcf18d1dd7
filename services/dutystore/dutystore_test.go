package dutystore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheriffduty/core"
	"sheriffduty/db"
	"sheriffduty/models"
	"sheriffduty/testutils"
)

func setupDutyStoreTest(t *testing.T) (*DutyStoreService, func()) {
	cfg, err := testutils.LoadTestConfig()
	if err != nil {
		t.Skipf("skipping - test database not configured: %v", err)
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err)

	repo := db.NewPostgresSheriffDutiesRepository(dbConn, cfg.DatabaseSchema)
	service := NewDutyStoreService(repo)

	cleanup := func() {
		dbConn.Close()
	}

	return service, cleanup
}

func TestDutyStoreService_Validation(t *testing.T) {
	// validation happens before any repository access
	service := NewDutyStoreService(nil)
	ctx := context.Background()

	t.Run("Get_EmptyTeamID", func(t *testing.T) {
		_, err := service.GetSheriffDuty(ctx, "")
		assert.Error(t, err)
	})

	t.Run("Put_EmptyTeamID", func(t *testing.T) {
		_, err := service.PutSheriffDuty(ctx, "", models.SheriffDuty{
			Current: models.SheriffAssignment{UserID: "U1"},
		})
		assert.Error(t, err)
	})

	t.Run("Put_EmptyUserID", func(t *testing.T) {
		_, err := service.PutSheriffDuty(ctx, "T123", models.SheriffDuty{})
		assert.Error(t, err)
	})

	t.Run("Delete_EmptyTeamID", func(t *testing.T) {
		assert.Error(t, service.DeleteSheriffDuty(ctx, ""))
	})
}

func TestDutyStoreService(t *testing.T) {
	service, cleanup := setupDutyStoreTest(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("PutThenGet_RoundTrip", func(t *testing.T) {
		// unique team ID to avoid constraint violations across runs
		teamID := "T" + core.NewID("t")

		duty := models.SheriffDuty{
			Current: models.SheriffAssignment{
				UserID:  "U1",
				Started: time.Now().UTC().Truncate(time.Second),
			},
		}
		record, err := service.PutSheriffDuty(ctx, teamID, duty)
		require.NoError(t, err)
		assert.Equal(t, db.BuildDutyKey(teamID), record.DutyKey)

		result, err := service.GetSheriffDuty(ctx, teamID)
		require.NoError(t, err)
		require.True(t, result.IsSuccess())
		assert.Equal(t, "U1", result.Data().Current.UserID)
	})

	t.Run("Put_OverwritesPriorRecord", func(t *testing.T) {
		teamID := "T" + core.NewID("t")

		_, err := service.PutSheriffDuty(ctx, teamID, models.SheriffDuty{
			Current: models.SheriffAssignment{UserID: "U1", Started: time.Now().UTC()},
		})
		require.NoError(t, err)

		_, err = service.PutSheriffDuty(ctx, teamID, models.SheriffDuty{
			Current: models.SheriffAssignment{UserID: "U2", Started: time.Now().UTC()},
		})
		require.NoError(t, err)

		result, err := service.GetSheriffDuty(ctx, teamID)
		require.NoError(t, err)
		require.True(t, result.IsSuccess())
		assert.Equal(t, "U2", result.Data().Current.UserID)
	})

	t.Run("DeleteThenGet_NotFound", func(t *testing.T) {
		teamID := "T" + core.NewID("t")

		_, err := service.PutSheriffDuty(ctx, teamID, models.SheriffDuty{
			Current: models.SheriffAssignment{UserID: "U1", Started: time.Now().UTC()},
		})
		require.NoError(t, err)

		require.NoError(t, service.DeleteSheriffDuty(ctx, teamID))

		result, err := service.GetSheriffDuty(ctx, teamID)
		require.NoError(t, err)
		require.True(t, result.IsFailure())
		assert.Equal(t, []string{ErrorCodeSheriffNotFound}, result.ErrorCodes())
	})

	t.Run("Delete_AbsentRecord_Idempotent", func(t *testing.T) {
		teamID := "T" + core.NewID("t")
		assert.NoError(t, service.DeleteSheriffDuty(ctx, teamID))
	})
}
