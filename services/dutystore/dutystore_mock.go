package dutystore

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sheriffduty/core"
	"sheriffduty/models"
)

// MockDutyStoreService is a mock implementation of the DutyStoreService interface
type MockDutyStoreService struct {
	mock.Mock
}

func (m *MockDutyStoreService) GetSheriffDuty(
	ctx context.Context,
	teamID string,
) (core.OperationResult[models.SheriffDuty], error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(core.OperationResult[models.SheriffDuty]), args.Error(1)
}

func (m *MockDutyStoreService) PutSheriffDuty(
	ctx context.Context,
	teamID string,
	duty models.SheriffDuty,
) (*models.SheriffDutyRecord, error) {
	args := m.Called(ctx, teamID, duty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SheriffDutyRecord), args.Error(1)
}

func (m *MockDutyStoreService) DeleteSheriffDuty(ctx context.Context, teamID string) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}
