package dutystore

import (
	"context"
	"fmt"
	"log"

	"sheriffduty/core"
	"sheriffduty/db"
	"sheriffduty/models"
)

// ErrorCodeSheriffNotFound is the failure code carried when a workspace has
// no duty record.
const ErrorCodeSheriffNotFound = "sheriff_not_found"

type DutyStoreService struct {
	dutiesRepo *db.PostgresSheriffDutiesRepository
}

func NewDutyStoreService(repo *db.PostgresSheriffDutiesRepository) *DutyStoreService {
	return &DutyStoreService{dutiesRepo: repo}
}

// GetSheriffDuty reads the current duty record for a workspace. A missing
// record yields a sheriff_not_found failure result; the error return is for
// storage faults only.
func (s *DutyStoreService) GetSheriffDuty(
	ctx context.Context,
	teamID string,
) (core.OperationResult[models.SheriffDuty], error) {
	log.Printf("📋 Starting to get sheriff duty for team: %s", teamID)
	if teamID == "" {
		return core.OperationResult[models.SheriffDuty]{}, fmt.Errorf("team ID cannot be empty")
	}

	record, err := s.dutiesRepo.GetSheriffDuty(ctx, teamID)
	if err != nil {
		if core.IsNotFoundError(err) {
			log.Printf("📋 Completed successfully - no sheriff duty found for team: %s", teamID)
			return core.FailureResult[models.SheriffDuty](
				core.OperationError{Code: ErrorCodeSheriffNotFound},
			), nil
		}
		return core.OperationResult[models.SheriffDuty]{}, fmt.Errorf("failed to get sheriff duty: %w", err)
	}

	log.Printf("📋 Completed successfully - current sheriff for team %s is %s", teamID, record.Duty.Current.UserID)
	return core.SuccessResult(record.Duty), nil
}

// PutSheriffDuty writes the duty record for a workspace, unconditionally
// replacing any prior record.
func (s *DutyStoreService) PutSheriffDuty(
	ctx context.Context,
	teamID string,
	duty models.SheriffDuty,
) (*models.SheriffDutyRecord, error) {
	log.Printf("📋 Starting to put sheriff duty for team: %s, user: %s", teamID, duty.Current.UserID)
	if teamID == "" {
		return nil, fmt.Errorf("team ID cannot be empty")
	}
	if duty.Current.UserID == "" {
		return nil, fmt.Errorf("duty user ID cannot be empty")
	}

	record, err := s.dutiesRepo.UpsertSheriffDuty(ctx, teamID, duty)
	if err != nil {
		return nil, fmt.Errorf("failed to put sheriff duty: %w", err)
	}

	log.Printf("📋 Completed successfully - stored sheriff duty with ID: %s", record.ID)
	return record, nil
}

// DeleteSheriffDuty removes the duty record for a workspace. Idempotent -
// deleting an absent record succeeds.
func (s *DutyStoreService) DeleteSheriffDuty(ctx context.Context, teamID string) error {
	log.Printf("📋 Starting to delete sheriff duty for team: %s", teamID)
	if teamID == "" {
		return fmt.Errorf("team ID cannot be empty")
	}

	if err := s.dutiesRepo.DeleteSheriffDuty(ctx, teamID); err != nil {
		return fmt.Errorf("failed to delete sheriff duty: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted sheriff duty for team: %s", teamID)
	return nil
}
