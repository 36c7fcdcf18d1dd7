package sheriff

import (
	"context"
	"fmt"

	"sheriffduty/clients"
	"sheriffduty/services"
)

// Failure codes carried by dispatch results
const (
	errorCodeSlackError   = "slack_error"
	errorCodeStorageError = "storage_error"
)

// SheriffUseCase implements the command and event dispatchers: it consults
// the duty store and the Slack Web API and reports outcome uniformly as an
// OperationResult. No fault escapes a dispatch call.
type SheriffUseCase struct {
	dutyStore          services.DutyStoreService
	workspacesService  services.WorkspacesService
	slackClientFactory clients.SlackClientFactory
	defaultAuthToken   string
}

// NewSheriffUseCase creates a new instance of SheriffUseCase. The default
// auth token is used for teams that have no registered workspace.
func NewSheriffUseCase(
	dutyStore services.DutyStoreService,
	workspacesService services.WorkspacesService,
	slackClientFactory clients.SlackClientFactory,
	defaultAuthToken string,
) *SheriffUseCase {
	return &SheriffUseCase{
		dutyStore:          dutyStore,
		workspacesService:  workspacesService,
		slackClientFactory: slackClientFactory,
		defaultAuthToken:   defaultAuthToken,
	}
}

func (u *SheriffUseCase) slackClientForTeam(ctx context.Context, teamID string) (clients.SlackClient, error) {
	maybeWorkspace, err := u.workspacesService.GetWorkspaceByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if maybeWorkspace.IsPresent() {
		return u.slackClientFactory(maybeWorkspace.MustGet().SlackAuthToken), nil
	}

	if u.defaultAuthToken == "" {
		return nil, fmt.Errorf("no bot token configured for team: %s", teamID)
	}
	return u.slackClientFactory(u.defaultAuthToken), nil
}
