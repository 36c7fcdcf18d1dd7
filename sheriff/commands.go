package sheriff

import (
	"context"
	"log"
	"regexp"
	"time"

	"sheriffduty/core"
	"sheriffduty/models"
)

// DutyCommandName is the recognized slash command.
const DutyCommandName = "/sheriff-duty"

const removeKeyword = "remove"

// userMentionRegex matches Slack's escaped mention token at the end of the
// command text, e.g. "<@U12345|john>". The first group is the user id.
var userMentionRegex = regexp.MustCompile(`<@(\w*)\|(\w*)>$`)

// DispatchCommand routes a parsed slash command. Bad user input is answered
// with instructive text as a success; only remote-call and storage faults
// produce a failure result.
func (u *SheriffUseCase) DispatchCommand(
	ctx context.Context,
	command models.SlackCommand,
) core.OperationResult[models.SlackResponse] {
	log.Printf("📨 Dispatching command %s from user %s in team %s", command.Command, command.UserID, command.TeamID)

	if command.Command != DutyCommandName {
		return core.SuccessResult(models.SlackResponse{
			Text:         msgUnknownCommand(command.Command),
			ResponseType: models.SlackResponseTypeEphemeral,
		})
	}

	switch {
	case command.Text == removeKeyword:
		return u.removeSheriffUser(ctx, command)
	case userMentionRegex.MatchString(command.Text):
		return u.setSheriffUser(ctx, command)
	default:
		return core.SuccessResult(models.SlackResponse{Text: msgHelp})
	}
}

func (u *SheriffUseCase) setSheriffUser(
	ctx context.Context,
	command models.SlackCommand,
) core.OperationResult[models.SlackResponse] {
	var userID string
	if match := userMentionRegex.FindStringSubmatch(command.Text); match != nil {
		userID = match[1]
	}
	if userID == "" {
		return core.SuccessResult(models.SlackResponse{Text: msgProvideUser})
	}

	slackClient, err := u.slackClientForTeam(ctx, command.TeamID)
	if err != nil {
		log.Printf("❌ Failed to get Slack client for team %s: %v", command.TeamID, err)
		return core.FailureResult[models.SlackResponse](core.OperationError{Code: errorCodeSlackError})
	}

	identity, err := slackClient.AuthTest(ctx)
	if err != nil {
		log.Printf("❌ Failed to look up bot identity: %v", err)
		// slack-go surfaces the API error code as the error string
		return core.FailureResult[models.SlackResponse](core.OperationError{Code: err.Error()})
	}

	if userID == identity.UserID {
		log.Printf("📋 Rejecting self-assignment of bot %s in team %s", userID, command.TeamID)
		return core.SuccessResult(models.SlackResponse{Text: msgSelfAssignment(userID)})
	}

	duty := models.SheriffDuty{
		Current: models.SheriffAssignment{
			UserID:  userID,
			Started: time.Now().UTC(),
		},
	}
	if _, err := u.dutyStore.PutSheriffDuty(ctx, command.TeamID, duty); err != nil {
		log.Printf("❌ Failed to store sheriff duty: %v", err)
		return core.FailureResult[models.SlackResponse](core.OperationError{Code: errorCodeStorageError})
	}

	return core.SuccessResult(models.SlackResponse{
		Text:         msgDutyChange(userID),
		ResponseType: models.SlackResponseTypeInChannel,
	})
}

func (u *SheriffUseCase) removeSheriffUser(
	ctx context.Context,
	command models.SlackCommand,
) core.OperationResult[models.SlackResponse] {
	if err := u.dutyStore.DeleteSheriffDuty(ctx, command.TeamID); err != nil {
		log.Printf("❌ Failed to delete sheriff duty: %v", err)
		return core.FailureResult[models.SlackResponse](core.OperationError{Code: errorCodeStorageError})
	}

	return core.SuccessResult(models.SlackResponse{
		Text:         msgRemoveConfirm,
		ResponseType: models.SlackResponseTypeInChannel,
	})
}
