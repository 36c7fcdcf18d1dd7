package sheriff

import (
	"context"
	"encoding/json"
	"log"

	"sheriffduty/clients"
	"sheriffduty/core"
	"sheriffduty/models"
)

// DispatchEvent routes an inbound event envelope. Handshake challenges are
// echoed back with no side effects; unrecognized envelope and sub-event
// types are answered with a no-op success.
func (u *SheriffUseCase) DispatchEvent(
	ctx context.Context,
	event models.SlackEvent,
) core.OperationResult[models.SlackEventResponse] {
	switch event.Type {
	case models.SlackEventTypeURLVerification:
		log.Printf("🔐 Answering URL verification challenge for team %s", event.TeamID)
		return core.SuccessResult(models.SlackEventResponse{Challenge: event.Challenge})
	case models.SlackEventTypeEventCallback:
		return u.handleEventCallback(ctx, event)
	default:
		log.Printf("⏭️ Ignoring unsupported event envelope type: %s", event.Type)
		return core.SuccessResult(models.SlackEventResponse{})
	}
}

func (u *SheriffUseCase) handleEventCallback(
	ctx context.Context,
	event models.SlackEvent,
) core.OperationResult[models.SlackEventResponse] {
	var callback models.SlackCallbackEvent
	if err := json.Unmarshal(event.Event, &callback); err != nil {
		log.Printf("❌ Failed to parse callback event: %v", err)
		return core.FailureResult[models.SlackEventResponse](core.OperationError{Code: errorCodeSlackError})
	}

	switch callback.Type {
	case models.SlackCallbackTypeAppMention:
		return u.handleAppMention(ctx, event.TeamID, callback)
	default:
		log.Printf("⏭️ Ignoring unsupported event type: %s", callback.Type)
		return core.SuccessResult(models.SlackEventResponse{})
	}
}

func (u *SheriffUseCase) handleAppMention(
	ctx context.Context,
	teamID string,
	event models.SlackCallbackEvent,
) core.OperationResult[models.SlackEventResponse] {
	log.Printf("📨 Bot mentioned by %s in %s", event.User, event.Channel)

	slackClient, err := u.slackClientForTeam(ctx, teamID)
	if err != nil {
		log.Printf("❌ Failed to get Slack client for team %s: %v", teamID, err)
		return core.FailureResult[models.SlackEventResponse](core.OperationError{Code: errorCodeSlackError})
	}

	dutyResult, err := u.dutyStore.GetSheriffDuty(ctx, teamID)
	if err != nil {
		log.Printf("❌ Failed to read sheriff duty: %v", err)
		return core.FailureResult[models.SlackEventResponse](core.OperationError{Code: errorCodeSlackError})
	}

	// absence of a record is announced, not escalated to a failure
	if dutyResult.IsFailure() {
		if err := slackClient.PostMessage(ctx, clients.SlackPostMessageParams{
			Channel:  event.Channel,
			Text:     msgNoSheriff,
			ThreadTS: event.ThreadTS,
		}); err != nil {
			log.Printf("❌ Failed to post no-sheriff message: %v", err)
			return core.FailureResult[models.SlackEventResponse](core.OperationError{Code: errorCodeSlackError})
		}
		return core.SuccessResult(models.SlackEventResponse{})
	}

	currentSheriff := dutyResult.Data().Current
	if err := slackClient.PostMessage(ctx, clients.SlackPostMessageParams{
		Channel:  event.Channel,
		Text:     msgCurrentSheriff(currentSheriff.UserID),
		ThreadTS: event.ThreadTS,
	}); err != nil {
		log.Printf("❌ Failed to post current-sheriff message: %v", err)
		return core.FailureResult[models.SlackEventResponse](core.OperationError{Code: errorCodeSlackError})
	}

	return core.SuccessResult(models.SlackEventResponse{})
}
