package sheriff

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sheriffduty/clients"
	"sheriffduty/core"
	"sheriffduty/models"
	"sheriffduty/services/dutystore"
)

func createTestMentionEvent(threadTS string) models.SlackEvent {
	callback := models.SlackCallbackEvent{
		Type:     models.SlackCallbackTypeAppMention,
		Channel:  "C123",
		User:     "U999",
		Text:     "<@B999> who is on duty?",
		ThreadTS: threadTS,
	}
	raw, _ := json.Marshal(callback)

	return models.SlackEvent{
		Type:   models.SlackEventTypeEventCallback,
		TeamID: "T123",
		Event:  raw,
	}
}

func TestDispatchEvent(t *testing.T) {
	t.Run("URLVerification_EchoesChallenge", func(t *testing.T) {
		useCase, mockDutyStore, _, mockSlackClient := setupSheriffUseCase()

		event := models.SlackEvent{
			Type:      models.SlackEventTypeURLVerification,
			TeamID:    "T123",
			Challenge: "abc123",
		}

		result := useCase.DispatchEvent(context.Background(), event)

		require.True(t, result.IsSuccess())
		assert.Equal(t, "abc123", result.Data().Challenge)

		// the handshake must have no side effects
		mockDutyStore.AssertNotCalled(t, "GetSheriffDuty", mock.Anything, mock.Anything)
		mockSlackClient.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything)
	})

	t.Run("AppMention_AnnouncesCurrentSheriff", func(t *testing.T) {
		useCase, mockDutyStore, mockWorkspaces, mockSlackClient := setupSheriffUseCase()

		mockWorkspaces.On("GetWorkspaceByTeamID", mock.Anything, "T123").
			Return(mo.None[*models.Workspace](), nil)
		mockDutyStore.On("GetSheriffDuty", mock.Anything, "T123").
			Return(core.SuccessResult(models.SheriffDuty{
				Current: models.SheriffAssignment{UserID: "U42"},
			}), nil)
		mockSlackClient.On("PostMessage", mock.Anything, mock.MatchedBy(func(params clients.SlackPostMessageParams) bool {
			return params.Channel == "C123" &&
				params.ThreadTS == "123.456" &&
				params.Text == "Hey <@U42>, looks like you are a 🔱 sheriff around here!"
		})).Return(nil)

		result := useCase.DispatchEvent(context.Background(), createTestMentionEvent("123.456"))

		require.True(t, result.IsSuccess())
		assert.Empty(t, result.Data().Challenge)

		mockDutyStore.AssertExpectations(t)
		mockSlackClient.AssertExpectations(t)
	})

	t.Run("AppMention_NoSheriffAssigned", func(t *testing.T) {
		useCase, mockDutyStore, mockWorkspaces, mockSlackClient := setupSheriffUseCase()

		mockWorkspaces.On("GetWorkspaceByTeamID", mock.Anything, "T123").
			Return(mo.None[*models.Workspace](), nil)
		mockDutyStore.On("GetSheriffDuty", mock.Anything, "T123").
			Return(core.FailureResult[models.SheriffDuty](core.OperationError{Code: dutystore.ErrorCodeSheriffNotFound}), nil)
		mockSlackClient.On("PostMessage", mock.Anything, mock.MatchedBy(func(params clients.SlackPostMessageParams) bool {
			return params.Channel == "C123" && params.Text == msgNoSheriff
		})).Return(nil)

		result := useCase.DispatchEvent(context.Background(), createTestMentionEvent(""))

		// absence is announced, not escalated to failure
		require.True(t, result.IsSuccess())

		mockDutyStore.AssertExpectations(t)
		mockSlackClient.AssertExpectations(t)
	})

	t.Run("AppMention_PostMessageFault_SlackError", func(t *testing.T) {
		useCase, mockDutyStore, mockWorkspaces, mockSlackClient := setupSheriffUseCase()

		mockWorkspaces.On("GetWorkspaceByTeamID", mock.Anything, "T123").
			Return(mo.None[*models.Workspace](), nil)
		mockDutyStore.On("GetSheriffDuty", mock.Anything, "T123").
			Return(core.SuccessResult(models.SheriffDuty{
				Current: models.SheriffAssignment{UserID: "U42"},
			}), nil)
		mockSlackClient.On("PostMessage", mock.Anything, mock.Anything).
			Return(fmt.Errorf("channel_not_found"))

		result := useCase.DispatchEvent(context.Background(), createTestMentionEvent(""))

		require.True(t, result.IsFailure())
		assert.Equal(t, []string{"slack_error"}, result.ErrorCodes())
	})

	t.Run("AppMention_StoreFault_SlackError", func(t *testing.T) {
		useCase, mockDutyStore, mockWorkspaces, mockSlackClient := setupSheriffUseCase()

		mockWorkspaces.On("GetWorkspaceByTeamID", mock.Anything, "T123").
			Return(mo.None[*models.Workspace](), nil)
		mockDutyStore.On("GetSheriffDuty", mock.Anything, "T123").
			Return(core.OperationResult[models.SheriffDuty]{}, fmt.Errorf("connection refused"))

		result := useCase.DispatchEvent(context.Background(), createTestMentionEvent(""))

		require.True(t, result.IsFailure())
		assert.Equal(t, []string{"slack_error"}, result.ErrorCodes())

		mockSlackClient.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything)
	})

	t.Run("UnsupportedCallbackType_NoOpSuccess", func(t *testing.T) {
		useCase, mockDutyStore, _, mockSlackClient := setupSheriffUseCase()

		event := models.SlackEvent{
			Type:   models.SlackEventTypeEventCallback,
			TeamID: "T123",
			Event:  json.RawMessage(`{"type":"reaction_added","channel":"C123"}`),
		}

		result := useCase.DispatchEvent(context.Background(), event)

		require.True(t, result.IsSuccess())

		mockDutyStore.AssertNotCalled(t, "GetSheriffDuty", mock.Anything, mock.Anything)
		mockSlackClient.AssertNotCalled(t, "PostMessage", mock.Anything, mock.Anything)
	})

	t.Run("UnsupportedEnvelopeType_NoOpSuccess", func(t *testing.T) {
		useCase, _, _, _ := setupSheriffUseCase()

		event := models.SlackEvent{
			Type:   "app_rate_limited",
			TeamID: "T123",
		}

		result := useCase.DispatchEvent(context.Background(), event)

		require.True(t, result.IsSuccess())
		assert.Empty(t, result.Data().Challenge)
	})
}
