package clients

import "context"

// SlackAuthTestResponse carries the bot's own identity as reported by
// Slack's auth.test method.
type SlackAuthTestResponse struct {
	UserID string
	TeamID string
}

// SlackPostMessageParams describes an outbound channel message. ThreadTS is
// optional; when set, the message is posted into that thread.
type SlackPostMessageParams struct {
	Channel  string
	Text     string
	ThreadTS string
}

// SlackClient defines the interface for the Slack Web API operations this
// app needs: posting a message and looking up the bot's own identity.
type SlackClient interface {
	PostMessage(ctx context.Context, params SlackPostMessageParams) error
	AuthTest(ctx context.Context) (*SlackAuthTestResponse, error)
}

// SlackClientFactory builds a SlackClient for a given bot auth token.
type SlackClientFactory func(authToken string) SlackClient
