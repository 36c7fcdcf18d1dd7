package slack

import (
	"context"

	"github.com/slack-go/slack"

	"sheriffduty/clients"
)

const (
	botUsername  = "sheriff-bot"
	botIconEmoji = ":trident:"
)

// SlackClient implements the clients.SlackClient interface using the
// slack-go/slack SDK
type SlackClient struct {
	*slack.Client
}

// NewSlackClient creates a new Slack client with the provided auth token
func NewSlackClient(authToken string) clients.SlackClient {
	return &SlackClient{
		Client: slack.New(authToken),
	}
}

// PostMessage sends a message to a Slack channel, posting as the sheriff bot
func (c *SlackClient) PostMessage(ctx context.Context, params clients.SlackPostMessageParams) error {
	options := []slack.MsgOption{
		slack.MsgOptionText(params.Text, false),
		slack.MsgOptionUsername(botUsername),
		slack.MsgOptionIconEmoji(botIconEmoji),
	}
	if params.ThreadTS != "" {
		options = append(options, slack.MsgOptionTS(params.ThreadTS))
	}

	_, _, err := c.Client.PostMessageContext(ctx, params.Channel, options...)
	return err
}

// AuthTest verifies the bot token and returns the bot's own identity
func (c *SlackClient) AuthTest(ctx context.Context) (*clients.SlackAuthTestResponse, error) {
	response, err := c.Client.AuthTestContext(ctx)
	if err != nil {
		return nil, err
	}

	return &clients.SlackAuthTestResponse{
		UserID: response.UserID,
		TeamID: response.TeamID,
	}, nil
}
