package models

import "encoding/json"

// Slack event envelope types
const (
	SlackEventTypeURLVerification = "url_verification"
	SlackEventTypeEventCallback   = "event_callback"
)

// Slack callback sub-event types
const (
	SlackCallbackTypeAppMention = "app_mention"
)

// Slack response types for slash command replies
const (
	SlackResponseTypeInChannel = "in_channel"
	SlackResponseTypeEphemeral = "ephemeral"
)

// SlackCommand is a parsed slash-command payload as delivered by Slack's
// url-encoded form body. Ephemeral, never persisted.
type SlackCommand struct {
	Command     string `json:"command"`
	TeamID      string `json:"team_id"`
	TeamDomain  string `json:"team_domain"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	Text        string `json:"text"`
	ResponseURL string `json:"response_url"`
}

// SlackEvent is the inbound event envelope: either a one-shot url
// verification handshake carrying a challenge, or an event callback
// wrapping a typed sub-event.
type SlackEvent struct {
	Type      string          `json:"type"`
	TeamID    string          `json:"team_id"`
	Challenge string          `json:"challenge,omitempty"`
	Event     json.RawMessage `json:"event,omitempty"`
}

// SlackCallbackEvent is the nested sub-event of an event_callback envelope.
type SlackCallbackEvent struct {
	Type     string `json:"type"`
	Channel  string `json:"channel"`
	User     string `json:"user"`
	Text     string `json:"text"`
	ThreadTS string `json:"thread_ts,omitempty"`
}

// SlackResponse is the JSON reply rendered for a slash command.
type SlackResponse struct {
	Text         string `json:"text"`
	ResponseType string `json:"response_type,omitempty"`
}

// SlackEventResponse is the success payload of event dispatch. The challenge
// is set only when answering a url_verification handshake.
type SlackEventResponse struct {
	Challenge string `json:"challenge,omitempty"`
}
