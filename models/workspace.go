package models

import "time"

// Workspace maps a Slack team to the bot token used when posting into it.
type Workspace struct {
	ID             string    `json:"id"               db:"id"`
	SlackTeamID    string    `json:"slack_team_id"    db:"slack_team_id"`
	SlackTeamName  string    `json:"slack_team_name"  db:"slack_team_name"`
	SlackAuthToken string    `json:"-"                db:"slack_auth_token"`
	CreatedAt      time.Time `json:"created_at"       db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"       db:"updated_at"`
}
