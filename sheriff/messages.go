package sheriff

import "fmt"

const (
	msgRemoveConfirm = "Sheriff duty has been removed! Who will be our hero 😱?"
	msgProvideUser   = "Please provide a user handler who will be next sheriff! Example: `/sheriff @user.`"
	msgHelp          = "I don't understand this command. Please use `/sheriff @user` or `/sheriff remove`."
	msgNoSheriff     = "There is no sheriff around here! Set one using `/sheriff @user` command."
)

func msgUnknownCommand(command string) string {
	return fmt.Sprintf("Whops, I don't know how to handle this command: %q!", command)
}

func msgSelfAssignment(userID string) string {
	return fmt.Sprintf("I'm sorry, <@%s>, but you cannot be a sheriff and a bot at the same time. 😅", userID)
}

func msgDutyChange(userID string) string {
	return fmt.Sprintf("Duty change! <@%s> is now a sheriff 🔱 around here!", userID)
}

func msgCurrentSheriff(userID string) string {
	return fmt.Sprintf("Hey <@%s>, looks like you are a 🔱 sheriff around here!", userID)
}
