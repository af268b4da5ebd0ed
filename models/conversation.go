package models

// TurnRole tags one side of an assistant conversation.
type TurnRole string

const (
	// RoleAsking marks a turn authored by the user.
	RoleAsking TurnRole = "asking"

	// RoleAnswering marks a turn authored by the model.
	RoleAnswering TurnRole = "answering"
)

// Turn is one role-tagged message in an assistant conversation history.
//
// Turns are transient: the server never persists them. The caller supplies
// the full prior back-and-forth on every ask request and the conversation is
// reconstructed from scratch, so each request is stateless on the server side.
type Turn struct {
	Role TurnRole
	Text string
}

// AskingTurn builds a user-authored turn.
func AskingTurn(text string) Turn {
	return Turn{Role: RoleAsking, Text: text}
}

// AnsweringTurn builds a model-authored turn.
func AnsweringTurn(text string) Turn {
	return Turn{Role: RoleAnswering, Text: text}
}
