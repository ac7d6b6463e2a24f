package chat

// TurnInput is one inbound user turn.
type TurnInput struct {
	ThreadID string // opaque caller-supplied conversation key
	Message  string // the user utterance
}

// TurnOutput is the assistant reply for a turn.
type TurnOutput struct {
	Reply string
}

// ApologyReply is returned when a turn fails internally after validation.
// The triggering condition goes to the log, never to the caller.
const ApologyReply = "I encountered an error while processing your request. Please try again."
