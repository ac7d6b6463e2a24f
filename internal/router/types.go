package router

// Intent represents the user's intention for a single utterance.
type Intent string

const (
	IntentGreeting Intent = "greeting"
	IntentThanks   Intent = "thanks"
	IntentGoodbye  Intent = "goodbye"
	IntentQuery    Intent = "query"
)

// Social reports whether the intent is answered with a canned reply and
// therefore skips retrieval.
func (i Intent) Social() bool {
	return i == IntentGreeting || i == IntentThanks || i == IntentGoodbye
}
