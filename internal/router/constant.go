package router

// rule binds one intent to its trigger vocabulary. Single words match whole
// words only; phrases match as substrings.
type rule struct {
	intent  Intent
	words   []string
	phrases []string
}

// rules is evaluated in order; the first match wins. The order is a policy
// choice (an utterance containing both a greeting word and a thanks word
// classifies as greeting) and must not be reordered: it decides whether the
// retrieval path runs at all.
var rules = []rule{
	{
		intent:  IntentGreeting,
		words:   []string{"hello", "hi", "hey", "greetings", "howdy"},
		phrases: []string{"good morning", "good afternoon", "good evening"},
	},
	{
		intent:  IntentThanks,
		words:   []string{"thanks", "thx", "appreciated"},
		phrases: []string{"thank you", "much appreciated"},
	},
	{
		intent:  IntentGoodbye,
		words:   []string{"bye", "goodbye", "farewell", "cya"},
		phrases: []string{"see you", "talk to you later", "good night"},
	},
}
