package responder

// Synthesis modes.
const (
	ModeTemplate = "template"
	ModeLLM      = "llm"
)

// Reply composition limits. Golden-output tests depend on both values.
const (
	MaxPassagesInReply = 3
	MaxCharsPerPassage = 200
)

// Canned replies for social intents and the no-results fallback.
const (
	GreetingReply = "Hello! I'm here to help you find information about digital sovereignty and related topics from the books. What would you like to know?"
	ThanksReply   = "You're welcome! I'm glad I could help. Is there anything else you'd like to know about digital sovereignty or related topics?"
	GoodbyeReply  = "Goodbye! Feel free to come back if you have more questions about digital sovereignty and related topics."
	FallbackReply = "I couldn't find any relevant information in the books. Could you please rephrase your question or ask about a different topic?"
)

// Reply framing for the grounded template composition.
const (
	replyOpening = "Based on the books, here's what I found:"
	replyClosing = "\n\nIs there anything specific about this information you'd like me to elaborate on?"
)

// LLM generation settings.
const (
	llmTemperature     = 0.7
	llmMaxOutputTokens = 1000
)
