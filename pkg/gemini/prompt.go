package gemini

// ConversationSystemPrompt is the system instruction for the conversational
// reply path. Retrieved passages are appended as context below the
// instruction before the conversation history.
const ConversationSystemPrompt = `You are a thoughtful, well-read conversational assistant with access to a curated knowledge base of books.

RULES:
1. Answer the user's latest message using the conversation history for context.
2. When book passages are provided below, ground your answer in them. Weave the insights in naturally instead of lecturing or dumping citations.
3. If the passages do not contain the information needed, say so plainly. Do not invent content.
4. Keep responses conversational, concise, and genuinely helpful.`

// BuildConversationPrompt assembles the grounding context block placed after
// the system instruction. passages is pre-formatted passage text; empty means
// no retrieval ran or nothing was found.
func BuildConversationPrompt(passages string) string {
	if passages == "" {
		return ConversationSystemPrompt + "\n\nNo book passages were retrieved for this message."
	}
	return ConversationSystemPrompt + "\n\nRelevant book passages:\n\n" + passages
}
