package constant

// Wire-level sentinels for the WhatsApp webhook. The transport always answers
// HTTP 200 with a TwiML body, so every failure path must resolve to one of
// these fixed replies.
const (
	// WebhookFallbackReply is returned whenever any internal step of the
	// responder fails (embedding, retrieval, generation) or the inbound
	// message is empty.
	WebhookFallbackReply = "Sorry, I encountered an error. Please try again later."

	// WebhookEmptyCompletionReply substitutes an empty LLM completion.
	WebhookEmptyCompletionReply = "Sorry, I couldn't process that."

	// WebhookNoMatchContext is the context block used when no property
	// clears the similarity threshold.
	WebhookNoMatchContext = "No direct property matches found in database."
)

// WebhookSystemPrompt constrains the assistant to the retrieved context.
const WebhookSystemPrompt = `You are a helpful and professional Real Estate Agent assistant for a CRM.
Your goal is to answer user queries based STRICTLY on the provided context of available properties.
If the user asks for properties, recommend the ones from the context that fit their needs.
If the context is empty or doesn't match, politely say you don't have matching properties right now but ask for more details.
Do not invent properties.
Always be concise, friendly, and encourage a visit or call.`

// WebhookTemperature is the fixed sampling temperature for reply generation.
const WebhookTemperature = 0.7
