package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"estate-crm-be/internal/constant"
	"estate-crm-be/pkg/llm"
	"estate-crm-be/pkg/rag/search"
)

// BuildContext renders retrieved listings into the context block injected
// into the prompt, one line per property. With no matches it returns the
// fixed no-match sentinel so the model knows the database came up empty.
func BuildContext(matches []search.PropertyMatch) string {
	if len(matches) == 0 {
		return constant.WebhookNoMatchContext
	}

	lines := make([]string, len(matches))
	for i, m := range matches {
		price := strconv.FormatFloat(m.Price, 'f', -1, 64)
		lines[i] = fmt.Sprintf("- %s (Price: %s, ID: %s): %s. Image: %s",
			m.Title, price, m.Id, m.Description, m.ImageURL)
	}
	return strings.Join(lines, "\n")
}

// BuildMessages assembles the chat history for reply generation: the agent
// persona, the context block, then the user's message verbatim.
func BuildMessages(contextBlock, userMessage string) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: constant.WebhookSystemPrompt},
		{Role: "system", Content: "Context Properties:\n" + contextBlock},
		{Role: "user", Content: userMessage},
	}
}
