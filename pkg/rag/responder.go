package rag

import (
	"context"
	"log"
	"strings"

	"estate-crm-be/internal/constant"
	"estate-crm-be/pkg/llm"
	"estate-crm-be/pkg/rag/prompt"
	"estate-crm-be/pkg/rag/search"
)

// Searcher retrieves property matches for a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]search.PropertyMatch, error)
}

// Responder produces the WhatsApp reply for an inbound message. It never
// returns an error: every failure folds into a fixed apology so the webhook
// can always answer.
type Responder struct {
	searcher    Searcher
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewResponder(searcher Searcher, llmProvider llm.LLMProvider, logger *log.Logger) *Responder {
	return &Responder{
		searcher:    searcher,
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Reply runs retrieval and generation for one inbound message.
func (r *Responder) Reply(ctx context.Context, message string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		r.logger.Printf("[WARN] Empty inbound message")
		return constant.WebhookFallbackReply
	}

	matches, err := r.searcher.Search(ctx, trimmed)
	if err != nil {
		r.logger.Printf("[ERROR] Retrieval failed: %v", err)
		return constant.WebhookFallbackReply
	}

	contextBlock := prompt.BuildContext(matches)
	messages := prompt.BuildMessages(contextBlock, trimmed)

	completion, err := r.llmProvider.Chat(ctx, messages, llm.WithTemperature(constant.WebhookTemperature))
	if err != nil {
		r.logger.Printf("[ERROR] Reply generation failed: %v", err)
		return constant.WebhookFallbackReply
	}

	if strings.TrimSpace(completion) == "" {
		return constant.WebhookEmptyCompletionReply
	}
	return completion
}
