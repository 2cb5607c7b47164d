package service

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"estate-crm-be/internal/dto"
	"estate-crm-be/internal/repository/memory"
	"estate-crm-be/internal/repository/unitofwork"
	"estate-crm-be/pkg/embedding"
	"estate-crm-be/pkg/llm"
	"estate-crm-be/pkg/rag"
	"estate-crm-be/pkg/rag/search"
	"estate-crm-be/pkg/store"
)

type IChatbotService interface {
	HandleIncomingMessage(ctx context.Context, msg *dto.IncomingWhatsAppMessage) string
	GetConversation(ctx context.Context, sender string) ([]dto.ConversationTurnResponse, error)
}

// chatbotService answers WhatsApp messages about property listings and keeps
// a short-lived transcript per sender.
type chatbotService struct {
	responder        *rag.Responder
	conversationRepo *memory.ConversationRepository
	llmLogger        *log.Logger
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	llmProvider llm.LLMProvider,
	conversationRepo *memory.ConversationRepository,
) IChatbotService {
	llmLogger := initLLMLogger()

	retriever := search.NewRetriever(embeddingProvider, uowFactory, search.DefaultConfig(), llmLogger)
	responder := rag.NewResponder(retriever, llmProvider, llmLogger)

	return &chatbotService{
		responder:        responder,
		conversationRepo: conversationRepo,
		llmLogger:        llmLogger,
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_rag.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-RAG] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

func (cs *chatbotService) HandleIncomingMessage(ctx context.Context, msg *dto.IncomingWhatsAppMessage) string {
	cs.llmLogger.Printf("[WEBHOOK] Inbound message from %s", msg.From)

	reply := cs.responder.Reply(ctx, msg.Body)

	if msg.From != "" {
		conversation, found := cs.conversationRepo.Get(msg.From)
		if !found {
			conversation = store.NewConversation(msg.From)
		}
		conversation.Append("user", msg.Body)
		conversation.Append("assistant", reply)
		cs.conversationRepo.Save(conversation)
	}

	return reply
}

func (cs *chatbotService) GetConversation(ctx context.Context, sender string) ([]dto.ConversationTurnResponse, error) {
	conversation, found := cs.conversationRepo.Get(sender)
	if !found {
		return []dto.ConversationTurnResponse{}, nil
	}

	turns := make([]dto.ConversationTurnResponse, 0, len(conversation.Turns))
	for _, t := range conversation.Turns {
		turns = append(turns, dto.ConversationTurnResponse{
			Role:      t.Role,
			Content:   t.Content,
			Timestamp: t.Timestamp,
		})
	}
	return turns, nil
}
