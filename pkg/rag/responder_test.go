package rag

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"estate-crm-be/internal/constant"
	"estate-crm-be/pkg/llm"
	"estate-crm-be/pkg/rag/search"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	matches []search.PropertyMatch
	err     error
	queries []string
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]search.PropertyMatch, error) {
	f.queries = append(f.queries, query)
	return f.matches, f.err
}

type fakeLLM struct {
	reply   string
	err     error
	history []llm.Message
	opts    llm.Options
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.history = history
	f.opts = llm.Options{}
	for _, opt := range options {
		opt(&f.opts)
	}
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func newTestResponder(s *fakeSearcher, l *fakeLLM) *Responder {
	return NewResponder(s, l, log.New(io.Discard, "", 0))
}

func TestReply_HappyPath(t *testing.T) {
	searcher := &fakeSearcher{
		matches: []search.PropertyMatch{
			{Id: uuid.New(), Title: "Cozy Downtown Condo", Price: 250000},
		},
	}
	provider := &fakeLLM{reply: "We have a Cozy Downtown Condo for 250000."}

	reply := newTestResponder(searcher, provider).Reply(context.Background(), "  any condos downtown? ")

	assert.Equal(t, "We have a Cozy Downtown Condo for 250000.", reply)

	// message is trimmed before retrieval and generation
	require.Len(t, searcher.queries, 1)
	assert.Equal(t, "any condos downtown?", searcher.queries[0])
	require.Len(t, provider.history, 3)
	assert.Equal(t, "any condos downtown?", provider.history[2].Content)
	assert.InDelta(t, 0.7, provider.opts.Temperature, 1e-9)
}

func TestReply_EmptyMessage(t *testing.T) {
	searcher := &fakeSearcher{}
	provider := &fakeLLM{reply: "should not be called"}

	reply := newTestResponder(searcher, provider).Reply(context.Background(), "   \n\t ")

	assert.Equal(t, constant.WebhookFallbackReply, reply)
	assert.Empty(t, searcher.queries)
}

func TestReply_SearchErrorFoldsToFallback(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("pgvector down")}
	provider := &fakeLLM{reply: "unused"}

	reply := newTestResponder(searcher, provider).Reply(context.Background(), "villas in bali")

	assert.Equal(t, constant.WebhookFallbackReply, reply)
}

func TestReply_LLMErrorFoldsToFallback(t *testing.T) {
	searcher := &fakeSearcher{}
	provider := &fakeLLM{err: errors.New("rate limited")}

	reply := newTestResponder(searcher, provider).Reply(context.Background(), "villas in bali")

	assert.Equal(t, constant.WebhookFallbackReply, reply)
}

func TestReply_EmptyCompletion(t *testing.T) {
	searcher := &fakeSearcher{}
	provider := &fakeLLM{reply: "  \n"}

	reply := newTestResponder(searcher, provider).Reply(context.Background(), "villas in bali")

	assert.Equal(t, constant.WebhookEmptyCompletionReply, reply)
}

func TestReply_NoMatchesStillAnswers(t *testing.T) {
	searcher := &fakeSearcher{}
	provider := &fakeLLM{reply: "I don't have matching listings right now, could you share more details?"}

	reply := newTestResponder(searcher, provider).Reply(context.Background(), "castle with a moat")

	assert.NotEmpty(t, reply)
	require.Len(t, provider.history, 3)
	assert.Equal(t, "Context Properties:\n"+constant.WebhookNoMatchContext, provider.history[1].Content)
}
