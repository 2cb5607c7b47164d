package llm

import (
	"context"
)

// Message is one turn of a chat exchange in provider-neutral form.
type Message struct {
	Role    string // "system", "user" or "assistant"
	Content string
}

// Options carries per-call generation parameters. Zero values mean
// "use the provider default".
type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string
}

type Option func(*Options)

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithModel overrides the model the provider was constructed with.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider is the contract every chat backend implements.
type LLMProvider interface {
	// Chat sends a message history and returns the completion text.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate wraps a single prompt as a one-message chat.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
