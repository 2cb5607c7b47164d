package store

import "time"

// Turn is a single exchange in a WhatsApp conversation.
type Turn struct {
	Role      string // "user" or "assistant"
	Content   string
	Timestamp time.Time
}

// Conversation keeps the recent turns with one sender. Kept in memory only;
// it expires after a period of inactivity.
type Conversation struct {
	Sender string
	Turns  []Turn
}

func NewConversation(sender string) *Conversation {
	return &Conversation{Sender: sender}
}

func (c *Conversation) Append(role, content string) {
	c.Turns = append(c.Turns, Turn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}
