package memory

import (
	"time"

	"estate-crm-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	// Conversations expire after 30 minutes of inactivity
	c := cache.New(30*time.Minute, 10*time.Minute)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Save(conversation *store.Conversation) {
	r.cache.Set(conversation.Sender, conversation, cache.DefaultExpiration)
}

func (r *ConversationRepository) Get(sender string) (*store.Conversation, bool) {
	if x, found := r.cache.Get(sender); found {
		return x.(*store.Conversation), true
	}
	return nil, false
}

func (r *ConversationRepository) Delete(sender string) {
	r.cache.Delete(sender)
}
