package memory

import (
	"time"

	"estate-crm-be/pkg/board"

	"github.com/patrickmn/go-cache"
)

type BoardSessionRepository struct {
	cache *cache.Cache
}

func NewBoardSessionRepository() *BoardSessionRepository {
	// Board sessions expire after 1 hour of inactivity
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &BoardSessionRepository{
		cache: c,
	}
}

func (r *BoardSessionRepository) Save(session *board.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *BoardSessionRepository) Get(sessionID string) (*board.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*board.Session), true
	}
	return nil, false
}

func (r *BoardSessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
