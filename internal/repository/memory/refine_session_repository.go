package memory

import (
	"time"

	"ai-summarizer-be/pkg/refine"

	"github.com/patrickmn/go-cache"
)

// RefineSessionRepository holds open refinement sessions in memory,
// keyed per (user, summary). Sessions are ephemeral: they expire after
// an hour of inactivity and are never persisted.
type RefineSessionRepository struct {
	cache *cache.Cache
}

func NewRefineSessionRepository() *RefineSessionRepository {
	// Default expiration of 1 hour, purge of expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &RefineSessionRepository{
		cache: c,
	}
}

func (r *RefineSessionRepository) Save(key string, session *refine.Session) {
	r.cache.Set(key, session, cache.DefaultExpiration)
}

func (r *RefineSessionRepository) Get(key string) (*refine.Session, bool) {
	if x, found := r.cache.Get(key); found {
		return x.(*refine.Session), true
	}
	return nil, false
}

func (r *RefineSessionRepository) Delete(key string) {
	r.cache.Delete(key)
}
