package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"ratesignal-be/pkg/session"
)

type RatingSessionRepository struct {
	cache *cache.Cache
}

// NewRatingSessionRepository keeps open rating sessions for ttl, purging
// expired ones every ttl/3.
func NewRatingSessionRepository(ttl time.Duration) *RatingSessionRepository {
	c := cache.New(ttl, ttl/3)
	return &RatingSessionRepository{
		cache: c,
	}
}

func (r *RatingSessionRepository) Save(s *session.RatingSession) {
	r.cache.Set(s.ID, s, cache.DefaultExpiration)
}

func (r *RatingSessionRepository) Get(sessionID string) (*session.RatingSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*session.RatingSession), true
	}
	return nil, false
}

func (r *RatingSessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
