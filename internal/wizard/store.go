package wizard

import (
	"time"

	"github.com/karlseguin/ccache/v2"
)

const keyPrefix = "draft:"

// Store keeps in-progress drafts in memory. A draft expires ttl after its last save.
type Store struct {
	cache *ccache.Cache
	ttl   time.Duration
}

func NewStore(cache *ccache.Cache, ttl time.Duration) *Store {
	return &Store{cache: cache, ttl: ttl}
}

// Load returns the draft for id, or a fresh draft when id is unknown or expired.
func (s *Store) Load(id string) *Draft {
	if id != "" {
		item := s.cache.Get(keyPrefix + id)
		if item != nil && !item.Expired() {
			draft := *item.Value().(*Draft)
			draft.Violations = append([]string(nil), draft.Violations...)
			draft.Proofs = append([]string(nil), draft.Proofs...)
			return &draft
		}
	}
	return NewDraft()
}

func (s *Store) Save(draft *Draft) {
	stored := *draft
	s.cache.Set(keyPrefix+draft.ID, &stored, s.ttl)
}

func (s *Store) Delete(id string) {
	s.cache.Delete(keyPrefix + id)
}
