// Package recipes implements the community recipe store: an in-memory
// collection mirrored to a single durable key, with search and moderation.
package recipes

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/dietlog/internal/logging"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// SearchLimit caps the number of recipes Search returns.
const SearchLimit = 6

// Store owns the recipe collection. It loads once from storage at
// construction and writes the full collection back after every mutation.
// Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	recipes []types.Recipe
	storage types.Storage
	log     *logrus.Entry
	now     func() time.Time
	newID   func() string
}

// NewStore loads the collection from storage. A missing, empty or malformed
// blob is replaced by the seed recipes; that failure is logged, never
// returned.
func NewStore(storage types.Storage, logger logrus.FieldLogger) *Store {
	s := &Store{
		storage: storage,
		log:     logging.Component(logger, "recipes"),
		now:     time.Now,
		newID:   types.NewID,
	}
	s.recipes = s.load()
	return s
}

func (s *Store) load() []types.Recipe {
	data, err := s.storage.Get(types.KeyRecipes)
	if err != nil {
		if !errors.Is(err, types.ErrKeyNotFound) {
			s.log.WithError(err).Warn("reading recipes failed, using seed data")
		}
		return seedRecipes()
	}

	var recipes []types.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		s.log.WithError(err).Warn("stored recipes are malformed, using seed data")
		return seedRecipes()
	}
	if recipes == nil {
		return seedRecipes()
	}
	return recipes
}

// persist writes the whole collection. A failure is logged and the
// in-memory collection is kept as is. The caller must hold s.mu.
func (s *Store) persist() {
	data, err := json.Marshal(s.recipes)
	if err != nil {
		s.log.WithError(err).Error("encoding recipes failed")
		return
	}
	if err := s.storage.Put(types.KeyRecipes, data); err != nil {
		s.log.WithError(err).WithField("count", len(s.recipes)).Error("saving recipes failed")
	}
}

// Search returns up to SearchLimit approved recipes whose title,
// description or any ingredient contains query, ignoring case, in storage
// order. An empty query matches every approved recipe.
func (s *Store) Search(query string) []types.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	out := []types.Recipe{}
	for _, r := range s.recipes {
		if len(out) == SearchLimit {
			break
		}
		if r.Approved && r.Matches(q) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Submit validates draft and appends it as a new unapproved recipe. On
// validation failure it returns a *types.ValidationError and the collection
// is unchanged.
func (s *Store) Submit(draft types.RecipeDraft) (types.Recipe, error) {
	if err := draft.Validate(); err != nil {
		return types.Recipe{}, err
	}

	r := draft.Normalize()
	r.ID = s.newID()
	r.Approved = false
	r.URL = types.RecipePlaceholderURL
	r.CreatedAt = s.now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.recipes = append(s.recipes, r)
	s.persist()
	s.log.WithFields(logrus.Fields{"id": r.ID, "author": r.Author}).Info("recipe submitted for review")
	return r.Clone(), nil
}

// ListByAuthor returns every recipe whose author equals author exactly.
func (s *Store) ListByAuthor(author string) []types.Recipe {
	return s.filter(func(r types.Recipe) bool { return r.Author == author })
}

// ListPendingReview returns every recipe that is not yet approved.
func (s *Store) ListPendingReview() []types.Recipe {
	return s.filter(func(r types.Recipe) bool { return !r.Approved })
}

// All returns the full collection in storage order.
func (s *Store) All() []types.Recipe {
	return s.filter(func(types.Recipe) bool { return true })
}

// Get returns the recipe with the given id.
func (s *Store) Get(id string) (types.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.recipes[i].Clone(), true
	}
	return types.Recipe{}, false
}

// Approve marks the recipe visible to search and reports whether it exists.
// Approving an approved recipe succeeds.
func (s *Store) Approve(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.recipes[i].Approved = true
	s.persist()
	s.log.WithField("id", id).Info("recipe approved")
	return true
}

// Remove deletes the recipe and reports whether it was present. Blog posts
// that reference it keep the dangling id.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
	s.persist()
	s.log.WithField("id", id).Info("recipe removed")
	return true
}

// Len returns the collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

func (s *Store) filter(keep func(types.Recipe) bool) []types.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []types.Recipe{}
	for _, r := range s.recipes {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// indexOf returns the position of id, or -1. The caller must hold s.mu.
func (s *Store) indexOf(id string) int {
	for i, r := range s.recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}
