// Package blog implements the editorial post store: an in-memory collection
// mirrored to a single durable key, listed newest first.
package blog

import (
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/dietlog/internal/logging"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// Store owns the post collection. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	posts   []types.BlogPost // insertion order
	storage types.Storage
	log     *logrus.Entry
	now     func() time.Time
	newID   func() string
}

// NewStore loads the collection from storage, falling back to the seed post
// when storage holds nothing usable.
func NewStore(storage types.Storage, logger logrus.FieldLogger) *Store {
	s := &Store{
		storage: storage,
		log:     logging.Component(logger, "blog"),
		now:     time.Now,
		newID:   types.NewID,
	}
	s.posts = s.load()
	return s
}

func (s *Store) load() []types.BlogPost {
	data, err := s.storage.Get(types.KeyBlogPosts)
	if err != nil {
		if !errors.Is(err, types.ErrKeyNotFound) {
			s.log.WithError(err).Warn("reading posts failed, using seed data")
		}
		return seedPosts(s.now())
	}

	var posts []types.BlogPost
	if err := json.Unmarshal(data, &posts); err != nil {
		s.log.WithError(err).Warn("stored posts are malformed, using seed data")
		return seedPosts(s.now())
	}
	if posts == nil {
		return seedPosts(s.now())
	}
	return posts
}

// persist writes the whole collection. The caller must hold s.mu.
func (s *Store) persist() {
	data, err := json.Marshal(s.posts)
	if err != nil {
		s.log.WithError(err).Error("encoding posts failed")
		return
	}
	if err := s.storage.Put(types.KeyBlogPosts, data); err != nil {
		s.log.WithError(err).WithField("count", len(s.posts)).Error("saving posts failed")
	}
}

// ListAll returns every post, newest first. Posts with equal timestamps keep
// their insertion order.
func (s *Store) ListAll() []types.BlogPost {
	s.mu.RLock()
	out := make([]types.BlogPost, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p.Clone())
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Latest returns the newest post.
func (s *Store) Latest() (types.BlogPost, bool) {
	all := s.ListAll()
	if len(all) == 0 {
		return types.BlogPost{}, false
	}
	return all[0], true
}

// Get returns the post with the given id.
func (s *Store) Get(id string) (types.BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.posts[i].Clone(), true
	}
	return types.BlogPost{}, false
}

// Create stores a new post stamped with the current time. The excerpt is
// derived from the content.
func (s *Store) Create(draft types.BlogDraft) types.BlogPost {
	post := types.BlogPost{
		ID:                s.newID(),
		Title:             draft.Title,
		Content:           draft.Content,
		Image:             draft.Image,
		CreatedAt:         s.now().UTC(),
		Excerpt:           types.Excerpt(draft.Content),
		RecipeID:          draft.RecipeID,
		SponsoredProducts: append([]types.SponsoredProduct(nil), draft.SponsoredProducts...),
	}
	if len(post.SponsoredProducts) == 0 {
		post.SponsoredProducts = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append(s.posts, post)
	s.persist()
	s.log.WithField("id", post.ID).Info("post created")
	return post.Clone()
}

// Update merges patch into the post. The excerpt changes only when the patch
// carries one. Returns false when id is unknown.
func (s *Store) Update(id string, patch types.BlogPatch) (types.BlogPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return types.BlogPost{}, false
	}
	patch.Apply(&s.posts[i])
	s.persist()
	s.log.WithField("id", id).Info("post updated")
	return s.posts[i].Clone(), true
}

// Remove deletes the post and reports whether it was present.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.posts = append(s.posts[:i], s.posts[i+1:]...)
	s.persist()
	s.log.WithField("id", id).Info("post removed")
	return true
}

// Len returns the collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

func (s *Store) indexOf(id string) int {
	for i, p := range s.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}
