package recipes

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/dietlog/internal/logging"
	"github.com/mesh-intelligence/dietlog/internal/storage"
	"github.com/mesh-intelligence/dietlog/internal/storage/storagetest"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

func soupDraft() types.RecipeDraft {
	return types.RecipeDraft{
		Title:        "Soup",
		Description:  "Warm",
		Ingredients:  []string{"water"},
		Instructions: []string{"boil"},
		Author:       "Utente",
	}
}

// newEmptyStore returns a store over storage holding an empty collection.
func newEmptyStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	require.NoError(t, mem.Put(types.KeyRecipes, []byte("[]")))
	return NewStore(mem, logging.Discard()), mem
}

func TestSeedWhenStorageEmpty(t *testing.T) {
	s := NewStore(storage.NewMemory(), logging.Discard())

	assert.Equal(t, 3, s.Len())
	for _, r := range s.All() {
		assert.True(t, r.Approved)
		assert.Equal(t, SeedAuthor, r.Author)
	}
}

func TestSeedWhenStorageCorrupt(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"malformed JSON", `{"not": "an array"`},
		{"wrong shape", `{"id": "1"}`},
		{"null", `null`},
		{"zero length", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := storage.NewMemory()
			require.NoError(t, mem.Put(types.KeyRecipes, []byte(tt.blob)))
			s := NewStore(mem, logging.Discard())
			assert.Equal(t, 3, s.Len())
		})
	}
}

func TestSeedWhenStorageUnreadable(t *testing.T) {
	flaky := storagetest.NewFlaky()
	flaky.FailGets(true)

	s := NewStore(flaky, logging.Discard())
	assert.Equal(t, 3, s.Len())
}

func TestStoredEmptyCollectionStaysEmpty(t *testing.T) {
	s, _ := newEmptyStore(t)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Search(""))
}

func TestSubmitThenPendingReview(t *testing.T) {
	s, _ := newEmptyStore(t)

	draft := soupDraft()
	r, err := s.Submit(draft)
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.False(t, r.Approved)
	assert.Equal(t, types.RecipePlaceholderURL, r.URL)
	assert.NotEmpty(t, r.Image)
	assert.False(t, r.CreatedAt.IsZero())

	pending := s.ListPendingReview()
	require.Len(t, pending, 1)
	assert.Equal(t, r.ID, pending[0].ID)
	assert.False(t, pending[0].Approved)
}

func TestSubmitAssignsDistinctIDs(t *testing.T) {
	s, _ := newEmptyStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		r, err := s.Submit(soupDraft())
		require.NoError(t, err)
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestSubmitForcesStoreOwnedFields(t *testing.T) {
	s, _ := newEmptyStore(t)
	s.newID = func() string { return "fixed" }
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	draft := soupDraft()
	draft.Image = "https://example.com/soup.png"
	r, err := s.Submit(draft)
	require.NoError(t, err)

	assert.Equal(t, "fixed", r.ID)
	assert.Equal(t, "https://example.com/soup.png", r.Image)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), r.CreatedAt)
}

func TestSubmitMissingDescription(t *testing.T) {
	s := NewStore(storage.NewMemory(), logging.Discard())
	before := s.Len()

	draft := soupDraft()
	draft.Description = ""
	_, err := s.Submit(draft)

	ve, ok := types.IsValidation(err)
	require.True(t, ok, "expected ValidationError, got %v", err)
	assert.Equal(t, types.FieldDescription, ve.Field)
	assert.Equal(t, before, s.Len())
}

func TestSubmitValidationLeavesStorageUntouched(t *testing.T) {
	flaky := storagetest.NewFlaky()
	s := NewStore(flaky, logging.Discard())

	draft := soupDraft()
	draft.Calories = -10
	_, err := s.Submit(draft)
	require.Error(t, err)
	assert.Zero(t, flaky.Puts())
}

func TestApproveThenSearch(t *testing.T) {
	s, _ := newEmptyStore(t)

	r, err := s.Submit(soupDraft())
	require.NoError(t, err)
	assert.Empty(t, s.Search("Soup"), "unapproved recipes are hidden")

	assert.True(t, s.Approve(r.ID))
	found := s.Search("Soup")
	require.Len(t, found, 1)
	assert.Equal(t, r.ID, found[0].ID)
	assert.Empty(t, s.ListPendingReview())
}

func TestApproveIsIdempotent(t *testing.T) {
	s, _ := newEmptyStore(t)
	r, err := s.Submit(soupDraft())
	require.NoError(t, err)

	assert.True(t, s.Approve(r.ID))
	assert.True(t, s.Approve(r.ID))
	assert.False(t, s.Approve("missing"))
}

func TestRemoveOmitsRecipeEverywhere(t *testing.T) {
	s, _ := newEmptyStore(t)
	r, err := s.Submit(soupDraft())
	require.NoError(t, err)
	s.Approve(r.ID)

	assert.True(t, s.Remove(r.ID))
	assert.False(t, s.Remove(r.ID))

	assert.Empty(t, s.Search("Soup"))
	assert.Empty(t, s.ListByAuthor("Utente"))
	assert.Empty(t, s.ListPendingReview())
	_, ok := s.Get(r.ID)
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	s := NewStore(storage.NewMemory(), logging.Discard())

	tests := []struct {
		query string
		want  []string
	}{
		{"pasta", []string{"1"}},
		{"QUINOA", []string{"2"}},
		{"proteine", []string{"2", "3"}},
		{"zucchine", []string{"3"}},
		{"", []string{"1", "2", "3"}},
		{"sushi", nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("query %q", tt.query), func(t *testing.T) {
			var ids []string
			for _, r := range s.Search(tt.query) {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSearchCapsResultsAndSkipsUnapproved(t *testing.T) {
	s, _ := newEmptyStore(t)

	var approvedIDs []string
	for i := 0; i < 12; i++ {
		draft := soupDraft()
		draft.Title = fmt.Sprintf("Soup %d", i)
		r, err := s.Submit(draft)
		require.NoError(t, err)
		if i%3 != 0 {
			s.Approve(r.ID)
			approvedIDs = append(approvedIDs, r.ID)
		}
	}

	found := s.Search("soup")
	require.Len(t, found, SearchLimit)
	for i, r := range found {
		assert.True(t, r.Approved)
		assert.Equal(t, approvedIDs[i], r.ID, "storage order is kept")
	}
}

func TestListByAuthorExactMatch(t *testing.T) {
	s := NewStore(storage.NewMemory(), logging.Discard())
	_, err := s.Submit(soupDraft())
	require.NoError(t, err)

	assert.Len(t, s.ListByAuthor("Utente"), 1)
	assert.Empty(t, s.ListByAuthor("utente"))
	assert.Len(t, s.ListByAuthor(SeedAuthor), 3)
}

func TestMutationsPersistAndReload(t *testing.T) {
	mem := storage.NewMemory()
	s := NewStore(mem, logging.Discard())

	r, err := s.Submit(soupDraft())
	require.NoError(t, err)
	require.True(t, s.Approve(r.ID))
	require.True(t, s.Remove("1"))

	reloaded := NewStore(mem, logging.Discard())
	assert.Equal(t, 3, reloaded.Len())
	got, ok := reloaded.Get(r.ID)
	require.True(t, ok)
	assert.True(t, got.Approved)
	_, ok = reloaded.Get("1")
	assert.False(t, ok)
}

func TestWriteFailureKeepsMemoryMutated(t *testing.T) {
	flaky := storagetest.NewFlaky()
	s := NewStore(flaky, logging.Discard())
	flaky.FailPuts(true)

	r, err := s.Submit(soupDraft())
	require.NoError(t, err, "write failures are logged, not returned")
	assert.Equal(t, 4, s.Len())

	_, ok := s.Get(r.ID)
	assert.True(t, ok)

	reloaded := NewStore(flaky.Memory, logging.Discard())
	assert.Equal(t, 3, reloaded.Len(), "durable state diverges from memory")
}

func TestReturnedRecipesAreCopies(t *testing.T) {
	s := NewStore(storage.NewMemory(), logging.Discard())

	got := s.Search("pasta")
	require.Len(t, got, 1)
	got[0].Ingredients[0] = "changed"
	got[0].Approved = false

	again := s.Search("pasta")
	require.Len(t, again, 1)
	assert.Equal(t, "Pasta 80g", again[0].Ingredients[0])
}
