package diary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/dietlog/internal/logging"
	"github.com/mesh-intelligence/dietlog/internal/storage"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

var noon = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) // a Sunday

func TestJournalAdd(t *testing.T) {
	j := NewJournal(storage.NewMemory(), logging.Discard())

	meal, err := j.Add(types.Meal{ID: 1, Type: types.MealLunch, Ingredients: []string{" rice ", "", "beans"}, Date: noon})
	require.NoError(t, err)
	assert.Equal(t, []string{"rice", "beans"}, meal.Ingredients)

	_, err = j.Add(types.Meal{ID: 1, Type: types.MealDinner, Ingredients: []string{"soup"}})
	assert.ErrorIs(t, err, types.ErrDuplicateMeal)

	require.Len(t, j.Meals(), 1)
}

func TestJournalAddValidation(t *testing.T) {
	j := NewJournal(storage.NewMemory(), logging.Discard())

	tests := []struct {
		name      string
		meal      types.Meal
		wantField string
	}{
		{"zero id", types.Meal{Type: types.MealLunch, Ingredients: []string{"x"}}, types.FieldID},
		{"bad type", types.Meal{ID: 2, Type: "brunch", Ingredients: []string{"x"}}, types.FieldType},
		{"no ingredients", types.Meal{ID: 3, Type: types.MealSnack, Ingredients: []string{" "}}, types.FieldIngredients},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := j.Add(tt.meal)
			ve, ok := types.IsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
	assert.Empty(t, j.Meals())
}

func TestJournalPersistsAndClears(t *testing.T) {
	mem := storage.NewMemory()
	j := NewJournal(mem, logging.Discard())

	_, err := j.Log(types.MealBreakfast, []string{"oats"}, noon)
	require.NoError(t, err)
	_, err = j.Log(types.MealBreakfast, []string{"milk"}, noon)
	require.NoError(t, err, "same millisecond still gets a fresh id")

	reloaded := NewJournal(mem, logging.Discard())
	meals := reloaded.Meals()
	require.Len(t, meals, 2)
	assert.NotEqual(t, meals[0].ID, meals[1].ID)
	assert.True(t, meals[0].Date.Equal(noon))

	reloaded.Clear()
	assert.Empty(t, reloaded.Meals())
	assert.Empty(t, NewJournal(mem, logging.Discard()).Meals())
}

func TestJournalIgnoresCorruptStorage(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.Put(types.KeyMeals, []byte("{broken")))
	assert.Empty(t, NewJournal(mem, logging.Discard()).Meals())
}

func TestNextIDSkipsUsedIDs(t *testing.T) {
	j := NewJournal(storage.NewMemory(), logging.Discard())
	id := noon.UnixMilli()
	_, err := j.Add(types.Meal{ID: id, Type: types.MealLunch, Ingredients: []string{"x"}})
	require.NoError(t, err)

	assert.Equal(t, id+1, j.NextID(noon))
}

func TestCompletePlanned(t *testing.T) {
	j := NewJournal(storage.NewMemory(), logging.Discard())
	planned := types.PlannedMeal{
		Type:      types.MealDinner,
		DayOfWeek: time.Sunday,
		Items:     []types.Portion{{Ingredient: "salmon", Amount: "150g"}, {Ingredient: "broccoli", Amount: "200g"}},
	}

	meal, err := CompletePlanned(j, planned, noon)
	require.NoError(t, err)
	assert.Equal(t, types.MealDinner, meal.Type)
	assert.Equal(t, []string{"salmon", "broccoli"}, meal.Ingredients)
	assert.Len(t, j.Meals(), 1)
}

func TestMealsOn(t *testing.T) {
	meals := []types.Meal{
		{ID: 1, Date: noon.Add(-13 * time.Hour)},
		{ID: 2, Date: noon},
		{ID: 3, Date: noon.Add(11 * time.Hour)},
		{ID: 4, Date: noon.Add(12 * time.Hour)},
	}

	got := MealsOn(meals, noon)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestQuickMeal(t *testing.T) {
	meal := QuickMeal(7, types.MealSnack, " mela , , noci ", noon)
	assert.Equal(t, types.Meal{ID: 7, Type: types.MealSnack, Ingredients: []string{"mela", "noci"}, Date: noon}, meal)

	j := NewJournal(storage.NewMemory(), logging.Discard())
	_, err := j.Add(QuickMeal(8, types.MealSnack, " , ", noon))
	_, isValidation := types.IsValidation(err)
	assert.True(t, isValidation)
}
