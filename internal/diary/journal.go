package diary

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/dietlog/internal/logging"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// Journal is the append-only meal log. Meals are never edited; the journal
// is only appended to or cleared as a whole.
type Journal struct {
	mu      sync.RWMutex
	meals   []types.Meal
	ids     map[int64]bool
	storage types.Storage
	log     *logrus.Entry
}

// NewJournal loads the journal from storage. Missing or unreadable data
// yields an empty journal.
func NewJournal(storage types.Storage, logger logrus.FieldLogger) *Journal {
	j := &Journal{
		storage: storage,
		log:     logging.Component(logger, "journal"),
		ids:     make(map[int64]bool),
	}
	var meals []types.Meal
	if loadJSON(storage, j.log, types.KeyMeals, &meals) {
		for _, m := range meals {
			if m.ID == 0 || j.ids[m.ID] {
				continue
			}
			j.ids[m.ID] = true
			j.meals = append(j.meals, m)
		}
	}
	return j
}

// Add logs meal. The id must be non-zero and unused, the type recognized,
// and at least one ingredient non-blank.
func (j *Journal) Add(meal types.Meal) (types.Meal, error) {
	if meal.ID == 0 {
		return types.Meal{}, types.NewValidationError(types.FieldID, "meal id is required")
	}
	if !meal.Type.Valid() {
		return types.Meal{}, types.NewValidationError(types.FieldType, types.ErrInvalidMealType.Error())
	}
	var ingredients []string
	for _, ing := range meal.Ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			ingredients = append(ingredients, ing)
		}
	}
	if len(ingredients) == 0 {
		return types.Meal{}, types.NewValidationError(types.FieldIngredients, "add at least one ingredient")
	}
	meal.Ingredients = ingredients
	if meal.Date.IsZero() {
		meal.Date = time.Now()
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.ids[meal.ID] {
		return types.Meal{}, types.ErrDuplicateMeal
	}
	j.ids[meal.ID] = true
	j.meals = append(j.meals, meal)
	saveJSON(j.storage, j.log, types.KeyMeals, j.meals)
	j.log.WithFields(logrus.Fields{"id": meal.ID, "type": meal.Type}).Debug("meal logged")
	return cloneMeal(meal), nil
}

// Meals returns the logged meals in log order.
func (j *Journal) Meals() []types.Meal {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]types.Meal, 0, len(j.meals))
	for _, m := range j.meals {
		out = append(out, cloneMeal(m))
	}
	return out
}

// Clear discards every logged meal.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.meals = nil
	j.ids = make(map[int64]bool)
	saveJSON(j.storage, j.log, types.KeyMeals, []types.Meal{})
}

// NextID returns an unused id derived from now in milliseconds, bumped past
// any id already logged.
func (j *Journal) NextID(now time.Time) int64 {
	j.mu.RLock()
	defer j.mu.RUnlock()

	id := now.UnixMilli()
	for j.ids[id] || id == 0 {
		id++
	}
	return id
}

// Log is Add with an id taken from NextID and the given ingredients.
func (j *Journal) Log(mealType types.MealType, ingredients []string, at time.Time) (types.Meal, error) {
	// Retry once if a concurrent Add took the id between NextID and Add.
	for attempt := 0; ; attempt++ {
		meal, err := j.Add(types.Meal{
			ID:          j.NextID(at),
			Type:        mealType,
			Ingredients: ingredients,
			Date:        at,
		})
		if errors.Is(err, types.ErrDuplicateMeal) && attempt == 0 {
			continue
		}
		return meal, err
	}
}

// QuickMeal builds a meal from a comma-separated ingredient list, trimming
// entries and dropping blanks.
func QuickMeal(id int64, mealType types.MealType, csv string, at time.Time) types.Meal {
	return types.Meal{ID: id, Type: mealType, Ingredients: types.SplitIngredients(csv), Date: at}
}

// CompletePlanned logs a planned meal as eaten at the given time, with the
// planned meal's type and ingredient names.
func CompletePlanned(j *Journal, planned types.PlannedMeal, at time.Time) (types.Meal, error) {
	return j.Log(planned.Type, planned.Ingredients(), at)
}

// MealsOn returns the meals eaten on the calendar day of t, in t's location.
func MealsOn(meals []types.Meal, t time.Time) []types.Meal {
	y, m, d := t.Date()
	var out []types.Meal
	for _, meal := range meals {
		my, mm, md := meal.Date.In(t.Location()).Date()
		if my == y && mm == m && md == d {
			out = append(out, meal)
		}
	}
	return out
}

func cloneMeal(m types.Meal) types.Meal {
	m.Ingredients = append([]string(nil), m.Ingredients...)
	return m
}
