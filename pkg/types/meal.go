package types

import (
	"strings"
	"time"
)

// MealType names the slot of the day a meal belongs to.
type MealType string

// Meal types.
const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists the recognized meal types in day order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealSnack, MealDinner}

// Valid reports whether t is one of the recognized meal types.
func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// ParseMealType converts s, case-insensitively, to a MealType.
// Returns ErrInvalidMealType if s is not recognized.
func ParseMealType(s string) (MealType, error) {
	t := MealType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidMealType
	}
	return t, nil
}

// SuggestMealType returns the meal type that usually comes next at the
// hour of t: breakfast before 11:00, lunch before 15:00, snack before 19:00,
// dinner afterwards.
func SuggestMealType(t time.Time) MealType {
	switch h := t.Hour(); {
	case h < 11:
		return MealBreakfast
	case h < 15:
		return MealLunch
	case h < 19:
		return MealSnack
	default:
		return MealDinner
	}
}

// Meal is a logged eating event. A meal is never mutated after it is logged.
type Meal struct {
	ID          int64     `json:"id"`          // Caller-assigned, unique within a journal.
	Type        MealType  `json:"type"`        // One of the MealType constants.
	Ingredients []string  `json:"ingredients"` // Free text, no quantity parsing.
	Date        time.Time `json:"date"`        // When the meal was eaten.
}

// SplitIngredients splits a comma-separated ingredient list, trimming each
// entry and dropping blanks.
func SplitIngredients(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
