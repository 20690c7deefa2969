package types

import (
	"strings"
	"time"
)

// DateLayout is the layout of DietPlan start and end dates.
const DateLayout = "2006-01-02"

// Portion pairs an ingredient with the amount planned for it.
type Portion struct {
	Ingredient string `json:"ingredient"`
	Amount     string `json:"amount,omitempty"`
}

// PlannedMeal is a template meal attached to a day of the week.
type PlannedMeal struct {
	Type      MealType     `json:"type"`
	DayOfWeek time.Weekday `json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday.
	Items     []Portion    `json:"items"`
}

// Ingredients returns the ingredient names of the planned meal in order.
func (m PlannedMeal) Ingredients() []string {
	out := make([]string, 0, len(m.Items))
	for _, it := range m.Items {
		out = append(out, it.Ingredient)
	}
	return out
}

// DietPlan is a named weekly template of planned meals.
type DietPlan struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	StartDate string        `json:"startDate,omitempty"`
	EndDate   string        `json:"endDate,omitempty"`
	Meals     []PlannedMeal `json:"meals"`
}

// Validate checks the plan name, the date range, and every planned meal.
// It returns a *ValidationError on the first failure.
func (p DietPlan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError(FieldName, "plan name is required")
	}
	var start, end time.Time
	var err error
	if p.StartDate != "" {
		if start, err = time.Parse(DateLayout, p.StartDate); err != nil {
			return NewValidationError(FieldDates, "start date must be YYYY-MM-DD")
		}
	}
	if p.EndDate != "" {
		if end, err = time.Parse(DateLayout, p.EndDate); err != nil {
			return NewValidationError(FieldDates, "end date must be YYYY-MM-DD")
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return NewValidationError(FieldDates, "end date precedes start date")
	}
	for _, m := range p.Meals {
		if !m.Type.Valid() {
			return NewValidationError(FieldMeals, ErrInvalidMealType.Error())
		}
		if m.DayOfWeek < time.Sunday || m.DayOfWeek > time.Saturday {
			return NewValidationError(FieldMeals, ErrInvalidWeekday.Error())
		}
	}
	return nil
}

// MealsOn returns the planned meals for day in plan order.
func (p DietPlan) MealsOn(day time.Weekday) []PlannedMeal {
	var out []PlannedMeal
	for _, m := range p.Meals {
		if m.DayOfWeek == day {
			out = append(out, m)
		}
	}
	return out
}
