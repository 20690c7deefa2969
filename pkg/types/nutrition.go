package types

// NutritionGoals holds daily intake targets. The same shape carries an
// intake estimate when compared against goals.
type NutritionGoals struct {
	Calories int `json:"calories"` // kcal
	Protein  int `json:"protein"`  // grams
	Carbs    int `json:"carbs"`    // grams
	Fat      int `json:"fat"`      // grams
}

// DefaultNutritionGoals are the targets used until the user sets their own.
var DefaultNutritionGoals = NutritionGoals{Calories: 2000, Protein: 75, Carbs: 250, Fat: 65}

// Validate requires every target to be positive.
func (g NutritionGoals) Validate() error {
	if g.Calories <= 0 || g.Protein <= 0 || g.Carbs <= 0 || g.Fat <= 0 {
		return NewValidationError(FieldGoals, "every goal must be positive")
	}
	return nil
}

// Progress is the percentage of each goal reached, capped at 100.
type Progress struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}
