package diary

import (
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/dietlog/internal/logging"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// Goals holds the user's daily nutrition targets.
type Goals struct {
	mu      sync.RWMutex
	goals   types.NutritionGoals
	storage types.Storage
	log     *logrus.Entry
}

// NewGoals loads the stored targets, defaulting to DefaultNutritionGoals.
func NewGoals(storage types.Storage, logger logrus.FieldLogger) *Goals {
	g := &Goals{
		storage: storage,
		log:     logging.Component(logger, "goals"),
		goals:   types.DefaultNutritionGoals,
	}
	var stored types.NutritionGoals
	if loadJSON(storage, g.log, types.KeyNutritionGoals, &stored) && stored.Validate() == nil {
		g.goals = stored
	}
	return g
}

// Get returns the current targets.
func (g *Goals) Get() types.NutritionGoals {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.goals
}

// Set replaces the targets. Every target must be positive.
func (g *Goals) Set(goals types.NutritionGoals) error {
	if err := goals.Validate(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.goals = goals
	saveJSON(g.storage, g.log, types.KeyNutritionGoals, goals)
	return nil
}

// Progress returns the rounded percentage of each goal that current reaches,
// capped at 100.
func Progress(current, goals types.NutritionGoals) types.Progress {
	return types.Progress{
		Calories: percent(current.Calories, goals.Calories),
		Protein:  percent(current.Protein, goals.Protein),
		Carbs:    percent(current.Carbs, goals.Carbs),
		Fat:      percent(current.Fat, goals.Fat),
	}
}

func percent(current, goal int) int {
	if goal <= 0 || current <= 0 {
		return 0
	}
	p := int(math.Round(float64(current) / float64(goal) * 100))
	return min(p, 100)
}

// Estimator computes the nutrition intake of a set of meals.
type Estimator interface {
	Estimate(meals []types.Meal) types.NutritionGoals
}

// PlaceholderEstimator reports fixed reference values regardless of the
// meals. It stands in until ingredient-level nutrition data exists.
type PlaceholderEstimator struct{}

// PlaceholderIntake is the value PlaceholderEstimator always returns.
var PlaceholderIntake = types.NutritionGoals{Calories: 1500, Protein: 45, Carbs: 180, Fat: 40}

// Estimate returns PlaceholderIntake.
func (PlaceholderEstimator) Estimate([]types.Meal) types.NutritionGoals {
	return PlaceholderIntake
}
