package diary

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/dietlog/internal/logging"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// Planner holds at most one active diet plan.
type Planner struct {
	mu      sync.RWMutex
	active  *types.DietPlan
	storage types.Storage
	log     *logrus.Entry
	now     func() time.Time
}

// NewPlanner loads the active plan from storage, if any.
func NewPlanner(storage types.Storage, logger logrus.FieldLogger) *Planner {
	p := &Planner{
		storage: storage,
		log:     logging.Component(logger, "planner"),
		now:     time.Now,
	}
	var plan types.DietPlan
	if loadJSON(storage, p.log, types.KeyDietPlan, &plan) && plan.ID != 0 {
		p.active = &plan
	}
	return p
}

// Create validates plan and makes it the active plan, replacing any
// previous one. A zero ID is assigned from the clock.
func (p *Planner) Create(plan types.DietPlan) (types.DietPlan, error) {
	if err := plan.Validate(); err != nil {
		return types.DietPlan{}, err
	}
	if plan.ID == 0 {
		plan.ID = p.now().UnixMilli()
	}
	plan = clonePlan(plan)

	p.mu.Lock()
	defer p.mu.Unlock()

	replaced := p.active != nil
	p.active = &plan
	saveJSON(p.storage, p.log, types.KeyDietPlan, plan)
	p.log.WithFields(logrus.Fields{"id": plan.ID, "replaced": replaced}).Info("diet plan activated")
	return clonePlan(plan), nil
}

// Active returns the active plan.
func (p *Planner) Active() (types.DietPlan, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.active == nil {
		return types.DietPlan{}, false
	}
	return clonePlan(*p.active), true
}

// Delete clears the active plan and reports whether there was one.
func (p *Planner) Delete() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active == nil {
		return false
	}
	p.active = nil
	if err := p.storage.Delete(types.KeyDietPlan); err != nil {
		p.log.WithError(err).Error("deleting diet plan failed")
	}
	return true
}

// PlannedFor returns the active plan's meals for day, or ErrNoActivePlan.
func (p *Planner) PlannedFor(day time.Weekday) ([]types.PlannedMeal, error) {
	plan, ok := p.Active()
	if !ok {
		return nil, types.ErrNoActivePlan
	}
	return plan.MealsOn(day), nil
}

func clonePlan(plan types.DietPlan) types.DietPlan {
	meals := make([]types.PlannedMeal, len(plan.Meals))
	for i, m := range plan.Meals {
		m.Items = append([]types.Portion(nil), m.Items...)
		meals[i] = m
	}
	plan.Meals = meals
	return plan
}
