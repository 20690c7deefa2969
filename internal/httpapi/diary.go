package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/dietlog/internal/diary"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

type mealRequest struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Ingredients []string  `json:"ingredients"`
	Date        time.Time `json:"date"`
}

type goalsResponse struct {
	Goals    types.NutritionGoals `json:"goals"`
	Intake   types.NutritionGoals `json:"intake"`
	Progress types.Progress       `json:"progress"`
}

func (s *Server) listMeals(c *gin.Context) {
	c.JSON(http.StatusOK, s.app.Journal.Meals())
}

// addMeal logs a meal. A missing type is suggested from the meal time and a
// missing id is generated.
func (s *Server) addMeal(c *gin.Context) {
	var req mealRequest
	if !bind(c, &req) {
		return
	}
	if req.Date.IsZero() {
		req.Date = s.now()
	}
	mealType := types.SuggestMealType(req.Date)
	if req.Type != "" {
		t, err := types.ParseMealType(req.Type)
		if err != nil {
			s.fail(c, types.NewValidationError(types.FieldType, err.Error()))
			return
		}
		mealType = t
	}

	var meal types.Meal
	var err error
	if req.ID == 0 {
		meal, err = s.app.Journal.Log(mealType, req.Ingredients, req.Date)
	} else {
		meal, err = s.app.Journal.Add(types.Meal{ID: req.ID, Type: mealType, Ingredients: req.Ingredients, Date: req.Date})
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (s *Server) clearMeals(c *gin.Context) {
	s.app.Journal.Clear()
	c.Status(http.StatusNoContent)
}

func (s *Server) shoppingList(c *gin.Context) {
	c.JSON(http.StatusOK, diary.ShoppingList(s.app.Journal.Meals()))
}

func (s *Server) getPlan(c *gin.Context) {
	plan, ok := s.app.Planner.Active()
	if !ok {
		notFound(c, "diet plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) putPlan(c *gin.Context) {
	var plan types.DietPlan
	if !bind(c, &plan) {
		return
	}
	created, err := s.app.Planner.Create(plan)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (s *Server) deletePlan(c *gin.Context) {
	if !s.app.Planner.Delete() {
		notFound(c, "diet plan")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) planToday(c *gin.Context) {
	meals, err := s.app.Planner.PlannedFor(s.now().Weekday())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(meals))
}

func (s *Server) getGoals(c *gin.Context) {
	goals := s.app.Goals.Get()
	intake := s.app.Estimator.Estimate(diary.MealsOn(s.app.Journal.Meals(), s.now()))
	c.JSON(http.StatusOK, goalsResponse{Goals: goals, Intake: intake, Progress: diary.Progress(intake, goals)})
}

func (s *Server) putGoals(c *gin.Context) {
	var goals types.NutritionGoals
	if !bind(c, &goals) {
		return
	}
	if err := s.app.Goals.Set(goals); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}
