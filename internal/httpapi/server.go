// Package httpapi exposes the stores over a JSON HTTP API built on gin.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/dietlog/internal/app"
	"github.com/mesh-intelligence/dietlog/internal/logging"
)

// Server routes HTTP requests to the stores of one App.
type Server struct {
	app *app.App
	log *logrus.Entry
	now func() time.Time
}

// New returns a Server over a.
func New(a *app.App) *Server {
	return &Server{app: a, log: logging.Component(a.Log, "http"), now: time.Now}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	route := gin.New()
	route.Use(gin.Recovery(), s.requestLogger())

	route.GET("/health", s.health)

	recipes := route.Group("/recipes")
	recipes.GET("", s.searchRecipes)
	recipes.POST("", s.submitRecipe)
	recipes.GET("/pending", s.pendingRecipes)
	recipes.GET("/author/:author", s.recipesByAuthor)
	recipes.GET("/:id", s.getRecipe)
	recipes.DELETE("/:id", s.deleteRecipe)
	recipes.POST("/:id/approve", s.approveRecipe)

	posts := route.Group("/posts")
	posts.GET("", s.listPosts)
	posts.POST("", s.publishPost)
	posts.GET("/latest", s.latestPost)
	posts.GET("/:id", s.getPost)
	posts.PATCH("/:id", s.updatePost)
	posts.DELETE("/:id", s.deletePost)

	route.GET("/meals", s.listMeals)
	route.POST("/meals", s.addMeal)
	route.DELETE("/meals", s.clearMeals)
	route.GET("/shopping-list", s.shoppingList)

	route.GET("/plan", s.getPlan)
	route.PUT("/plan", s.putPlan)
	route.DELETE("/plan", s.deletePlan)
	route.GET("/plan/today", s.planToday)

	route.GET("/goals", s.getGoals)
	route.PUT("/goals", s.putGoals)

	return route
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Router(), ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.WithField("addr", addr).Info("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("request")
	}
}

type healthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Success: true, Message: "ok"})
}
