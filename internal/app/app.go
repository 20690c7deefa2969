// Package app wires one storage backend to every store the CLI and the HTTP
// API operate on.
package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/dietlog/internal/blog"
	"github.com/mesh-intelligence/dietlog/internal/diary"
	"github.com/mesh-intelligence/dietlog/internal/editorial"
	"github.com/mesh-intelligence/dietlog/internal/recipes"
	"github.com/mesh-intelligence/dietlog/internal/storage"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// App holds the stores sharing one storage backend.
type App struct {
	Storage   types.Storage
	Recipes   *recipes.Store
	Posts     *blog.Store
	Publisher *editorial.Publisher
	Journal   *diary.Journal
	Planner   *diary.Planner
	Goals     *diary.Goals
	Estimator diary.Estimator
	Log       logrus.FieldLogger
}

// Open opens the backend named by cfg and loads every store from it.
func Open(cfg types.Config, logger logrus.FieldLogger) (*App, error) {
	s, err := storage.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	logger.WithFields(logrus.Fields{"backend": cfg.Backend, "data_dir": cfg.DataDir}).Debug("storage opened")
	return New(s, logger), nil
}

// New builds an App over an already open backend.
func New(s types.Storage, logger logrus.FieldLogger) *App {
	r := recipes.NewStore(s, logger)
	p := blog.NewStore(s, logger)
	return &App{
		Storage:   s,
		Recipes:   r,
		Posts:     p,
		Publisher: editorial.NewPublisher(r, p, logger),
		Journal:   diary.NewJournal(s, logger),
		Planner:   diary.NewPlanner(s, logger),
		Goals:     diary.NewGoals(s, logger),
		Estimator: diary.PlaceholderEstimator{},
		Log:       logger,
	}
}

// Close closes the storage backend.
func (a *App) Close() error {
	return a.Storage.Close()
}
