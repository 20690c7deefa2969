package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/dietlog/pkg/types"
)

func (s *Server) searchRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, s.app.Recipes.Search(c.Query("q")))
}

func (s *Server) submitRecipe(c *gin.Context) {
	var draft types.RecipeDraft
	if !bind(c, &draft) {
		return
	}
	r, err := s.app.Recipes.Submit(draft)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (s *Server) pendingRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(s.app.Recipes.ListPendingReview()))
}

func (s *Server) recipesByAuthor(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(s.app.Recipes.ListByAuthor(c.Param("author"))))
}

func (s *Server) getRecipe(c *gin.Context) {
	r, ok := s.app.Recipes.Get(c.Param("id"))
	if !ok {
		notFound(c, "recipe")
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) deleteRecipe(c *gin.Context) {
	if !s.app.Recipes.Remove(c.Param("id")) {
		notFound(c, "recipe")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) approveRecipe(c *gin.Context) {
	id := c.Param("id")
	if !s.app.Recipes.Approve(id) {
		notFound(c, "recipe")
		return
	}
	r, _ := s.app.Recipes.Get(id)
	c.JSON(http.StatusOK, r)
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
