package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/dietlog/internal/editorial"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

func (s *Server) listPosts(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(s.app.Posts.ListAll()))
}

func (s *Server) latestPost(c *gin.Context) {
	p, ok := s.app.Posts.Latest()
	if !ok {
		notFound(c, "post")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) getPost(c *gin.Context) {
	p, ok := s.app.Posts.Get(c.Param("id"))
	if !ok {
		notFound(c, "post")
		return
	}
	c.JSON(http.StatusOK, p)
}

// publishPost creates a post through the editorial flow, so the body may
// embed a recipe and sponsored products.
func (s *Server) publishPost(c *gin.Context) {
	var req editorial.Request
	if !bind(c, &req) {
		return
	}
	req.PostID = ""
	p, err := s.app.Publisher.Publish(req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) updatePost(c *gin.Context) {
	var patch types.BlogPatch
	if !bind(c, &patch) {
		return
	}
	p, ok := s.app.Posts.Update(c.Param("id"), patch)
	if !ok {
		notFound(c, "post")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deletePost(c *gin.Context) {
	if !s.app.Posts.Remove(c.Param("id")) {
		notFound(c, "post")
		return
	}
	c.Status(http.StatusNoContent)
}
