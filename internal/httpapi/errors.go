package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/dietlog/internal/editorial"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// fail writes err with the status matching its kind.
func (s *Server) fail(c *gin.Context, err error) {
	if ve, ok := types.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Message, Field: ve.Field})
		return
	}
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, editorial.ErrPostNotFound), errors.Is(err, types.ErrNoActivePlan):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrDuplicateMeal):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		s.log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	c.JSON(status, errorResponse{Error: err.Error()})
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, errorResponse{Error: what + " not found"})
}

// bind decodes the JSON body into v, answering 400 on failure.
func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}
	return true
}
