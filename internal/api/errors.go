package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/lettercat/internal/catalogue"
	imagepkg "github.com/youruser/lettercat/internal/image"
	"github.com/youruser/lettercat/internal/selection"
)

func statusFor(err error) int {
	var unavailable *catalogue.UnavailableError
	switch {
	case errors.Is(err, selection.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, imagepkg.ErrLoad):
		return http.StatusUnprocessableEntity
	case errors.Is(err, imagepkg.ErrSurfaceAllocation):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, imagepkg.ErrInvalidHeight),
		errors.Is(err, selection.ErrLetterMismatch),
		errors.Is(err, catalogue.ErrEmptyText),
		errors.Is(err, catalogue.ErrTextTooLong),
		errors.As(err, &unavailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", c.FullPath(), "err", err)
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// notAcceptable answers an Accept header that allows neither image/jpeg nor text/html.
func notAcceptable(c *gin.Context, err error) {
	c.JSON(http.StatusNotAcceptable, gin.H{
		"error":     err.Error(),
		"available": []string{"image/jpeg", "text/html"},
	})
}
