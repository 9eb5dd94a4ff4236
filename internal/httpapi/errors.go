package httpapi

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/alexanderramin/crewclock/internal/photostore"
	"github.com/alexanderramin/crewclock/internal/repository"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidPIN), errors.Is(err, domain.ErrUnknownWorker):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrInvalidWeekStart),
		errors.Is(err, domain.ErrInvalidTimestamp):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, photostore.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and a JSON body. Internal errors are
// logged and reported without detail.
func (s *server) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	c.JSON(status, gin.H{"error": http.StatusText(status), "message": err.Error()})
}
