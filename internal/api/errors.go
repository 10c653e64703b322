package api

import (
	"errors"
	"net/http"

	"fitguide/fitness-app/internal/ai"
	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/service"
	"fitguide/fitness-app/internal/workoutlog"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondError maps service errors to HTTP responses. Anything unknown is
// logged and reported as a 500 without details.
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": verr.Fields})
		return
	}

	switch {
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrScanNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, service.ErrUnsupportedImage),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, ai.ErrInvalidChat):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserAlreadyExists):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrScanForbidden):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrScanUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, workoutlog.ErrMigrationFailed):
		log.Warnf("%s %s: %s", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusBadGateway, "Could not migrate workout logs, try again later")
	case errors.Is(err, workoutlog.ErrLocalWrite):
		log.Errorf("%s %s: %s", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusInternalServerError, "Could not save workout log")
	case errors.Is(err, workoutlog.ErrLocalRead):
		log.Errorf("%s %s: %s", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusInternalServerError, "Could not read workout logs stored on this device")
	default:
		log.Errorf("%s %s: %s", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
