package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/service"
	"fitguide/fitness-app/internal/workoutlog"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const eventsKeepAlive = 30 * time.Second

type WorkoutLogHandler struct {
	workoutService service.WorkoutService
	devices        DeviceIdentity
}

func NewWorkoutLogHandler(workoutService service.WorkoutService, devices DeviceIdentity) *WorkoutLogHandler {
	return &WorkoutLogHandler{
		workoutService: workoutService,
		devices:        devices,
	}
}

type RecordLogRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	// Duration is in seconds.
	Duration int `json:"duration"`
}

// RecordLog godoc
// @Summary Record a completed exercise
// @Description Returns as soon as the entry is stored locally, with its
// @Description temporary id. The remote copy is written in the background.
// @Tags Logs
// @Accept json
// @Produce json
// @Param log body RecordLogRequest true "Completed exercise"
// @Success 201 {object} domain.WorkoutLog
// @Failure 404 {object} gin.H "Unknown exercise"
// @Failure 500 {object} gin.H "Local storage failed"
// @Router /logs [post]
func (h *WorkoutLogHandler) RecordLog(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req RecordLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.workoutService.Record(c.Request.Context(), userID, req.ExerciseID, req.Duration)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListLogs godoc
// @Summary Merged workout history
// @Tags Logs
// @Produce json
// @Param period query string false "today, week, month or all"
// @Success 200 {object} workoutlog.LoadResult
// @Router /logs [get]
func (h *WorkoutLogHandler) ListLogs(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	res, err := h.workoutService.History(c.Request.Context(), userID, domain.ParsePeriod(c.Query("period")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *WorkoutLogHandler) Stats(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	res, err := h.workoutService.Stats(c.Request.Context(), userID, domain.ParsePeriod(c.Query("period")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ClearLogs godoc
// @Summary Delete every workout log of the caller
// @Description Local logs are cleared even when the remote delete fails; the
// @Description response then reports remoteCleared=false.
// @Tags Logs
// @Produce json
// @Success 200 {object} gin.H
// @Router /logs [delete]
func (h *WorkoutLogHandler) ClearLogs(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	err := h.workoutService.ClearAll(c.Request.Context(), userID)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"cleared": true, "remoteCleared": true})
		return
	}

	for _, e := range multierr.Errors(err) {
		if errors.Is(e, workoutlog.ErrLocalWrite) {
			respondError(c, e)
			return
		}
	}
	log.Warnf("clear logs %s: %s", userID, err)
	c.JSON(http.StatusOK, gin.H{"cleared": true, "remoteCleared": false})
}

// MigrateLogs retries moving a device's logs to the authenticated account.
// The device comes from X-Device-ID or the stored device identity.
func (h *WorkoutLogHandler) MigrateLogs(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	deviceID := c.GetHeader(HeaderDeviceID)
	if deviceID == "" {
		var err error
		deviceID, err = h.devices.StoredDeviceID(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
	}
	if deviceID != "" && !domain.IsDeviceID(deviceID) {
		abortWithError(c, http.StatusBadRequest, "X-Device-ID must start with "+domain.DeviceIDPrefix)
		return
	}

	moved, err := h.workoutService.Migrate(c.Request.Context(), deviceID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"migrated": moved})
}

// Events streams change notifications for the caller's logs as server-sent
// events until the client disconnects.
func (h *WorkoutLogHandler) Events(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	changes, cancel := h.workoutService.Subscribe(userID)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	keepAlive := time.NewTicker(eventsKeepAlive)
	defer keepAlive.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case change, open := <-changes:
			if !open {
				return
			}
			c.SSEvent(string(change.Type), change)
		case <-keepAlive.C:
			c.SSEvent("ping", gin.H{"at": time.Now().UTC()})
		}
		c.Writer.Flush()
	}
}
