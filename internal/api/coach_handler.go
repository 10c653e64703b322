package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fitguide/fitness-app/internal/ai"
	"fitguide/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

type CoachHandler struct {
	coachService service.CoachService
	scanService  service.ScanService
}

func NewCoachHandler(coachService service.CoachService, scanService service.ScanService) *CoachHandler {
	return &CoachHandler{
		coachService: coachService,
		scanService:  scanService,
	}
}

type ChatRequest struct {
	History []ai.Turn `json:"history" binding:"required"`
}

type UploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type AnalyzeRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

func (h *CoachHandler) profileContent(c *gin.Context, generate func(ctx context.Context, userID string) (ai.Result, error)) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	res, err := generate(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Insight godoc
// @Summary Short motivational insight for the caller's profile
// @Tags Coach
// @Produce json
// @Success 200 {object} ai.Result "fallback is true when static content was served"
// @Failure 404 {object} gin.H "No profile yet"
// @Router /coach/insight [post]
func (h *CoachHandler) Insight(c *gin.Context) {
	h.profileContent(c, h.coachService.Insight)
}

func (h *CoachHandler) Routine(c *gin.Context) {
	h.profileContent(c, h.coachService.Routine)
}

func (h *CoachHandler) MealPlan(c *gin.Context) {
	h.profileContent(c, h.coachService.MealPlan)
}

// Chat godoc
// @Summary Ask the coach
// @Tags Coach
// @Accept json
// @Produce json
// @Param chat body ChatRequest true "Conversation so far, ending with the user's message"
// @Success 200 {object} ai.Result
// @Failure 400 {object} gin.H "History does not end with a user message"
// @Router /coach/chat [post]
func (h *CoachHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	res, err := h.coachService.Chat(c.Request.Context(), req.History)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UploadURL godoc
// @Summary Presigned URL for uploading an equipment photo
// @Tags Scan
// @Accept json
// @Produce json
// @Param request body UploadURLRequest true "Photo content type"
// @Success 200 {object} service.UploadTarget
// @Failure 503 {object} gin.H "Object storage not configured"
// @Router /scan/upload-url [post]
func (h *CoachHandler) UploadURL(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	target, err := h.scanService.CreateUpload(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}

// Analyze godoc
// @Summary Explain the gym machine in a photo
// @Description Either JSON {"objectKey": ...} naming an uploaded photo, or the
// @Description raw image as the request body.
// @Tags Scan
// @Produce json
// @Success 200 {object} ai.Result
// @Failure 400 {object} gin.H "Not a JPEG, PNG or WebP image"
// @Router /scan/analyze [post]
func (h *CoachHandler) Analyze(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var (
		res ai.Result
		err error
	)
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
			return
		}
		res, err = h.scanService.AnalyzeObject(c.Request.Context(), userID, req.ObjectKey)
	} else {
		data, readErr := io.ReadAll(io.LimitReader(c.Request.Body, service.MaxScanImageSize+1))
		if readErr != nil {
			abortWithError(c, http.StatusBadRequest, "Could not read image body")
			return
		}
		res, err = h.scanService.AnalyzeImage(c.Request.Context(), data)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
