package api

import (
	"net/http"
	"strconv"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/resolver"
	"fitguide/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ListEquipment godoc
// @Summary Gym equipment reference list
// @Tags Exercises
// @Produce json
// @Success 200 {array} domain.Equipment
// @Router /equipment [get]
func (h *ExerciseHandler) ListEquipment(c *gin.Context) {
	c.JSON(http.StatusOK, h.exerciseService.Equipment())
}

// ListExercises godoc
// @Summary Exercises recommended for the caller's profile
// @Description filter is a category (All, Strength, Cardio, Core). muscle
// @Description matches a muscle tag, an exact difficulty or the word "home".
// @Tags Exercises
// @Produce json
// @Param filter query string false "Category filter"
// @Param muscle query string false "Muscle / difficulty / home search"
// @Param page query int false "1-based page"
// @Param pageSize query int false "Page size"
// @Success 200 {object} resolver.Page
// @Failure 404 {object} gin.H "No profile yet"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	q := resolver.Query{
		Category: domain.Category(c.Query("filter")),
		Muscle:   c.Query("muscle"),
	}
	var err error
	if q.Page, err = intQuery(c, "page"); err != nil {
		abortWithError(c, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	if q.PageSize, err = intQuery(c, "pageSize"); err != nil {
		abortWithError(c, http.StatusBadRequest, "pageSize must be a positive integer")
		return
	}

	page, err := h.exerciseService.ListExercises(c.Request.Context(), userID, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetExercise godoc
// @Summary Get a catalog exercise by id
// @Tags Exercises
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} domain.Exercise
// @Failure 404 {object} gin.H "Not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	ex, err := h.exerciseService.GetExercise(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

// intQuery reads an optional positive integer query parameter; absent is 0.
func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
