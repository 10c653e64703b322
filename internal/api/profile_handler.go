package api

import (
	"fmt"
	"net/http"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest is the onboarding / settings form. Range checks happen in
// the domain so every offending field is reported at once.
type ProfileRequest struct {
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	Email              string             `json:"email"`
	Age                int                `json:"age"`
	Gender             domain.Gender      `json:"gender"`
	Goal               domain.FitnessGoal `json:"goal"`
	Height             float64            `json:"height"`
	Weight             float64            `json:"weight"`
	Location           domain.Location    `json:"location"`
	AvailableEquipment []string           `json:"availableEquipment"`
}

func (r ProfileRequest) toDomain() *domain.UserProfile {
	return &domain.UserProfile{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Email:              r.Email,
		Age:                r.Age,
		Gender:             r.Gender,
		Goal:               r.Goal,
		HeightCm:           r.Height,
		WeightKg:           r.Weight,
		Location:           r.Location,
		AvailableEquipment: r.AvailableEquipment,
	}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.UserProfile
// @Failure 404 {object} gin.H "No profile yet"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary Create or replace the caller's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body ProfileRequest true "Profile"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} gin.H "Validation failed, with a field map"
// @Router /profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	profile, err := h.profileService.SaveProfile(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetBMI(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	info, err := h.profileService.BMI(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *ProfileHandler) GetNutrition(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	targets, err := h.profileService.Nutrition(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}
