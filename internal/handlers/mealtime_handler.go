package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
	"budgetbites/internal/services"
)

// MealTimeHandler handles notification slot requests.
type MealTimeHandler struct {
	mealTimeService services.MealTimeServicer
}

// NewMealTimeHandler creates a new MealTimeHandler.
func NewMealTimeHandler(mealTimeService services.MealTimeServicer) *MealTimeHandler {
	return &MealTimeHandler{mealTimeService: mealTimeService}
}

// UpdateMealTimeRequest moves a slot to a new time.
type UpdateMealTimeRequest struct {
	Hour   int `json:"hour" binding:"min=0,max=23"`
	Minute int `json:"minute" binding:"min=0,max=59"`
}

// ToggleMealTimeRequest enables or disables a slot.
type ToggleMealTimeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// GetMealTimes lists all slots.
// @Summary     Get meal times
// @Tags        meal-times
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.MealTime "Notification slots"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /meal-times [get]
func (h *MealTimeHandler) GetMealTimes(c *gin.Context) {
	mealTimes, err := h.mealTimeService.GetMealTimes()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_times": mealTimes})
}

// UpdateMealTime moves a slot to a new wall-clock time.
// @Summary     Update a meal time
// @Tags        meal-times
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       meal_type path string true "Meal type (breakfast/lunch/dinner)"
// @Param       request body UpdateMealTimeRequest true "New time"
// @Success     200 {object} models.MealTime "Updated slot"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Meal time not found"
// @Router      /meal-times/{meal_type} [put]
func (h *MealTimeHandler) UpdateMealTime(c *gin.Context) {
	var req UpdateMealTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	mt, err := h.mealTimeService.UpdateMealTime(models.MealType(c.Param("meal_type")), req.Hour, req.Minute)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_time": mt})
}

// ToggleMealTime enables or disables reminder delivery for a slot.
// @Summary     Toggle a meal time
// @Tags        meal-times
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       meal_type path string true "Meal type (breakfast/lunch/dinner)"
// @Param       request body ToggleMealTimeRequest true "Enabled flag"
// @Success     200 {object} models.MealTime "Updated slot"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Meal time not found"
// @Router      /meal-times/{meal_type}/enabled [put]
func (h *MealTimeHandler) ToggleMealTime(c *gin.Context) {
	var req ToggleMealTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	mt, err := h.mealTimeService.SetMealTimeEnabled(models.MealType(c.Param("meal_type")), *req.Enabled)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_time": mt})
}
