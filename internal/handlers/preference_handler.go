package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/models"
	"budgetbites/internal/services"
)

// PreferenceHandler handles dietary preference requests.
type PreferenceHandler struct {
	preferenceService services.PreferenceServicer
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(preferenceService services.PreferenceServicer) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// UpdatePreferencesRequest represents a partial preference update. Empty
// lists are ignored, not stored.
type UpdatePreferencesRequest struct {
	TastePreference  *models.TastePreference `json:"taste_preference" binding:"omitempty,taste_preference"`
	Allergies        models.StringList       `json:"allergies"`
	AvoidIngredients models.StringList       `json:"avoid_ingredients"`
}

// GetPreferences returns the dietary preferences.
// @Summary     Get preferences
// @Tags        preferences
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Preference "Preferences"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /preferences [get]
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	pref, err := h.preferenceService.GetPreferences()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": pref})
}

// UpdatePreferences applies a partial update.
// @Summary     Update preferences
// @Description Partially update taste preference and exclusion lists
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdatePreferencesRequest true "Fields to update"
// @Success     200 {object} models.Preference "Updated preferences"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /preferences [put]
func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	pref, err := h.preferenceService.UpdatePreferences(services.PreferenceUpdate{
		TastePreference:  req.TastePreference,
		Allergies:        req.Allergies,
		AvoidIngredients: req.AvoidIngredients,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": pref})
}
