package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetbites/internal/errors"
	"budgetbites/internal/services"
)

// SettingHandler handles app-level settings operations.
type SettingHandler struct {
	settingService services.SettingServicer
	premiumService services.PremiumServicer
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(settingService services.SettingServicer, premiumService services.PremiumServicer) *SettingHandler {
	return &SettingHandler{settingService: settingService, premiumService: premiumService}
}

// UpdatePremiumRequest mirrors the billing collaborator's state.
type UpdatePremiumRequest struct {
	IsPremium      bool    `json:"is_premium"`
	SubscriptionID *string `json:"subscription_id"`
	ExpiresAt      *string `json:"expires_at"`
}

// DeleteAllDataRequest requires explicit confirmation for the wipe.
type DeleteAllDataRequest struct {
	Confirm bool `json:"confirm" binding:"required"`
}

// DeleteAllData wipes planning data and restores seeded defaults.
// @Summary     Delete all data
// @Description Wipe preferences, budget, meal plans and meal logs, then restore defaults
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DeleteAllDataRequest true "Confirmation"
// @Success     204 "Data deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings/delete-all [post]
func (h *SettingHandler) DeleteAllData(c *gin.Context) {
	var req DeleteAllDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Confirmation is required"))
		return
	}

	if err := h.settingService.DeleteAllData(); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPremiumStatus returns the mirrored subscription state.
// @Summary     Get premium status
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.PremiumStatus "Premium status"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings/premium [get]
func (h *SettingHandler) GetPremiumStatus(c *gin.Context) {
	status, err := h.premiumService.GetPremiumStatus()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"premium": status})
}

// UpdatePremiumStatus overwrites the mirrored subscription state.
// @Summary     Update premium status
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdatePremiumRequest true "Subscription state"
// @Success     200 {object} models.PremiumStatus "Updated status"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings/premium [put]
func (h *SettingHandler) UpdatePremiumStatus(c *gin.Context) {
	var req UpdatePremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	status, err := h.premiumService.UpdatePremiumStatus(req.IsPremium, req.SubscriptionID, req.ExpiresAt)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"premium": status})
}
