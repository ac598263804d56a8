// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	monthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("meal_type", validateMealType)
		_ = v.RegisterValidation("taste_preference", validateTastePreference)
		_ = v.RegisterValidation("plan_month", validatePlanMonth)
		_ = v.RegisterValidation("plan_date", validatePlanDate)
	}
}

func validateMealType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "breakfast", "lunch", "dinner":
		return true
	}
	return false
}

func validateTastePreference(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "light", "balanced", "rich":
		return true
	}
	return false
}

// validatePlanMonth accepts YYYY-MM months. The month-prefix queries over
// plan and log dates depend on exactly this shape.
func validatePlanMonth(fl validator.FieldLevel) bool {
	return monthRegex.MatchString(fl.Field().String())
}

// validatePlanDate accepts YYYY-MM-DD dates.
func validatePlanDate(fl validator.FieldLevel) bool {
	return dateRegex.MatchString(fl.Field().String())
}
