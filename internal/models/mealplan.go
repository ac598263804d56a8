package models

// MealType represents one of the three daily meals
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// MealTypes lists all meal types in daily order.
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}

// Valid reports whether m is one of the three known meal types.
func (m MealType) Valid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

// MealPlan is one generated meal, naturally keyed by (date, meal_type).
// Dates are YYYY-MM-DD strings so month-level operations can use prefix
// matching. Saving an existing key replaces its content (upsert).
type MealPlan struct {
	Base
	Date          string         `gorm:"not null;uniqueIndex:idx_meal_plans_date_type" json:"date"`
	MealType      MealType       `gorm:"not null;uniqueIndex:idx_meal_plans_date_type" json:"meal_type"`
	MenuName      string         `gorm:"not null" json:"menu_name"`
	Ingredients   IngredientList `gorm:"type:text;not null" json:"ingredients"`
	Recipe        StringList     `gorm:"type:text;not null" json:"recipe"`
	Nutrition     Nutrition      `gorm:"type:text;not null" json:"nutrition"`
	CookingTime   int            `json:"cooking_time"`
	EstimatedCost int            `json:"estimated_cost"`
}
