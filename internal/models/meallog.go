package models

// MealLog records what was actually cooked and spent for one meal,
// naturally keyed by (date, meal_type) with upsert semantics like MealPlan.
type MealLog struct {
	Base
	Date       string   `gorm:"not null;uniqueIndex:idx_meal_logs_date_type" json:"date"`
	MealType   MealType `gorm:"not null;uniqueIndex:idx_meal_logs_date_type" json:"meal_type"`
	MenuName   string   `gorm:"not null" json:"menu_name"`
	ActualCost int      `json:"actual_cost"`
	Notes      string   `json:"notes"`
	ExecutedAt string   `json:"executed_at"`
}
