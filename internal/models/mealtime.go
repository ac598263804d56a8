package models

// MealTime holds the notification time for one meal type. There is exactly
// one row per meal type, seeded on first run with 07:00 / 12:00 / 18:00.
type MealTime struct {
	Base
	MealType MealType `gorm:"not null;unique" json:"meal_type"`
	Hour     int      `gorm:"not null" json:"hour"`
	Minute   int      `gorm:"not null" json:"minute"`
	Enabled  bool     `gorm:"not null;default:true" json:"enabled"`
}
