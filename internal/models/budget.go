package models

// Budget is the singleton row (id=1) holding the monthly food budget.
// DailyBudget is always derived as floor(TotalBudget/30); it is never
// written independently of TotalBudget.
type Budget struct {
	Base
	TotalBudget int `gorm:"not null" json:"total_budget"`
	DailyBudget int `gorm:"not null" json:"daily_budget"`
}
