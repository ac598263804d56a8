package models

// Expense is an ad-hoc spending record, independent of meal plans.
// Rows are append-only aside from explicit deletes.
type Expense struct {
	Base
	Date        string `gorm:"not null" json:"date"`
	Amount      int    `gorm:"not null" json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
