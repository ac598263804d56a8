package models

import "time"

// Base contains common columns for all tables
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SingletonID is the fixed row id used by singleton tables
// (budget, preferences, premium status, auth state, backup settings).
const SingletonID uint = 1
