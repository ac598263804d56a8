package models

import "time"

// AIUsage records token consumption for one generative-AI call.
type AIUsage struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ActionType       string    `gorm:"not null" json:"action_type"`
	PromptTokens     int       `json:"prompt_tokens"`
	CompletionTokens int       `json:"completion_tokens"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName overrides the default pluralization.
func (AIUsage) TableName() string { return "ai_usage" }

// AIHistory keeps the request/response payloads of generative-AI calls for
// debugging, including failed calls with their error message.
type AIHistory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ActionType   string    `gorm:"not null" json:"action_type"`
	InputData    string    `json:"input_data"`
	OutputData   string    `json:"output_data"`
	Status       string    `gorm:"default:success" json:"status"`
	ErrorMessage string    `json:"error_message"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the default pluralization.
func (AIHistory) TableName() string { return "ai_history" }
