package models

// PremiumStatus is the singleton row (id=1) mirroring the billing
// collaborator's view of the subscription. It is mutated wholesale.
type PremiumStatus struct {
	Base
	IsPremium      bool    `gorm:"not null;default:false" json:"is_premium"`
	SubscriptionID *string `json:"subscription_id,omitempty"`
	ExpiresAt      *string `json:"expires_at,omitempty"`
}

// TableName overrides the default pluralization.
func (PremiumStatus) TableName() string { return "premium_status" }
