package models

// AuthState is the singleton row (id=1) mirroring the external identity
// provider's session. Fields are set wholesale by the auth collaborator;
// nil pointers in an update mean "keep the stored value".
type AuthState struct {
	Base
	IsLoggedIn   bool    `gorm:"not null;default:false" json:"is_logged_in"`
	UserID       *string `json:"user_id,omitempty"`
	Email        *string `json:"email,omitempty"`
	AccessToken  *string `json:"-"`
	RefreshToken *string `json:"-"`
}

// TableName overrides the default pluralization.
func (AuthState) TableName() string { return "auth" }
