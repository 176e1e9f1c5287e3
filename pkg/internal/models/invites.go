package models

import "time"

type InviteCode struct {
	BaseModel

	Code          string    `json:"code" gorm:"uniqueIndex"`
	ExpiresAt     time.Time `json:"expires_at"`
	UsesRemaining int       `json:"uses_remaining"`
	IsActive      bool      `json:"is_active"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account,omitempty"`
}

// Usable reports whether the code can still be redeemed at the given moment.
func (v InviteCode) Usable(now time.Time) bool {
	return v.IsActive && v.UsesRemaining > 0 && v.ExpiresAt.After(now)
}
