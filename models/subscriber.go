package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscriber mirrors the latest known Stripe state for a user. Refreshed on
// every status check.
type Subscriber struct {
	gorm.Model
	UserID uint   `gorm:"index"`
	Email  string `gorm:"uniqueIndex;not null"`

	StripeCustomerID string
	Subscribed       bool
	SubscriptionTier string `gorm:"size:32"` // "basic" | "premium" | "premium_annual"
	SubscriptionEnd  *time.Time
	PriceID          string
	SubscriptionID   string
}
