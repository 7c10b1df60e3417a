package domain

import (
	"time"
)

const (
	IntentStatusCreated = "created"
	IntentStatusError   = "error"
)

// CheckoutIntent is a single checkout attempt written by the storefront. The
// orchestrator reacts to its creation and mutates it exactly once, writing
// either the opened session or a terminal error state back onto it.
type CheckoutIntent struct {
	ID                string   `firestore:"-"`
	PriceID           string   `firestore:"priceId"`
	SuccessURL        string   `firestore:"successUrl"`
	CancelURL         string   `firestore:"cancelUrl"`
	UserID            string   `firestore:"userId"`
	Mode              string   `firestore:"mode"`
	UpsellOptions     []string `firestore:"upsellOptions"`
	AdditionalFormats int64    `firestore:"additionalFormats"`

	SessionID  string    `firestore:"sessionId"`
	SessionURL string    `firestore:"sessionUrl"`
	Status     string    `firestore:"status"`
	Error      string    `firestore:"error"`
	UpdatedAt  time.Time `firestore:"updatedAt"`
}
