package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

const (
	OrderStatusPaid = "paid"
)

// Order is the durable record of a completed payment. Orders are keyed by the
// gateway session id, so a redelivered completion event lands on the same
// document instead of creating a duplicate.
type Order struct {
	ID              string    `firestore:"-"`
	UserID          string    `firestore:"userId"`
	SessionID       string    `firestore:"sessionId"`
	OrderNumber     string    `firestore:"orderNumber"`
	PaymentIntentID string    `firestore:"paymentIntentId"`
	Amount          int64     `firestore:"amount"`
	Status          string    `firestore:"status"`
	CreatedAt       time.Time `firestore:"createdAt,serverTimestamp"`
}

// NewOrderNumber derives the human-facing order number from the session id.
// Deterministic, so a redelivered event computes the same number and the
// migration prefix stays stable across retries.
func NewOrderNumber(sessionID string) string {
	sum := sha256.Sum256([]byte(sessionID))

	return "ORD-" + strings.ToUpper(hex.EncodeToString(sum[:4]))
}
