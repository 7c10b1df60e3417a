//go:generate mockery --output=./mocks --all
package dal

import (
	"context"

	"github.com/clipcraft/fulfillment/checkout/domain"
)

// CheckoutIntents is used to interact with checkout intents stored on Firestore.
type CheckoutIntents interface {
	Get(ctx context.Context, intentID string) (*domain.CheckoutIntent, error)
	UpdateSession(ctx context.Context, intentID, sessionID, sessionURL string) error
	UpdateError(ctx context.Context, intentID, message string) error
}
