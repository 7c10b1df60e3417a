//go:generate mockery --output=./mocks --all
package dal

import (
	"context"

	"github.com/clipcraft/fulfillment/orders/domain"
)

// Orders is used to interact with orders stored on Firestore.
type Orders interface {
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
}
