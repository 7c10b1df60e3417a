//go:generate mockery --output=./mocks --all
package dal

import (
	"context"

	"github.com/clipcraft/fulfillment/customers/domain"
)

type CustomerMappings interface {
	GetByUserID(ctx context.Context, userID string) (*domain.CustomerMapping, error)
	GetByExternalCustomerID(ctx context.Context, externalCustomerID string) (*domain.CustomerMapping, error)
	Create(ctx context.Context, mapping *domain.CustomerMapping) error
}
