//go:generate mockery --output=./mocks --all
package iface

import (
	"context"
)

type CheckoutOrchestrator interface {
	ProcessIntent(ctx context.Context, intentID string) error
}
