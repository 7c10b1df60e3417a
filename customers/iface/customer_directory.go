//go:generate mockery --output=./mocks --all
package iface

import (
	"context"
)

type CustomerDirectory interface {
	ResolveCustomer(ctx context.Context, userID string) (string, error)
}
