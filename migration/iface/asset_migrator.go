//go:generate mockery --output=./mocks --all
package iface

import (
	"context"
)

type AssetMigrator interface {
	MigrateOrderAssets(ctx context.Context, orderID string) error
}
