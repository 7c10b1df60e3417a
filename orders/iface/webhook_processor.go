//go:generate mockery --output=./mocks --all
package iface

import (
	"context"
)

type WebhookProcessor interface {
	HandleEvent(ctx context.Context, body []byte, signature string) error
}
