//go:generate mockery --output=./mocks --all
package dal

import (
	"context"
	"time"
)

// URLSigner issues time-boxed read capabilities for bucket objects.
type URLSigner interface {
	SignURL(ctx context.Context, objectPath string, expires time.Time) (string, error)
}
