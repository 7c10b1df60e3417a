//go:generate mockery --output=./mocks --all
package iface

import (
	"context"
)

type AccessGateway interface {
	IssueDownloadURL(ctx context.Context, uid, filePath string) (string, error)
}
