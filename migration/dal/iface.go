//go:generate mockery --output=./mocks --all
package dal

import (
	"context"

	"github.com/clipcraft/fulfillment/migration/domain"
)

// ObjectStore is used to interact with the assets bucket.
type ObjectStore interface {
	ListObjects(ctx context.Context, prefix string) ([]string, error)
	CopyObject(ctx context.Context, src, dst string) error
	DeleteObject(ctx context.Context, name string) error
}

// MigrationReports is used to interact with migration reports stored on Firestore.
type MigrationReports interface {
	Create(ctx context.Context, report *domain.MigrationReport) error
}

// ReportPublisher emits migration reports for operational retry tooling.
type ReportPublisher interface {
	Publish(ctx context.Context, report *domain.MigrationReport) error
}
