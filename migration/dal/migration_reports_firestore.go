package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/clipcraft/fulfillment/framework/connection"
	"github.com/clipcraft/fulfillment/migration/domain"
)

const (
	migrationReportsCollection = "migrationReports"
)

// MigrationReportsFirestore is used to interact with migration reports stored on Firestore.
type MigrationReportsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewMigrationReportsFirestore returns a new MigrationReportsFirestore instance with given project id.
func NewMigrationReportsFirestore(ctx context.Context, projectID string) (*MigrationReportsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewMigrationReportsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewMigrationReportsFirestoreWithClient returns a new MigrationReportsFirestore using given client.
func NewMigrationReportsFirestoreWithClient(fun connection.FirestoreFromContextFun) *MigrationReportsFirestore {
	return &MigrationReportsFirestore{
		firestoreClientFun: fun,
	}
}

// Create persists a new migration report under its report id.
func (d *MigrationReportsFirestore) Create(ctx context.Context, report *domain.MigrationReport) error {
	_, err := d.firestoreClientFun(ctx).
		Collection(migrationReportsCollection).
		Doc(report.ID).
		Create(ctx, report)

	return err
}
