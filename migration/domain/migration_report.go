package domain

import (
	"time"
)

// FailedObject records a single staged object that could not be relocated.
type FailedObject struct {
	Name  string `firestore:"name" json:"name"`
	Error string `firestore:"error" json:"error"`
}

// MigrationReport is the durable outcome of one asset migration run. Reports
// with failures are also published for operational retry tooling.
type MigrationReport struct {
	ID        string         `firestore:"-" json:"id"`
	OrderID   string         `firestore:"orderId" json:"orderId"`
	UserID    string         `firestore:"userId" json:"userId"`
	Migrated  []string       `firestore:"migrated" json:"migrated"`
	Failed    []FailedObject `firestore:"failed" json:"failed"`
	CreatedAt time.Time      `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}

// HasFailures reports whether any object failed to migrate.
func (r *MigrationReport) HasFailures() bool {
	return len(r.Failed) > 0
}
