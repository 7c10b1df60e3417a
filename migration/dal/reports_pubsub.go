package dal

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/pubsub"

	"github.com/clipcraft/fulfillment/migration/domain"
)

const (
	migrationFailuresTopic = "migration-failures"
)

// ReportsPubsub publishes migration reports on the failures topic so the
// operational retry tooling can pick them up.
type ReportsPubsub struct {
	client *pubsub.Client
}

// NewReportsPubsub returns a new ReportsPubsub using given client.
func NewReportsPubsub(client *pubsub.Client) *ReportsPubsub {
	return &ReportsPubsub{
		client: client,
	}
}

// Publish emits the report on the migration-failures topic.
func (d *ReportsPubsub) Publish(ctx context.Context, report *domain.MigrationReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	res := d.client.Topic(migrationFailuresTopic).Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"orderId": report.OrderID,
			"userId":  report.UserID,
		},
	})

	if _, err := res.Get(ctx); err != nil {
		return err
	}

	return nil
}
