package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/clipcraft/fulfillment/common"
	"github.com/clipcraft/fulfillment/framework/connection"
	"github.com/clipcraft/fulfillment/logger"
	"github.com/clipcraft/fulfillment/migration/dal"
	"github.com/clipcraft/fulfillment/migration/domain"
	ordersDAL "github.com/clipcraft/fulfillment/orders/dal"
)

const (
	stagedPrefixFormat    = "temp/%s/"
	permanentPrefixFormat = "orders/%s/%s/"

	maxConcurrentMigrations = 8
)

type MigrationService struct {
	loggerProvider logger.Provider
	ordersDAL      ordersDAL.Orders
	assets         dal.ObjectStore
	reports        dal.MigrationReports
	publisher      dal.ReportPublisher
}

func NewMigrationService(loggerProvider logger.Provider, conn *connection.Connection) *MigrationService {
	ctx := context.Background()

	return &MigrationService{
		loggerProvider,
		ordersDAL.NewOrdersFirestoreWithClient(conn.Firestore),
		dal.NewAssetsGCS(conn.CloudStorage(ctx).Bucket(common.AssetsBucket)),
		dal.NewMigrationReportsFirestoreWithClient(conn.Firestore),
		dal.NewReportsPubsub(conn.Pubsub(ctx)),
	}
}

// MigrateOrderAssets relocates the user's staged uploads into the order's
// permanent prefix. Objects migrate concurrently, copy before delete, and a
// re-run converges: copies overwrite identical content and deleting an
// already-removed object is not an error. Partial failure produces a durable
// report, a message on the failures topic, and a non-nil error so the trigger
// redelivers.
func (s *MigrationService) MigrateOrderAssets(ctx context.Context, orderID string) error {
	l := s.loggerProvider(ctx)

	order, err := s.ordersDAL.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if order.UserID == "" || order.OrderNumber == "" {
		l.Warningf("migration: order %s is missing user id or order number, skipping", orderID)
		return nil
	}

	stagedPrefix := fmt.Sprintf(stagedPrefixFormat, order.UserID)
	permanentPrefix := fmt.Sprintf(permanentPrefixFormat, order.UserID, order.OrderNumber)

	objects, err := s.assets.ListObjects(ctx, stagedPrefix)
	if err != nil {
		return err
	}

	if len(objects) == 0 {
		l.Infof("migration: no staged objects for user %s, nothing to do", order.UserID)
		return nil
	}

	var (
		mu       sync.Mutex
		migrated []string
		failed   []domain.FailedObject
	)

	fail := func(name string, err error) {
		mu.Lock()
		defer mu.Unlock()

		failed = append(failed, domain.FailedObject{Name: name, Error: err.Error()})
	}

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentMigrations)

	for _, name := range objects {
		name := name

		g.Go(func() error {
			dst := permanentPrefix + strings.TrimPrefix(name, stagedPrefix)

			if err := s.assets.CopyObject(ctx, name, dst); err != nil {
				fail(name, err)
				return nil
			}

			if err := s.assets.DeleteObject(ctx, name); err != nil {
				fail(name, err)
				return nil
			}

			mu.Lock()
			migrated = append(migrated, dst)
			mu.Unlock()

			return nil
		})
	}

	// Per-object failures are collected, never returned from the group, so
	// every object gets its attempt before the run is judged.
	_ = g.Wait()

	if len(failed) == 0 {
		return nil
	}

	report := &domain.MigrationReport{
		ID:       uuid.NewString(),
		OrderID:  orderID,
		UserID:   order.UserID,
		Migrated: migrated,
		Failed:   failed,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		l.Errorf("migration: failed to persist report %s for order %s: %v", report.ID, orderID, err)
	}

	if err := s.publisher.Publish(ctx, report); err != nil {
		l.Errorf("migration: failed to publish report %s for order %s: %v", report.ID, orderID, err)
	}

	var merr *multierror.Error
	for _, f := range failed {
		merr = multierror.Append(merr, fmt.Errorf("%s: %s", f.Name, f.Error))
	}

	return fmt.Errorf("%w for order %s: %s", ErrMigrationIncomplete, orderID, merr)
}
