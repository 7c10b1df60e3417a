package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clipcraft/fulfillment/logger"
	"github.com/clipcraft/fulfillment/migration/dal/mocks"
	"github.com/clipcraft/fulfillment/migration/domain"
	ordersDALMocks "github.com/clipcraft/fulfillment/orders/dal/mocks"
	ordersDomain "github.com/clipcraft/fulfillment/orders/domain"
)

// fakeObjectStore is an in-memory bucket. Copy and delete semantics mirror
// the real store: copies overwrite, deleting a missing object succeeds.
type fakeObjectStore struct {
	mu         sync.Mutex
	objects    map[string]string
	failCopies map[string]bool
	listCalls  int
}

func newFakeObjectStore(objects map[string]string) *fakeObjectStore {
	return &fakeObjectStore{
		objects:    objects,
		failCopies: map[string]bool{},
	}
}

func (f *fakeObjectStore) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCalls++

	var names []string

	for name := range f.objects {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names, nil
}

func (f *fakeObjectStore) CopyObject(ctx context.Context, src, dst string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCopies[src] {
		return errors.New("backend unavailable")
	}

	content, ok := f.objects[src]
	if !ok {
		return errors.New("source object does not exist")
	}

	f.objects[dst] = content

	return nil
}

func (f *fakeObjectStore) DeleteObject(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.objects, name)

	return nil
}

func (f *fakeObjectStore) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var names []string
	for name := range f.objects {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func TestMigrationService_MigrateOrderAssets(t *testing.T) {
	ctx := context.Background()

	order := &ordersDomain.Order{
		ID:          "cs_1",
		UserID:      "user-1",
		SessionID:   "cs_1",
		OrderNumber: "ORD-1A2B3C4D",
	}

	newService := func(assets *fakeObjectStore, ordersDAL *ordersDALMocks.Orders, reports *mocks.MigrationReports, publisher *mocks.ReportPublisher) *MigrationService {
		return &MigrationService{
			loggerProvider: logger.FromContext,
			ordersDAL:      ordersDAL,
			assets:         assets,
			reports:        reports,
			publisher:      publisher,
		}
	}

	t.Run("migrates every staged object to the permanent prefix", func(t *testing.T) {
		assets := newFakeObjectStore(map[string]string{
			"temp/user-1/a.mp4":     "a",
			"temp/user-1/b.mp4":     "b",
			"temp/user-1/sub/c.srt": "c",
			"temp/user-2/other.mp4": "other",
		})
		ordersDAL := ordersDALMocks.NewOrders(t)
		ordersDAL.On("Get", ctx, "cs_1").Return(order, nil)

		s := newService(assets, ordersDAL, mocks.NewMigrationReports(t), mocks.NewReportPublisher(t))

		require.NoError(t, s.MigrateOrderAssets(ctx, "cs_1"))

		assert.Equal(t, []string{
			"orders/user-1/ORD-1A2B3C4D/a.mp4",
			"orders/user-1/ORD-1A2B3C4D/b.mp4",
			"orders/user-1/ORD-1A2B3C4D/sub/c.srt",
			"temp/user-2/other.mp4",
		}, assets.names())
	})

	t.Run("zero staged objects is a no-op", func(t *testing.T) {
		assets := newFakeObjectStore(map[string]string{})
		ordersDAL := ordersDALMocks.NewOrders(t)
		ordersDAL.On("Get", ctx, "cs_1").Return(order, nil)

		s := newService(assets, ordersDAL, mocks.NewMigrationReports(t), mocks.NewReportPublisher(t))

		require.NoError(t, s.MigrateOrderAssets(ctx, "cs_1"))
		assert.Equal(t, 1, assets.listCalls)
	})

	t.Run("order without an order number is a logged no-op", func(t *testing.T) {
		assets := newFakeObjectStore(map[string]string{"temp/user-1/a.mp4": "a"})
		ordersDAL := ordersDALMocks.NewOrders(t)
		ordersDAL.On("Get", ctx, "cs_1").Return(&ordersDomain.Order{
			ID:     "cs_1",
			UserID: "user-1",
		}, nil)

		s := newService(assets, ordersDAL, mocks.NewMigrationReports(t), mocks.NewReportPublisher(t))

		require.NoError(t, s.MigrateOrderAssets(ctx, "cs_1"))
		assert.Equal(t, 0, assets.listCalls)
	})

	t.Run("partial failure is reported and a re-run converges", func(t *testing.T) {
		assets := newFakeObjectStore(map[string]string{
			"temp/user-1/a.mp4": "a",
			"temp/user-1/b.mp4": "b",
		})
		assets.failCopies["temp/user-1/b.mp4"] = true

		ordersDAL := ordersDALMocks.NewOrders(t)
		ordersDAL.On("Get", ctx, "cs_1").Return(order, nil)

		reports := mocks.NewMigrationReports(t)
		reports.On("Create", ctx, mock.MatchedBy(func(report *domain.MigrationReport) bool {
			return report.OrderID == "cs_1" &&
				report.UserID == "user-1" &&
				len(report.Migrated) == 1 &&
				len(report.Failed) == 1 &&
				report.Failed[0].Name == "temp/user-1/b.mp4"
		})).Return(nil).Once()

		publisher := mocks.NewReportPublisher(t)
		publisher.On("Publish", ctx, mock.AnythingOfType("*domain.MigrationReport")).Return(nil).Once()

		s := newService(assets, ordersDAL, reports, publisher)

		err := s.MigrateOrderAssets(ctx, "cs_1")
		assert.ErrorIs(t, err, ErrMigrationIncomplete)

		assert.Equal(t, []string{
			"orders/user-1/ORD-1A2B3C4D/a.mp4",
			"temp/user-1/b.mp4",
		}, assets.names())

		// Backend recovers; the redelivered trigger only has the leftover
		// object to move.
		assets.failCopies = map[string]bool{}

		require.NoError(t, s.MigrateOrderAssets(ctx, "cs_1"))

		assert.Equal(t, []string{
			"orders/user-1/ORD-1A2B3C4D/a.mp4",
			"orders/user-1/ORD-1A2B3C4D/b.mp4",
		}, assets.names())
	})

	t.Run("order read failure propagates", func(t *testing.T) {
		assets := newFakeObjectStore(map[string]string{})
		ordersDAL := ordersDALMocks.NewOrders(t)
		ordersDAL.On("Get", ctx, "cs_1").Return(nil, errors.New("store unavailable"))

		s := newService(assets, ordersDAL, mocks.NewMigrationReports(t), mocks.NewReportPublisher(t))

		assert.Error(t, s.MigrateOrderAssets(ctx, "cs_1"))
	})
}
