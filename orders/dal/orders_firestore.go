package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clipcraft/fulfillment/framework/connection"
	"github.com/clipcraft/fulfillment/orders/domain"
)

const (
	ordersCollection = "orders"
)

// OrdersFirestore is used to interact with orders stored on Firestore.
type OrdersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewOrdersFirestore returns a new OrdersFirestore instance with given project id.
func NewOrdersFirestore(ctx context.Context, projectID string) (*OrdersFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewOrdersFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewOrdersFirestoreWithClient returns a new OrdersFirestore using given client.
func NewOrdersFirestoreWithClient(fun connection.FirestoreFromContextFun) *OrdersFirestore {
	return &OrdersFirestore{
		firestoreClientFun: fun,
	}
}

func (d *OrdersFirestore) ordersCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(ordersCollection)
}

// Get returns the order with the given id.
func (d *OrdersFirestore) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	docSnap, err := d.ordersCollection(ctx).Doc(orderID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrOrderNotFound
		}

		return nil, err
	}

	var order domain.Order

	if err := docSnap.DataTo(&order); err != nil {
		return nil, err
	}

	order.ID = docSnap.Ref.ID

	return &order, nil
}

// Create persists a new order keyed by its session id. An order that already
// exists for the session is not overwritten; ErrOrderExists is returned so
// the caller can acknowledge the redelivered event.
func (d *OrdersFirestore) Create(ctx context.Context, order *domain.Order) error {
	if _, err := d.ordersCollection(ctx).Doc(order.SessionID).Create(ctx, order); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrOrderExists
		}

		return err
	}

	return nil
}
