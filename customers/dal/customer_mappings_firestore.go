package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clipcraft/fulfillment/customers/domain"
	"github.com/clipcraft/fulfillment/framework/connection"
)

const (
	customerMappingsCollection = "customerMappings"

	fieldExternalCustomerID = "externalCustomerId"
)

// CustomerMappingsFirestore is used to interact with customer mappings stored on Firestore.
type CustomerMappingsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewCustomerMappingsFirestore returns a new CustomerMappingsFirestore instance with given project id.
func NewCustomerMappingsFirestore(ctx context.Context, projectID string) (*CustomerMappingsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewCustomerMappingsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewCustomerMappingsFirestoreWithClient returns a new CustomerMappingsFirestore using given client.
func NewCustomerMappingsFirestoreWithClient(fun connection.FirestoreFromContextFun) *CustomerMappingsFirestore {
	return &CustomerMappingsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *CustomerMappingsFirestore) mappingsCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(customerMappingsCollection)
}

// GetByUserID returns the mapping for the given user id.
func (d *CustomerMappingsFirestore) GetByUserID(ctx context.Context, userID string) (*domain.CustomerMapping, error) {
	docSnap, err := d.mappingsCollection(ctx).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCustomerMappingNotFound
		}

		return nil, err
	}

	var mapping domain.CustomerMapping

	if err := docSnap.DataTo(&mapping); err != nil {
		return nil, err
	}

	return &mapping, nil
}

// GetByExternalCustomerID returns the mapping matching the payment gateway's
// customer id. This reverse direction is only needed by the webhook processor.
func (d *CustomerMappingsFirestore) GetByExternalCustomerID(ctx context.Context, externalCustomerID string) (*domain.CustomerMapping, error) {
	iter := d.mappingsCollection(ctx).
		Where(fieldExternalCustomerID, "==", externalCustomerID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, ErrCustomerMappingNotFound
		}

		return nil, err
	}

	var mapping domain.CustomerMapping

	if err := docSnap.DataTo(&mapping); err != nil {
		return nil, err
	}

	return &mapping, nil
}

// Create persists a new mapping keyed by its user id. A mapping that already
// exists for the user is not overwritten; ErrCustomerMappingExists is
// returned so the caller can re-read the winning mapping.
func (d *CustomerMappingsFirestore) Create(ctx context.Context, mapping *domain.CustomerMapping) error {
	if _, err := d.mappingsCollection(ctx).Doc(mapping.UserID).Create(ctx, mapping); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrCustomerMappingExists
		}

		return err
	}

	return nil
}
