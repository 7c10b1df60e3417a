package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clipcraft/fulfillment/checkout/domain"
	"github.com/clipcraft/fulfillment/framework/connection"
)

const (
	checkoutIntentsCollection = "checkoutIntents"
)

// CheckoutIntentsFirestore is used to interact with checkout intents stored on Firestore.
type CheckoutIntentsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewCheckoutIntentsFirestore returns a new CheckoutIntentsFirestore instance with given project id.
func NewCheckoutIntentsFirestore(ctx context.Context, projectID string) (*CheckoutIntentsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewCheckoutIntentsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewCheckoutIntentsFirestoreWithClient returns a new CheckoutIntentsFirestore using given client.
func NewCheckoutIntentsFirestoreWithClient(fun connection.FirestoreFromContextFun) *CheckoutIntentsFirestore {
	return &CheckoutIntentsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *CheckoutIntentsFirestore) intentsCollection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(checkoutIntentsCollection)
}

// Get returns the checkout intent with the given id.
func (d *CheckoutIntentsFirestore) Get(ctx context.Context, intentID string) (*domain.CheckoutIntent, error) {
	docSnap, err := d.intentsCollection(ctx).Doc(intentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCheckoutIntentNotFound
		}

		return nil, err
	}

	var intent domain.CheckoutIntent

	if err := docSnap.DataTo(&intent); err != nil {
		return nil, err
	}

	intent.ID = docSnap.Ref.ID

	return &intent, nil
}

// UpdateSession writes the opened gateway session back onto the intent and
// marks it created.
func (d *CheckoutIntentsFirestore) UpdateSession(ctx context.Context, intentID, sessionID, sessionURL string) error {
	_, err := d.intentsCollection(ctx).Doc(intentID).Update(ctx, []firestore.Update{
		{Path: "sessionId", Value: sessionID},
		{Path: "sessionUrl", Value: sessionURL},
		{Path: "status", Value: domain.IntentStatusCreated},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})

	return err
}

// UpdateError marks the intent as terminally failed with the given message.
func (d *CheckoutIntentsFirestore) UpdateError(ctx context.Context, intentID, message string) error {
	_, err := d.intentsCollection(ctx).Doc(intentID).Update(ctx, []firestore.Update{
		{Path: "status", Value: domain.IntentStatusError},
		{Path: "error", Value: message},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})

	return err
}
