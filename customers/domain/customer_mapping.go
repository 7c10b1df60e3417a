package domain

import "time"

// CustomerMapping links an internal user identity to the payment gateway's
// customer profile. Stored in the "customerMappings" collection with the
// user id as the document id, so at most one mapping can exist per user.
type CustomerMapping struct {
	UserID             string    `firestore:"userId"`
	ExternalCustomerID string    `firestore:"externalCustomerId"`
	Email              string    `firestore:"email"`
	CreatedAt          time.Time `firestore:"createdAt,serverTimestamp"`
}
