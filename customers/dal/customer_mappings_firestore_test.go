package dal

import (
	"context"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
)

func TestNewCustomerMappingsFirestoreWithClient(t *testing.T) {
	d := NewCustomerMappingsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return nil
		},
	)

	assert.NotNil(t, d)
	assert.NotNil(t, d.firestoreClientFun)
}
