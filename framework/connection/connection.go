package connection

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"

	"github.com/clipcraft/fulfillment/logger"
)

const (
	// CtxFirestoreKey is how firestore connections are stored/retrieved.
	CtxFirestoreKey = "app-firestore"

	// CtxCloudStorageKey is how cloud storage connections are stored/retrieved.
	CtxCloudStorageKey = "app-cloud-storage"

	// CtxPubSubKey is how cloud pubsub connections are stored/retrieved.
	CtxPubSubKey = "app-pubsub"
)

type Connection struct {
	*FirestoreClient
	*CloudStorageClient
	*PubsubClient
}

// NewConnection initializes the client connections necessary for api support.
func NewConnection(ctx context.Context, log *logger.Logging) (*Connection, error) {
	fs, err := NewFirestore(ctx, log)
	if err != nil {
		return nil, err
	}

	gcs, err := NewCloudStorage(ctx, log)
	if err != nil {
		return nil, err
	}

	ps, err := NewPubsubClient(ctx, log)
	if err != nil {
		return nil, err
	}

	return &Connection{
		fs,
		gcs,
		ps,
	}, nil
}

// Firestore returns a firestore connection that was stored in context.
// it returns by default a firestore connection, if there was not on context.
func (c *Connection) Firestore(ctx context.Context) *firestore.Client {
	if fs, ok := ctx.Value(CtxFirestoreKey).(*firestore.Client); ok {
		return fs
	}

	return c.fs
}

// CloudStorage returns a cloud storage connection that was stored in context.
// it returns by default a cloud storage connection, if there was not on context.
func (c *Connection) CloudStorage(ctx context.Context) *storage.Client {
	if gcs, ok := ctx.Value(CtxCloudStorageKey).(*storage.Client); ok {
		return gcs
	}

	return c.gcs
}

// Pubsub returns a pubsub connection that was stored in context.
// it returns by default a pubsub connection, if there was not on context.
func (c *Connection) Pubsub(ctx context.Context) *pubsub.Client {
	if ps, ok := ctx.Value(CtxPubSubKey).(*pubsub.Client); ok {
		return ps
	}

	return c.pubsub
}

// FirestoreWithContext stores under gin context, a firestore connection.
func (c *Connection) FirestoreWithContext(ctx *gin.Context) {
	ctx.Set(CtxFirestoreKey, c.fs)
}

type FirestoreFromContextFun = func(ctx context.Context) *firestore.Client
