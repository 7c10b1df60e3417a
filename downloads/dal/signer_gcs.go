package dal

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
)

// SignerGCS issues V4 signed URLs for objects in the assets bucket.
type SignerGCS struct {
	bkt *storage.BucketHandle
}

// NewSignerGCS returns a new SignerGCS over the given bucket handle.
func NewSignerGCS(bkt *storage.BucketHandle) *SignerGCS {
	return &SignerGCS{
		bkt: bkt,
	}
}

// SignURL returns a read-only signed URL for the exact object, valid until
// expires.
func (d *SignerGCS) SignURL(ctx context.Context, objectPath string, expires time.Time) (string, error) {
	return d.bkt.SignedURL(objectPath, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: expires,
	})
}
