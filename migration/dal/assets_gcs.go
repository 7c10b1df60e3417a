package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// AssetsGCS is used to interact with the assets bucket on Cloud Storage.
type AssetsGCS struct {
	bkt *storage.BucketHandle
}

// NewAssetsGCS returns a new AssetsGCS over the given bucket handle.
func NewAssetsGCS(bkt *storage.BucketHandle) *AssetsGCS {
	return &AssetsGCS{
		bkt: bkt,
	}
}

// ListObjects returns the names of all objects under the given prefix.
func (d *AssetsGCS) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	var names []string

	it := d.bkt.Objects(ctx, &storage.Query{Prefix: prefix})

	for {
		attrs, err := it.Next()

		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		names = append(names, attrs.Name)
	}

	return names, nil
}

// CopyObject copies src to dst within the bucket. Existing destination
// objects are overwritten, which keeps re-runs convergent.
func (d *AssetsGCS) CopyObject(ctx context.Context, src, dst string) error {
	_, err := d.bkt.Object(dst).CopierFrom(d.bkt.Object(src)).Run(ctx)

	return err
}

// DeleteObject deletes the specified object from the bucket. Deleting an
// object that is already gone is not an error, so a retried migration can
// pass over objects it moved before.
func (d *AssetsGCS) DeleteObject(ctx context.Context, name string) error {
	if err := d.bkt.Object(name).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}

		return err
	}

	return nil
}
