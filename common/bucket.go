package common

/*

Buckets are opened as one-offs, as needed, and closed by whoever opened
them. Don't be tempted to pool them: closing a pooled bucket closes it
for every caller still holding a reference.

*/

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"gocloud.dev/blob"
)

// OpenBucketForPath resolves path, which may be a local filesystem path
// or a gocloud.dev bucket URI, to a one-off blob.Bucket instance and the
// object key inside it. Callers are responsible for closing the bucket.
func OpenBucketForPath(ctx context.Context, path string) (*blob.Bucket, string, error) {

	u, err := url.Parse(path)

	if err == nil && u.Scheme != "" && u.Scheme != "file" {

		key := strings.TrimPrefix(u.Path, "/")

		if key == "" {
			return nil, "", fmt.Errorf("URI '%s' is missing an object key", path)
		}

		u.Path = ""

		bucket, err := blob.OpenBucket(ctx, u.String())

		if err != nil {
			return nil, "", fmt.Errorf("Failed to open bucket for '%s', %w", path, err)
		}

		return bucket, key, nil
	}

	if u != nil && u.Scheme == "file" {
		path = u.Path
	}

	abs, err := filepath.Abs(path)

	if err != nil {
		return nil, "", fmt.Errorf("Failed to resolve '%s', %w", path, err)
	}

	root := filepath.Dir(abs)
	key := filepath.Base(abs)

	bucket, err := blob.OpenBucket(ctx, "file://"+root)

	if err != nil {
		return nil, "", fmt.Errorf("Failed to open bucket for '%s', %w", path, err)
	}

	return bucket, key, nil
}
