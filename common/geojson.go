package common

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
	"gocloud.dev/blob"
)

// ReadFeatureCollection reads and decodes a GeoJSON FeatureCollection
// stored in a blob.Bucket instance. Documents without a top-level
// "features" member are rejected. Foreign members (for example "crs")
// are retained on the returned collection.
func ReadFeatureCollection(ctx context.Context, bucket *blob.Bucket, key string) (*geojson.FeatureCollection, error) {

	body, err := bucket.ReadAll(ctx, key)

	if err != nil {
		return nil, fmt.Errorf("Failed to read '%s', %w", key, err)
	}

	features_rsp := gjson.GetBytes(body, "features")

	if !features_rsp.Exists() {
		return nil, fmt.Errorf("Document '%s' is missing a features member", key)
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)

	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal '%s', %w", key, err)
	}

	return fc, nil
}

// WriteFeatureCollection encodes a GeoJSON FeatureCollection and writes
// it to a blob.Bucket instance, fully replacing anything stored under
// key. The document is serialized to memory before the writer is opened
// so a failed encode never produces a partial file; a failed write
// deletes whatever was stored under key.
func WriteFeatureCollection(ctx context.Context, bucket *blob.Bucket, key string, fc *geojson.FeatureCollection) error {

	body, err := fc.MarshalJSON()

	if err != nil {
		return fmt.Errorf("Failed to marshal feature collection, %w", err)
	}

	wr, err := bucket.NewWriter(ctx, key, nil)

	if err != nil {
		return fmt.Errorf("Failed to create writer for '%s', %w", key, err)
	}

	_, err = io.Copy(wr, bytes.NewReader(body))

	if err != nil {
		wr.Close()
		bucket.Delete(ctx, key)
		return fmt.Errorf("Failed to write '%s', %w", key, err)
	}

	err = wr.Close()

	if err != nil {
		return fmt.Errorf("Failed to close '%s', %w", key, err)
	}

	return nil
}
