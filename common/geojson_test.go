package common

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	_ "gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

func TestReadWriteFeatureCollection(t *testing.T) {

	ctx := context.Background()

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{
		"crs": map[string]interface{}{
			"type": "name",
			"properties": map[string]interface{}{
				"name": "EPSG:4326",
			},
		},
	}

	f := geojson.NewFeature(orb.Polygon{
		{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
	})

	f.Properties = geojson.Properties{
		"id": "101",
	}

	fc.Append(f)

	err := WriteFeatureCollection(ctx, bucket, "test.geojson", fc)
	require.NoError(t, err)

	body, err := bucket.ReadAll(ctx, "test.geojson")
	require.NoError(t, err)

	assert.Equal(t, "FeatureCollection", gjson.GetBytes(body, "type").String())
	assert.Equal(t, "EPSG:4326", gjson.GetBytes(body, "crs.properties.name").String())

	decoded, err := ReadFeatureCollection(ctx, bucket, "test.geojson")
	require.NoError(t, err)

	require.Len(t, decoded.Features, 1)
	assert.Equal(t, "101", decoded.Features[0].Properties["id"])
	assert.Contains(t, decoded.ExtraMembers, "crs")
}

func TestReadFeatureCollectionMissingFeatures(t *testing.T) {

	ctx := context.Background()

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	err := bucket.WriteAll(ctx, "bad.geojson", []byte(`{"type": "FeatureCollection"}`), nil)
	require.NoError(t, err)

	_, err = ReadFeatureCollection(ctx, bucket, "bad.geojson")
	assert.Error(t, err)

	err = bucket.WriteAll(ctx, "invalid.geojson", []byte(`{"features": `), nil)
	require.NoError(t, err)

	_, err = ReadFeatureCollection(ctx, bucket, "invalid.geojson")
	assert.Error(t, err)

	_, err = ReadFeatureCollection(ctx, bucket, "missing.geojson")
	assert.Error(t, err)
}

func TestOpenBucketForPath(t *testing.T) {

	ctx := context.Background()

	root := t.TempDir()
	path := filepath.Join(root, "out.geojson")

	bucket, key, err := OpenBucketForPath(ctx, path)
	require.NoError(t, err)

	defer bucket.Close()

	assert.Equal(t, "out.geojson", key)

	fc := geojson.NewFeatureCollection()

	err = WriteFeatureCollection(ctx, bucket, key, fc)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	body, err := os.ReadFile(path)
	require.NoError(t, err)

	features_rsp := gjson.GetBytes(body, "features")
	require.True(t, features_rsp.Exists())
	assert.Len(t, features_rsp.Array(), 0)
}
