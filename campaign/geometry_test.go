package campaign

import (
	"encoding/hex"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeGeometry(t *testing.T, geom orb.Geometry) string {

	data, err := ewkb.Marshal(geom, 4326)
	require.NoError(t, err)

	return hex.EncodeToString(data)
}

func TestDecodePolygon(t *testing.T) {

	poly := orb.Polygon{
		{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
	}

	decoded, err := DecodePolygon(encodeGeometry(t, poly))
	require.NoError(t, err)

	require.Len(t, decoded, 1)
	assert.Equal(t, poly[0], decoded[0])
}

func TestDecodePolygonDiscardsInteriorRings(t *testing.T) {

	poly := orb.Polygon{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
		{{1, 1}, {2, 1}, {2, 2}, {1, 2}, {1, 1}},
	}

	decoded, err := DecodePolygon(encodeGeometry(t, poly))
	require.NoError(t, err)

	require.Len(t, decoded, 1)
	assert.Equal(t, poly[0], decoded[0])
}

func TestDecodePolygonErrors(t *testing.T) {

	_, err := DecodePolygon("not hex")
	assert.Error(t, err)

	_, err = DecodePolygon("0000")
	assert.Error(t, err)

	pt := orb.Point{1, 2}

	_, err = DecodePolygon(encodeGeometry(t, pt))
	assert.Error(t, err)
}
