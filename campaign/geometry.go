package campaign

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
)

// DecodePolygon decodes a hex-encoded well-known-binary polygon, as read
// from a campaign feature table, and returns a polygon holding only its
// exterior ring. Interior rings are discarded. Coordinates are returned
// in whatever reference system the source encoding implies.
func DecodePolygon(enc string) (orb.Polygon, error) {

	data, err := hex.DecodeString(enc)

	if err != nil {
		return nil, fmt.Errorf("Failed to decode hex geometry, %w", err)
	}

	geom, _, err := ewkb.Unmarshal(data)

	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal geometry, %w", err)
	}

	poly, ok := geom.(orb.Polygon)

	if !ok {
		return nil, fmt.Errorf("Unexpected geometry type '%s'", geom.GeoJSONType())
	}

	if len(poly) == 0 {
		return nil, errors.New("Polygon is missing an exterior ring")
	}

	return orb.Polygon{poly[0]}, nil
}
