package export

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
	"github.com/sfomuseum/go-crowdsource-export/campaign"
)

// featureFromRecord converts one campaign record to a GeoJSON Feature:
// a single-ring Polygon geometry and exactly three properties, id,
// class_name and image_name. Both exporters funnel through here; they
// differ only in where class_name comes from.
func featureFromRecord(rec *campaign.Record, class_name string, catalog_id string) (*geojson.Feature, error) {

	poly, err := campaign.DecodePolygon(rec.EncodedGeometry)

	if err != nil {
		return nil, fmt.Errorf("Failed to decode geometry for feature '%s', %w", rec.ID, err)
	}

	f := geojson.NewFeature(poly)

	f.Properties = geojson.Properties{
		"id":         rec.ID,
		"class_name": class_name,
		"image_name": catalog_id,
	}

	return f, nil
}
