package partition

// split one GeoJSON FeatureCollection document into two by a ratio

import (
	"context"
	"math"

	"github.com/paulmach/orb/geojson"
	"github.com/sfomuseum/go-crowdsource-export/common"
	"gocloud.dev/blob"
)

// type PartitionOptions holds the inputs for splitting a
// FeatureCollection document.
type PartitionOptions struct {
	// The gocloud.dev/blob.Bucket where the input document is read from.
	Source *blob.Bucket
	// The gocloud.dev/blob.Bucket where the output documents are written.
	Target *blob.Bucket
	// An optional gocloud.dev/blob.Bucket the second output document is
	// written to instead, when the two outputs do not share a bucket.
	SecondTarget *blob.Bucket
	// The object key of the input document.
	Input string
	// The object key for the first output document.
	First string
	// The object key for the second output document.
	Second string
	// The proportion of features, from 0 to 1, assigned to First.
	Ratio float64
}

// Partition reads a FeatureCollection document and writes two documents
// that partition its features in order: the first round(Ratio * count)
// features to opts.First and the remainder to opts.Second. Rounding is
// half-away-from-zero (math.Round). Ratios outside [0, 1] are not an
// error; the split index is clamped to the feature count, producing a
// degenerate split. Both outputs keep the input's top-level metadata.
func Partition(ctx context.Context, opts *PartitionOptions) error {

	fc, err := common.ReadFeatureCollection(ctx, opts.Source, opts.Input)

	if err != nil {
		return err
	}

	count := len(fc.Features)

	idx := int(math.Round(opts.Ratio * float64(count)))

	if idx < 0 {
		idx = 0
	}

	if idx > count {
		idx = count
	}

	first := geojson.NewFeatureCollection()
	first.ExtraMembers = fc.ExtraMembers
	first.Features = append(first.Features, fc.Features[:idx]...)

	second := geojson.NewFeatureCollection()
	second.ExtraMembers = fc.ExtraMembers
	second.Features = append(second.Features, fc.Features[idx:]...)

	err = common.WriteFeatureCollection(ctx, opts.Target, opts.First, first)

	if err != nil {
		return err
	}

	second_target := opts.SecondTarget

	if second_target == nil {
		second_target = opts.Target
	}

	return common.WriteFeatureCollection(ctx, second_target, opts.Second, second)
}
