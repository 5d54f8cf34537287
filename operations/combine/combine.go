package combine

// join two GeoJSON FeatureCollection documents into one

import (
	"context"

	"github.com/sfomuseum/go-crowdsource-export/common"
	"gocloud.dev/blob"
)

// type CombineOptions holds the inputs for joining two FeatureCollection
// documents.
type CombineOptions struct {
	// The gocloud.dev/blob.Bucket where the input documents are read from.
	Source *blob.Bucket
	// An optional gocloud.dev/blob.Bucket the second input document is
	// read from instead, when the two inputs do not share a bucket.
	Secondary *blob.Bucket
	// The gocloud.dev/blob.Bucket where the combined document is written.
	Target *blob.Bucket
	// The object key of the first input document.
	First string
	// The object key of the second input document.
	Second string
	// The object key to write the combined document under.
	Result string
}

// Combine reads two FeatureCollection documents and writes a single
// document whose features are the first collection's followed by the
// second's, in order, with no deduplication. The first collection is the
// base object, so its top-level metadata (for example a crs member)
// carries through to the result.
func Combine(ctx context.Context, opts *CombineOptions) error {

	first, err := common.ReadFeatureCollection(ctx, opts.Source, opts.First)

	if err != nil {
		return err
	}

	secondary := opts.Secondary

	if secondary == nil {
		secondary = opts.Source
	}

	second, err := common.ReadFeatureCollection(ctx, secondary, opts.Second)

	if err != nil {
		return err
	}

	first.Features = append(first.Features, second.Features...)

	return common.WriteFeatureCollection(ctx, opts.Target, opts.Result, first)
}
