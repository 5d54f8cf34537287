package export

// export labeled (training) and unlabeled (target) campaign features
// to GeoJSON FeatureCollection documents

import (
	"context"

	"github.com/paulmach/orb/geojson"
	"github.com/sfomuseum/go-crowdsource-export/campaign"
	"github.com/sfomuseum/go-crowdsource-export/common"
	"gocloud.dev/blob"
)

// ExportProgressFunc is invoked with the number of rows retrieved from
// the campaign database, before any document is written. Callers may use
// it to narrate, redirect or test progress; a nil func suppresses it.
type ExportProgressFunc func(retrieved int)

// type ExportTrainingOptions holds the inputs for exporting training
// data: high-confidence features of a single class on a single image.
type ExportTrainingOptions struct {
	// The campaign database to read features from.
	Database *campaign.Database
	// The gocloud.dev/blob.Bucket where the document is written.
	Bucket *blob.Bucket
	// The object key (file name) to write the document under.
	Key string
	// The campaign schema to read features from.
	Schema string
	// The catalog id of the source image.
	CatalogID string
	// The class (type) name of the features to export.
	ClassName string
	// The maximum number of features to export.
	MaxFeatures int
	// Only features with score >= MinScore are exported.
	MinScore float64
	// Only features with num_votes_total >= MinVotes are exported.
	MinVotes int
	// An optional ExportProgressFunc invoked once after retrieval.
	Progress ExportProgressFunc
}

// type ExportTargetOptions holds the inputs for exporting target data:
// low-confidence or unreviewed features of any class on a single image.
type ExportTargetOptions struct {
	// The campaign database to read features from.
	Database *campaign.Database
	// The gocloud.dev/blob.Bucket where the document is written.
	Bucket *blob.Bucket
	// The object key (file name) to write the document under.
	Key string
	// The campaign schema to read features from.
	Schema string
	// The catalog id of the source image.
	CatalogID string
	// The maximum number of features to export.
	MaxFeatures int
	// Only features with score <= MaxScore (or no score) are exported.
	MaxScore float64
	// Only features with num_votes_total <= MaxVotes are exported.
	MaxVotes int
	// An optional ExportProgressFunc invoked once after retrieval.
	Progress ExportProgressFunc
}

// NewExportTrainingOptions returns an ExportTrainingOptions instance
// with the default score and vote thresholds applied.
func NewExportTrainingOptions() *ExportTrainingOptions {

	return &ExportTrainingOptions{
		MinScore: campaign.DefaultMinScore,
		MinVotes: 0,
	}
}

// NewExportTargetOptions returns an ExportTargetOptions instance with
// the default score and vote thresholds applied.
func NewExportTargetOptions() *ExportTargetOptions {

	return &ExportTargetOptions{
		MaxScore: campaign.DefaultMaxScore,
		MaxVotes: 0,
	}
}

// ExportTraining writes the features matching opts to a GeoJSON
// FeatureCollection document under opts.Key, ordered by confidence score
// descending. Every feature carries the caller's class name, since the
// query already filters to a single class. The document is buffered in
// full before anything is written, so a query or decode failure leaves
// no partial output behind.
func ExportTraining(ctx context.Context, opts *ExportTrainingOptions) error {

	query_opts := &campaign.TrainingQueryOptions{
		Schema:    opts.Schema,
		CatalogID: opts.CatalogID,
		ClassName: opts.ClassName,
		MinScore:  opts.MinScore,
		MinVotes:  opts.MinVotes,
		Limit:     opts.MaxFeatures,
	}

	records, err := opts.Database.TrainingFeatures(ctx, query_opts)

	if err != nil {
		return err
	}

	if opts.Progress != nil {
		opts.Progress(len(records))
	}

	fc := geojson.NewFeatureCollection()

	for _, rec := range records {

		f, err := featureFromRecord(rec, opts.ClassName, opts.CatalogID)

		if err != nil {
			return err
		}

		fc.Append(f)
	}

	return common.WriteFeatureCollection(ctx, opts.Bucket, opts.Key, fc)
}

// ExportTarget writes the features matching opts to a GeoJSON
// FeatureCollection document under opts.Key, ordered by confidence score
// ascending with unreviewed (unscored) features first. Class names are
// read per row; nothing here has been confidently labeled yet so the
// features may span classes. Buffering is the same as ExportTraining.
func ExportTarget(ctx context.Context, opts *ExportTargetOptions) error {

	query_opts := &campaign.TargetQueryOptions{
		Schema:    opts.Schema,
		CatalogID: opts.CatalogID,
		MaxScore:  opts.MaxScore,
		MaxVotes:  opts.MaxVotes,
		Limit:     opts.MaxFeatures,
	}

	records, err := opts.Database.TargetFeatures(ctx, query_opts)

	if err != nil {
		return err
	}

	if opts.Progress != nil {
		opts.Progress(len(records))
	}

	fc := geojson.NewFeatureCollection()

	for _, rec := range records {

		f, err := featureFromRecord(rec, rec.ClassName, opts.CatalogID)

		if err != nil {
			return err
		}

		fc.Append(f)
	}

	return common.WriteFeatureCollection(ctx, opts.Bucket, opts.Key, fc)
}
