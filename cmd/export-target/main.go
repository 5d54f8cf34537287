package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/sfomuseum/go-crowdsource-export/campaign"
	"github.com/sfomuseum/go-crowdsource-export/common"
	"github.com/sfomuseum/go-crowdsource-export/operations/export"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

func main() {

	schema := flag.String("schema", "", "The campaign schema to export features from.")
	catalog_id := flag.String("catalog-id", "", "The catalog id of the source image.")
	max_features := flag.Int("max-features", 0, "The maximum number of features to export.")
	max_score := flag.Float64("max-score", campaign.DefaultMaxScore, "Only export features with a confidence score less than or equal to this value. Features with no score at all are exported first.")
	max_votes := flag.Int("max-votes", 0, "Only export features with a vote count less than or equal to this value.")
	dsn := flag.String("database-dsn", "", "A Postgres DSN for the campaign database. If empty the DSN is derived from the PG_* environment variables.")
	output := flag.String("output", "", "The path (or bucket URI) to write the feature collection to.")

	flag.Parse()

	godotenv.Load()

	ctx := context.Background()

	if *dsn == "" {
		*dsn = campaign.DSNFromEnv()
	}

	db, err := campaign.Open(*dsn)

	if err != nil {
		log.Fatalf("Failed to open campaign database, %v", err)
	}

	defer db.Close()

	bucket, key, err := common.OpenBucketForPath(ctx, *output)

	if err != nil {
		log.Fatalf("Failed to open bucket for %s, %v", *output, err)
	}

	defer bucket.Close()

	opts := export.NewExportTargetOptions()
	opts.Database = db
	opts.Bucket = bucket
	opts.Key = key
	opts.Schema = *schema
	opts.CatalogID = *catalog_id
	opts.MaxFeatures = *max_features
	opts.MaxScore = *max_score
	opts.MaxVotes = *max_votes

	opts.Progress = func(retrieved int) {
		log.Printf("Retrieved %d target features for catalog id %s\n", retrieved, *catalog_id)
	}

	err = export.ExportTarget(ctx, opts)

	if err != nil {
		log.Fatalf("Failed to export target features, %v", err)
	}
}
