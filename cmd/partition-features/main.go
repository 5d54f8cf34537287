package main

import (
	"context"
	"flag"
	"log"

	"github.com/sfomuseum/go-crowdsource-export/common"
	"github.com/sfomuseum/go-crowdsource-export/operations/partition"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

func main() {

	input := flag.String("input", "", "The path (or bucket URI) of the feature collection to split.")
	first := flag.String("first", "", "The path (or bucket URI) to write the first part to.")
	second := flag.String("second", "", "The path (or bucket URI) to write the second part to.")
	ratio := flag.Float64("ratio", 0.5, "The proportion of features, from 0 to 1, assigned to the first part.")

	flag.Parse()

	ctx := context.Background()

	source_bucket, input_key, err := common.OpenBucketForPath(ctx, *input)

	if err != nil {
		log.Fatalf("Failed to open bucket for %s, %v", *input, err)
	}

	defer source_bucket.Close()

	target_bucket, first_key, err := common.OpenBucketForPath(ctx, *first)

	if err != nil {
		log.Fatalf("Failed to open bucket for %s, %v", *first, err)
	}

	defer target_bucket.Close()

	second_bucket, second_key, err := common.OpenBucketForPath(ctx, *second)

	if err != nil {
		log.Fatalf("Failed to open bucket for %s, %v", *second, err)
	}

	defer second_bucket.Close()

	opts := &partition.PartitionOptions{
		Source:       source_bucket,
		Target:       target_bucket,
		SecondTarget: second_bucket,
		Input:        input_key,
		First:        first_key,
		Second:       second_key,
		Ratio:        *ratio,
	}

	err = partition.Partition(ctx, opts)

	if err != nil {
		log.Fatalf("Failed to partition feature collection, %v", err)
	}
}
