package main

import (
	"context"
	"flag"
	"log"

	"github.com/sfomuseum/go-crowdsource-export/common"
	"github.com/sfomuseum/go-crowdsource-export/operations/combine"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

func main() {

	first := flag.String("first", "", "The path (or bucket URI) of the first feature collection.")
	second := flag.String("second", "", "The path (or bucket URI) of the second feature collection.")
	output := flag.String("output", "", "The path (or bucket URI) to write the combined feature collection to. Top-level metadata is taken from the first collection.")

	flag.Parse()

	ctx := context.Background()

	first_bucket, first_key, err := common.OpenBucketForPath(ctx, *first)

	if err != nil {
		log.Fatalf("Failed to open bucket for %s, %v", *first, err)
	}

	defer first_bucket.Close()

	second_bucket, second_key, err := common.OpenBucketForPath(ctx, *second)

	if err != nil {
		log.Fatalf("Failed to open bucket for %s, %v", *second, err)
	}

	defer second_bucket.Close()

	target_bucket, target_key, err := common.OpenBucketForPath(ctx, *output)

	if err != nil {
		log.Fatalf("Failed to open bucket for %s, %v", *output, err)
	}

	defer target_bucket.Close()

	opts := &combine.CombineOptions{
		Source:    first_bucket,
		Secondary: second_bucket,
		Target:    target_bucket,
		First:     first_key,
		Second:    second_key,
		Result:    target_key,
	}

	err = combine.Combine(ctx, opts)

	if err != nil {
		log.Fatalf("Failed to combine feature collections, %v", err)
	}
}
