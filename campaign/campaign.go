package campaign

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// DefaultMinScore is the minimum confidence score applied to training
// queries when no other threshold is supplied.
const DefaultMinScore float64 = 0.95

// DefaultMaxScore is the maximum confidence score applied to target
// queries when no other threshold is supplied.
const DefaultMaxScore float64 = 1.0

// type Database wraps a connection to a crowdsourcing campaign database.
type Database struct {
	conn *sql.DB
}

// type Record is a single feature row read from a campaign schema. The ID
// is opaque and kept as a string. EncodedGeometry is a hex-encoded
// well-known-binary polygon, as stored by the database. ClassName is only
// populated by queries that read it per row.
type Record struct {
	ID              string
	EncodedGeometry string
	ClassName       string
}

// type TrainingQueryOptions filters features suitable for training data:
// a single class on a single image, at or above the score and vote
// thresholds.
type TrainingQueryOptions struct {
	// The campaign schema to read features from.
	Schema string
	// The catalog id of the source image.
	CatalogID string
	// The class (type) name features must match.
	ClassName string
	// Only features with score >= MinScore are returned.
	MinScore float64
	// Only features with num_votes_total >= MinVotes are returned.
	MinVotes int
	// The maximum number of rows to return.
	Limit int
}

// type TargetQueryOptions filters features suitable for target data:
// any class on a single image, at or below the score and vote thresholds.
type TargetQueryOptions struct {
	// The campaign schema to read features from.
	Schema string
	// The catalog id of the source image.
	CatalogID string
	// Only features with score <= MaxScore (or no score at all) are returned.
	MaxScore float64
	// Only features with num_votes_total <= MaxVotes are returned.
	MaxVotes int
	// The maximum number of rows to return.
	Limit int
}

// Open returns a Database instance connected with a Postgres DSN.
func Open(dsn string) (*Database, error) {

	conn, err := sql.Open("postgres", dsn)

	if err != nil {
		return nil, fmt.Errorf("Failed to open database connection, %w", err)
	}

	return &Database{conn: conn}, nil
}

// AttachDatabase returns a Database instance wrapping an existing
// database/sql handle.
func AttachDatabase(conn *sql.DB) *Database {
	return &Database{conn: conn}
}

func (db *Database) Close() error {
	return db.conn.Close()
}

// TrainingFeatures returns up to opts.Limit (id, geometry) records for
// one image and one class, ordered by confidence score descending so the
// most trustworthy labels come first. The full result set is materialized
// before returning.
func (db *Database) TrainingFeatures(ctx context.Context, opts *TrainingQueryOptions) ([]*Record, error) {

	q, err := trainingQuery(opts.Schema)

	if err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx, q, opts.CatalogID, opts.ClassName, opts.MinScore, opts.MinVotes, opts.Limit)

	if err != nil {
		return nil, fmt.Errorf("Failed to query training features, %w", err)
	}

	defer rows.Close()

	records := make([]*Record, 0)

	for rows.Next() {

		var rec Record

		err := rows.Scan(&rec.ID, &rec.EncodedGeometry)

		if err != nil {
			return nil, fmt.Errorf("Failed to scan feature row, %w", err)
		}

		records = append(records, &rec)
	}

	err = rows.Err()

	if err != nil {
		return nil, fmt.Errorf("Failed to read feature rows, %w", err)
	}

	return records, nil
}

// TargetFeatures returns up to opts.Limit (id, geometry, class name)
// records for one image, ordered by confidence score ascending with
// unscored features first. An unscored feature has not been reviewed yet
// which makes it the most valuable target, so the null-first ordering is
// load-bearing.
func (db *Database) TargetFeatures(ctx context.Context, opts *TargetQueryOptions) ([]*Record, error) {

	q, err := targetQuery(opts.Schema)

	if err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx, q, opts.CatalogID, opts.MaxScore, opts.MaxVotes, opts.Limit)

	if err != nil {
		return nil, fmt.Errorf("Failed to query target features, %w", err)
	}

	defer rows.Close()

	records := make([]*Record, 0)

	for rows.Next() {

		var rec Record

		err := rows.Scan(&rec.ID, &rec.EncodedGeometry, &rec.ClassName)

		if err != nil {
			return nil, fmt.Errorf("Failed to scan feature row, %w", err)
		}

		records = append(records, &rec)
	}

	err = rows.Err()

	if err != nil {
		return nil, fmt.Errorf("Failed to read feature rows, %w", err)
	}

	return records, nil
}
