package campaign

import (
	"fmt"
	"regexp"
)

// Campaign schemas are caller-supplied and can not be bound as query
// parameters, so they are held to a conservative identifier pattern
// before being interpolated. Everything else is a placeholder.
var re_schema = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Only the feature table lives in a per-campaign schema; tag_type and
// overlay are shared across campaigns.

const training_query_fmt = `SELECT feature.id, feature.feature
	FROM %s.feature, tag_type, overlay
	WHERE feature.type_id = tag_type.id
	AND feature.overlay_id = overlay.id
	AND overlay.catalogid = $1
	AND tag_type.name = $2
	AND feature.score >= $3
	AND feature.num_votes_total >= $4
	ORDER BY feature.score DESC
	LIMIT $5`

// An unscored (NULL) feature has not been reviewed yet and must be
// returned ahead of every scored one; a bare score <= $2 comparison
// would drop those rows before the NULLS FIRST ordering ever saw them.

const target_query_fmt = `SELECT feature.id, feature.feature, tag_type.name
	FROM %s.feature, tag_type, overlay
	WHERE feature.type_id = tag_type.id
	AND feature.overlay_id = overlay.id
	AND overlay.catalogid = $1
	AND (feature.score <= $2 OR feature.score IS NULL)
	AND feature.num_votes_total <= $3
	ORDER BY feature.score ASC NULLS FIRST
	LIMIT $4`

func trainingQuery(schema string) (string, error) {

	if !re_schema.MatchString(schema) {
		return "", fmt.Errorf("Invalid campaign schema '%s'", schema)
	}

	return fmt.Sprintf(training_query_fmt, schema), nil
}

func targetQuery(schema string) (string, error) {

	if !re_schema.MatchString(schema) {
		return "", fmt.Errorf("Invalid campaign schema '%s'", schema)
	}

	return fmt.Sprintf(target_query_fmt, schema), nil
}
