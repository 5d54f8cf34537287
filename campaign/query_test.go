package campaign

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingQuery(t *testing.T) {

	q, err := trainingQuery("nod_0042")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(q, "SELECT feature.id, feature.feature"))
	assert.Contains(t, q, "FROM nod_0042.feature, tag_type, overlay")
	assert.Contains(t, q, "tag_type.name = $2")
	assert.Contains(t, q, "feature.score >= $3")
	assert.Contains(t, q, "feature.num_votes_total >= $4")
	assert.Contains(t, q, "ORDER BY feature.score DESC")
	assert.Contains(t, q, "LIMIT $5")
}

func TestTargetQuery(t *testing.T) {

	q, err := targetQuery("nod_0042")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(q, "SELECT feature.id, feature.feature, tag_type.name"))
	assert.Contains(t, q, "FROM nod_0042.feature, tag_type, overlay")
	assert.Contains(t, q, "feature.num_votes_total <= $3")
	assert.Contains(t, q, "ORDER BY feature.score ASC NULLS FIRST")
	assert.Contains(t, q, "LIMIT $4")

	// unscored features must survive the score filter in order to be
	// sorted first; three-valued logic drops them from a bare <=

	assert.Contains(t, q, "(feature.score <= $2 OR feature.score IS NULL)")
}

func TestInvalidSchema(t *testing.T) {

	bad := []string{
		"",
		"nod-42",
		"nod 42",
		"42nod",
		"nod;DROP TABLE feature",
		"nod.feature",
	}

	for _, schema := range bad {

		_, err := trainingQuery(schema)
		assert.Error(t, err, "training query accepted schema '%s'", schema)

		_, err = targetQuery(schema)
		assert.Error(t, err, "target query accepted schema '%s'", schema)
	}
}
