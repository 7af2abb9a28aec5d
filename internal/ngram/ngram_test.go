package ngram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_FindsSimilarWords(t *testing.T) {
	idx := Build([]string{"weather", "feather", "golang", "python"}, 3)
	results := idx.Search("wether", 10)
	require.NotEmpty(t, results)
	assert.Equal(t, "weather", results[0].Word)
}

func TestSearch_DiscardsBelowNoiseFloor(t *testing.T) {
	idx := Build([]string{"weather", "xyzzy"}, 3)
	results := idx.Search("weather", 10)
	for _, r := range results {
		assert.Greater(t, r.Jaccard, noiseFloor)
	}
	for _, r := range results {
		assert.NotEqual(t, "xyzzy", r.Word)
	}
}

func TestSearch_RespectsLimit(t *testing.T) {
	idx := Build([]string{"cat", "cats", "catnip", "catalog", "category"}, 3)
	results := idx.Search("cat", 2)
	assert.LessOrEqual(t, len(results), 2)
}

func TestSearch_ExactMatchScoresOne(t *testing.T) {
	idx := Build([]string{"golang"}, 3)
	results := idx.Search("golang", 5)
	require.Len(t, results, 1)
	assert.InDelta(t, 1.0, results[0].Jaccard, 0.0001)
}
