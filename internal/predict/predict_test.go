package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict_ExactPrefixRanksFirst(t *testing.T) {
	e := New([]string{"weather", "weather today", "wikipedia"})
	results := e.Predict("weath", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, SourcePrefix, results[0].Source)
	assert.Contains(t, []string{"weather", "weather today"}, results[0].Text)
}

func TestPredict_RespectsLimit(t *testing.T) {
	e := New([]string{"a1", "a2", "a3", "a4", "a5"})
	results := e.Predict("a", 2)
	assert.Len(t, results, 2)
}

func TestPredict_FuzzyMatchesMisspelling(t *testing.T) {
	e := New([]string{"weather", "github", "youtube"})
	results := e.Predict("weathr", 5)
	var found bool
	for _, r := range results {
		if r.Text == "weather" {
			found = true
		}
	}
	assert.True(t, found, "expected fuzzy match for misspelled query, got %+v", results)
}

func TestPredict_EmptyLimitReturnsNil(t *testing.T) {
	e := New([]string{"weather"})
	assert.Nil(t, e.Predict("weather", 0))
}

func TestPredict_NoMatchesReturnsEmpty(t *testing.T) {
	e := New([]string{"weather"})
	results := e.Predict("zzzzzzzzzzzz", 5)
	assert.Empty(t, results)
}

func TestPredict_DedupesAcrossLayers(t *testing.T) {
	e := New([]string{"weather"})
	results := e.Predict("weath", 5)
	seen := make(map[string]int)
	for _, r := range results {
		seen[r.Text]++
	}
	for text, count := range seen {
		assert.Equal(t, 1, count, "expected %q to appear once, got %d", text, count)
	}
}
