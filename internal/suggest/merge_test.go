package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bangdash/bangsuggest/internal/predict"
)

func TestMergeWithExternal_AddsNewExternal(t *testing.T) {
	local := []predict.Prediction{{Text: "weather", Source: predict.SourcePrefix, Score: 0.8}}
	merged := MergeWithExternal(local, []string{"weather forecast"}, 10)
	require.Len(t, merged, 2)
	// The external's base score 0.9 outranks the local 0.8.
	assert.Equal(t, "weather forecast", merged[0].Text)
	assert.Equal(t, predict.SourceExternal, merged[0].Source)
}

func TestMergeWithExternal_BoostsMatchingLocal(t *testing.T) {
	local := []predict.Prediction{{Text: "weather", Source: predict.SourcePrefix, Score: 0.5}}
	merged := MergeWithExternal(local, []string{"Weather"}, 10)
	require.Len(t, merged, 1)
	assert.InDelta(t, 0.65, merged[0].Score, 0.0001)
}

func TestMergeWithExternal_ClampsScoreAtOne(t *testing.T) {
	local := []predict.Prediction{{Text: "weather", Source: predict.SourcePrefix, Score: 0.95}}
	merged := MergeWithExternal(local, []string{"weather"}, 10)
	assert.LessOrEqual(t, merged[0].Score, 1.0)
}

func TestMergeWithExternal_TruncatesToLimit(t *testing.T) {
	local := []predict.Prediction{
		{Text: "a", Source: predict.SourcePrefix, Score: 0.9},
		{Text: "b", Source: predict.SourcePrefix, Score: 0.8},
	}
	merged := MergeWithExternal(local, []string{"c", "d"}, 2)
	assert.Len(t, merged, 2)
}
