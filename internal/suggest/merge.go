package suggest

import (
	"sort"
	"strings"

	"github.com/bangdash/bangsuggest/internal/predict"
)

const (
	externalBaseScore = 0.9
	externalBoost     = 0.15
)

// MergeWithExternal fuses external suggestions into a local prediction list:
// externals are added as new predictions with base score 0.9 and source
// "external"; an external that exactly matches (case-insensitive) an
// existing local prediction instead boosts that prediction's score by 0.15,
// clamped at 1.0. The combined list is sorted descending by score and
// truncated to limit.
func MergeWithExternal(local []predict.Prediction, externals []string, limit int) []predict.Prediction {
	byKey := make(map[string]int, len(local))
	out := make([]predict.Prediction, len(local))
	copy(out, local)
	for i, p := range out {
		byKey[strings.ToLower(p.Text)] = i
	}

	for _, ext := range externals {
		key := strings.ToLower(ext)
		if idx, exists := byKey[key]; exists {
			out[idx].Score += externalBoost
			if out[idx].Score > 1.0 {
				out[idx].Score = 1.0
			}
			continue
		}
		byKey[key] = len(out)
		out = append(out, predict.Prediction{
			Text:   ext,
			Source: predict.SourceExternal,
			Score:  externalBaseScore,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Text < out[j].Text
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
