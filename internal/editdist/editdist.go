// Package editdist implements the Optimal String Alignment (OSA) variant of
// Damerau-Levenshtein edit distance and the bounded fuzzy matcher built on it
//
package editdist

import (
	"sort"
	"strings"
)

// Distance computes the OSA edit distance between a and b: insertions,
// deletions, substitutions, and restricted adjacent transpositions (each pair
// of characters may be transposed at most once; non-adjacent transpositions
// cost two edits). Comparison is case-insensitive. Uses a rolling
// three-row dynamic program (previous-previous, previous, current) rather
// than a full matrix.
func Distance(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)

	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	prev2 := make([]int, m+1) // row i-2
	prev := make([]int, m+1)  // row i-1
	curr := make([]int, m+1)  // row i

	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			best := min3(del, ins, sub)

			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				trans := prev2[j-2] + 1
				if trans < best {
					best = trans
				}
			}

			curr[j] = best
		}

		prev2, prev, curr = prev, curr, prev2
	}

	return prev[m]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Match is a single fuzzy match result.
type Match struct {
	Word     string
	Distance int
	Score    float64
}

// defaultMaxDist is max(1, len(query)/3).
func defaultMaxDist(query string) int {
	n := len([]rune(query)) / 3
	if n < 1 {
		return 1
	}
	return n
}

// FuzzyMatch returns candidates from corpus within maxDist edit distance of
// query (default max(1, len(query)/3) when maxDist < 0), pre-filtered by
// length difference, scored as 1 - distance/max(len(query), len(candidate)),
// sorted ascending by distance then descending by score.
func FuzzyMatch(query string, corpus []string, maxDist int) []Match {
	if maxDist < 0 {
		maxDist = defaultMaxDist(query)
	}
	qLen := len([]rune(query))

	var out []Match
	for _, cand := range corpus {
		cLen := len([]rune(cand))
		diff := cLen - qLen
		if diff < 0 {
			diff = -diff
		}
		if diff > maxDist {
			continue
		}

		d := Distance(query, cand)
		if d > maxDist {
			continue
		}

		denom := qLen
		if cLen > denom {
			denom = cLen
		}
		score := 1.0
		if denom > 0 {
			score = 1.0 - float64(d)/float64(denom)
		}

		out = append(out, Match{Word: cand, Distance: d, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Score > out[j].Score
	})

	return out
}
