// Package ngram implements the character-trigram inverted index and Jaccard
// scoring used for fuzzy suggestion matching.
package ngram

import (
	"sort"
	"strings"
)

// noiseFloor discards candidates whose Jaccard similarity is at or below this
// threshold.
const noiseFloor = 0.1

// Index maps a gram to the set of corpus words containing it.
type Index struct {
	n      int
	grams  map[string]map[string]struct{}
	wordGr map[string]map[string]struct{} // word -> its own gram set, for Jaccard denominators
}

// Build constructs an n-gram index (default trigram, n=3) over corpus. Each
// word is padded with "$" boundary sentinels before windowing, so the first
// and last characters each contribute a distinctive gram.
func Build(corpus []string, n int) *Index {
	if n <= 0 {
		n = 3
	}
	idx := &Index{
		n:      n,
		grams:  make(map[string]map[string]struct{}),
		wordGr: make(map[string]map[string]struct{}),
	}
	for _, word := range corpus {
		lower := strings.ToLower(word)
		gs := grams(lower, n)
		idx.wordGr[lower] = gs
		for g := range gs {
			bucket, ok := idx.grams[g]
			if !ok {
				bucket = make(map[string]struct{})
				idx.grams[g] = bucket
			}
			bucket[lower] = struct{}{}
		}
	}
	return idx
}

// grams computes the set of n-length windows over "$<lower(word)>$".
func grams(lowerWord string, n int) map[string]struct{} {
	padded := "$" + lowerWord + "$"
	out := make(map[string]struct{})
	r := []rune(padded)
	for i := 0; i+n <= len(r); i++ {
		out[string(r[i:i+n])] = struct{}{}
	}
	return out
}

// Result is a single n-gram search hit.
type Result struct {
	Word    string
	Jaccard float64
}

// Search computes the set of query grams, tallies shared-gram counts per
// candidate, scores each candidate by Jaccard similarity, discards anything
// at or below the noise floor, and returns the top-limit results by
// descending Jaccard.
func (idx *Index) Search(query string, limit int) []Result {
	if limit <= 0 {
		return nil
	}
	lower := strings.ToLower(query)
	qGrams := grams(lower, idx.n)

	shared := make(map[string]int)
	for g := range qGrams {
		for cand := range idx.grams[g] {
			shared[cand]++
		}
	}

	out := make([]Result, 0, len(shared))
	for cand, s := range shared {
		union := len(qGrams) + len(idx.wordGr[cand]) - s
		if union <= 0 {
			continue
		}
		j := float64(s) / float64(union)
		if j <= noiseFloor {
			continue
		}
		out = append(out, Result{Word: cand, Jaccard: j})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Jaccard != out[j].Jaccard {
			return out[i].Jaccard > out[j].Jaccard
		}
		return out[i].Word < out[j].Word
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
