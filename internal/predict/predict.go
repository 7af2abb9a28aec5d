// Package predict implements the multi-algorithm prediction engine (spec
// component C5): it fuses exact-prefix scanning, trie traversal, n-gram
// Jaccard similarity, and bounded fuzzy matching over a shared corpus into a
// single ranked, deduplicated, source-tagged suggestion list.
package predict

import (
	"sort"
	"strings"

	"github.com/bangdash/bangsuggest/internal/editdist"
	"github.com/bangdash/bangsuggest/internal/ngram"
	"github.com/bangdash/bangsuggest/internal/trie"
)

// Source tags where a Prediction's score originated.
type Source string

const (
	SourcePrefix   Source = "prefix"
	SourceTrie     Source = "trie"
	SourceNgram    Source = "ngram"
	SourceFuzzy    Source = "fuzzy"
	SourceExternal Source = "external"
)

// Prediction is a single scored, source-tagged suggestion candidate.
type Prediction struct {
	Text   string
	Source Source
	Score  float64
}

// Layer weights for the score-fusion policy.
const (
	weightPrefix = 1.0
	weightTrie   = 0.8
	weightNgram  = 0.55
	weightFuzzy  = 0.4

	ngramBoostFactor = 0.3
	fuzzyBoostFactor = 0.2
)

// Engine is initialised once with a base corpus plus caller-supplied
// extensions; it builds the trie and n-gram index at construction time and
// retains the corpus for prefix scanning and fuzzy matching. All fields are
// immutable after New returns, so an Engine needs no locking for concurrent
// reads.
type Engine struct {
	corpus []string // lowercase
	trie   *trie.Trie
	ngrams *ngram.Index
}

// New builds an Engine over base plus extensions (e.g. bang names/triggers).
func New(base []string, extensions ...string) *Engine {
	corpus := make([]string, 0, len(base)+len(extensions))
	corpus = append(corpus, base...)
	corpus = append(corpus, extensions...)

	t := trie.New()
	lowerCorpus := make([]string, len(corpus))
	for i, w := range corpus {
		lowerCorpus[i] = strings.ToLower(w)
		t.Insert(w)
	}

	return &Engine{
		corpus: lowerCorpus,
		trie:   t,
		ngrams: ngram.Build(lowerCorpus, 3),
	}
}

type accum struct {
	text   string
	source Source
	score  float64
	set    bool
}

// Predict returns up to limit Predictions for query, ordered by descending
// score, fusing the four layers per the weight/dedup/boost rules below.
func (e *Engine) Predict(query string, limit int) []Prediction {
	if limit <= 0 {
		return nil
	}
	lowerQuery := strings.ToLower(query)
	qLen := len([]rune(lowerQuery))

	acc := make(map[string]*accum)

	establish := func(word string, source Source, score float64) {
		key := strings.ToLower(word)
		if _, exists := acc[key]; exists {
			return
		}
		acc[key] = &accum{text: word, source: source, score: score, set: true}
	}

	boost := func(word string, delta float64) {
		key := strings.ToLower(word)
		a, exists := acc[key]
		if !exists {
			return
		}
		a.score += delta
		if a.score > 1.0 {
			a.score = 1.0
		}
	}

	// Layer 1: linear corpus scan for startsWith(query), always applied.
	for _, word := range e.corpus {
		if strings.HasPrefix(word, lowerQuery) {
			wLen := len([]rune(word))
			score := weightPrefix
			if wLen > 0 {
				score = weightPrefix * float64(qLen) / float64(wLen)
			}
			establish(word, SourcePrefix, score)
		}
	}

	// Layer 2: trie prefix search, always applied.
	for _, word := range e.trie.PrefixSearch(lowerQuery, 10) {
		wLen := len([]rune(word))
		score := weightTrie
		if wLen > 0 {
			score = weightTrie * float64(qLen) / float64(wLen)
		}
		establish(word, SourceTrie, score)
	}

	// Layer 3: n-gram Jaccard, when query length >= 2.
	if qLen >= 2 {
		for _, r := range e.ngrams.Search(lowerQuery, 10) {
			if _, exists := acc[r.Word]; exists {
				boost(r.Word, weightNgram*r.Jaccard*ngramBoostFactor)
				continue
			}
			establish(r.Word, SourceNgram, weightNgram*r.Jaccard)
		}
	}

	// Layer 4: bounded fuzzy matching, when query length >= 3.
	if qLen >= 3 {
		for _, m := range editdist.FuzzyMatch(lowerQuery, e.corpus, -1) {
			maxLen := qLen
			if wLen := len([]rune(m.Word)); wLen > maxLen {
				maxLen = wLen
			}
			layerScore := 1.0
			if maxLen > 0 {
				layerScore = 1.0 - float64(m.Distance)/float64(maxLen)
			}
			if _, exists := acc[m.Word]; exists {
				boost(m.Word, weightFuzzy*layerScore*fuzzyBoostFactor)
				continue
			}
			establish(m.Word, SourceFuzzy, weightFuzzy*layerScore)
		}
	}

	out := make([]Prediction, 0, len(acc))
	maxFuzzyDist := 1
	if d := qLen / 3; d > 1 {
		maxFuzzyDist = d
	}
	for key, a := range acc {
		out = append(out, Prediction{
			Text:   a.text,
			Source: tagSource(key, lowerQuery, e.trie, maxFuzzyDist),
			Score:  a.score,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Text < out[j].Text
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// tagSource assigns the final source tag: prefix beats
// trie beats fuzzy beats ngram, independent of which layer first established
// the candidate's score.
func tagSource(lowerWord, lowerQuery string, t *trie.Trie, maxFuzzyDist int) Source {
	if strings.HasPrefix(lowerWord, lowerQuery) {
		return SourcePrefix
	}
	for _, w := range t.PrefixSearch(lowerQuery, 10) {
		if strings.ToLower(w) == lowerWord {
			return SourceTrie
		}
	}
	if editdist.Distance(lowerQuery, lowerWord) <= maxFuzzyDist {
		return SourceFuzzy
	}
	return SourceNgram
}
