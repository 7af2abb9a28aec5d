// Package suggest implements the suggest service: it orchestrates the
// bang-aware and plain-text query paths, fusing the prediction engine and
// the external suggestions client behind a deduplicating, length-bounded
// sink.
package suggest

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bangdash/bangsuggest/internal/bang"
	"github.com/bangdash/bangsuggest/internal/predict"
)

const (
	maxResults = 8
	localLimit = 8
	emDashSep  = " — "
	maxTier1   = 5
	maxTier2   = 2
)

// External is the subset of external.Client that Service depends on, so
// tests can substitute a fake upstream.
type External interface {
	FetchSuggestions(ctx context.Context, query, lang string) []string
}

// Service implements the OpenSearch suggestions wire contract.
type Service struct {
	engine   *predict.Engine
	external External
}

// New creates a Service wired to a prediction engine and external client.
func New(engine *predict.Engine, ext External) *Service {
	return &Service{engine: engine, external: ext}
}

// HandleSuggest takes a raw query and an
// Accept-Language value, returns the echoed query and an ordered,
// deduplicated suggestion list of at most 8 items. It never panics or
// returns an error; all internal failures degrade to partial/empty results.
func (s *Service) HandleSuggest(ctx context.Context, rawQuery, acceptLanguage string) (string, []string) {
	query := strings.TrimSpace(rawQuery)
	if query == "" {
		return "", []string{}
	}

	lang := parseLang(acceptLanguage)

	if strings.HasPrefix(query, "!") {
		return query, s.handleBangPrefixed(ctx, query, lang)
	}
	return query, s.handlePlainText(ctx, query, lang)
}

// parseLang takes the first comma-separated Accept-Language tag, strips any
// quality parameter, and defaults to "en" when absent.
func parseLang(acceptLanguage string) string {
	if acceptLanguage == "" {
		return "en"
	}
	first := strings.TrimSpace(strings.SplitN(acceptLanguage, ",", 2)[0])
	if semi := strings.IndexByte(first, ';'); semi >= 0 {
		first = first[:semi]
	}
	first = strings.TrimSpace(first)
	if first == "" {
		return "en"
	}
	return first
}

// handleBangPrefixed handles queries that begin with "!".
func (s *Service) handleBangPrefixed(ctx context.Context, query, lang string) []string {
	rest := query[1:]
	fields := strings.Fields(rest)

	var bangPrefix, textAfterBang string
	if len(fields) > 0 {
		bangPrefix = fields[0]
		textAfterBang = strings.Join(fields[1:], " ")
	}

	matches := bang.MatchBangs(bangPrefix, maxTier1, maxTier2)

	d := NewDeduper(maxResults)
	for _, m := range matches {
		if d.Full() {
			break
		}
		if textAfterBang != "" {
			d.Add("!" + m.Trigger + " " + textAfterBang)
		} else {
			d.Add("!" + m.Trigger + emDashSep + m.Name)
		}
	}

	if textAfterBang != "" && len(matches) > 0 && !d.Full() {
		best := matches[0]
		for _, ext := range s.external.FetchSuggestions(ctx, textAfterBang, lang) {
			if d.Full() {
				break
			}
			d.Add("!" + best.Trigger + " " + ext)
		}
	}

	return d.Results()
}

// handlePlainText handles queries with no bang prefix: the local prediction and
// the external fetch run concurrently; externals are emitted first, then the
// local predictions (merged with no additional externals) are emitted.
func (s *Service) handlePlainText(ctx context.Context, query, lang string) []string {
	var localPredictions []predict.Prediction
	var externals []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		localPredictions = s.engine.Predict(query, localLimit)
		return nil
	})
	g.Go(func() error {
		externals = s.external.FetchSuggestions(gctx, query, lang)
		return nil
	})
	_ = g.Wait() // both goroutines above are infallible; error is never set

	d := NewDeduper(maxResults)
	for _, ext := range externals {
		if d.Full() {
			break
		}
		d.Add(ext)
	}

	merged := MergeWithExternal(localPredictions, nil, localLimit)
	for _, p := range merged {
		if d.Full() {
			break
		}
		d.Add(p.Text)
	}

	return d.Results()
}
