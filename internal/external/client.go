// Package external implements the external suggestions client: a single
// upstream GET bounded by a hard deadline, fronted by a TTL+FIFO cache,
// degrading to an empty result on any failure.
package external

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	json "github.com/bangdash/bangsuggest/internal/jsonutil"
)

const (
	// Deadline is the hard 3-second timeout for the upstream fetch.
	Deadline = 3 * time.Second

	defaultTTL      = 60 * time.Second
	defaultCapacity = 500
	maxSuggestions  = 10
	userAgent       = "Mozilla/5.0 (compatible; bangsuggest/1.0; +https://bangsuggest.example)"
)

// Config configures a Client.
type Config struct {
	// UpstreamURL is the suggestions provider endpoint, with "%s" and "%s"
	// verbs for language and encoded query (filled in by fetch).
	UpstreamURL string
	TTL         time.Duration
	Capacity    int
	Timeout     time.Duration
}

// Client fetches suggestions from an upstream provider, with a TTL cache in
// front of the network call.
type Client struct {
	httpClient  *http.Client
	upstreamURL string
	timeout     time.Duration
	cache       *cache
	logger      *zap.Logger
}

// New creates a Client. httpClient's Transport is tuned for many short-lived
// requests to a single upstream host.
func New(cfg Config, logger *zap.Logger) *Client {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = Deadline
	}
	upstream := cfg.UpstreamURL
	if upstream == "" {
		upstream = "https://suggestqueries.google.com/complete/search?client=firefox&hl=%s&q=%s"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout + time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        50,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     time.Minute,
			},
		},
		upstreamURL: upstream,
		timeout:     timeout,
		cache:       newCache(ttl, capacity),
		logger:      logger,
	}
}

// FetchSuggestions fetches up to 10 suggestion strings for query in lang.
// It has no error result: network failures, timeouts (including a ctx that
// is already canceled), non-2xx responses, and malformed bodies all degrade
// to an empty list.
func (c *Client) FetchSuggestions(ctx context.Context, query, lang string) []string {
	if query == "" {
		return nil
	}
	key := query + ":" + lang

	if cached, ok := c.cache.get(key); ok {
		return cached
	}

	results := c.fetch(ctx, query, lang)
	c.cache.set(key, results)
	return results
}

func (c *Client) fetch(ctx context.Context, query, lang string) []string {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := fmt.Sprintf(c.upstreamURL, url.QueryEscape(lang), url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.logger.Warn("external: building request failed", zap.Error(err))
		return nil
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("external: upstream fetch failed", zap.Error(err), zap.String("query", query))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("external: upstream non-2xx", zap.Int("status", resp.StatusCode))
		return nil
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		c.logger.Warn("external: malformed upstream body", zap.Error(err))
		return nil
	}
	return parseSuggestBody(raw)
}

// parseSuggestBody validates and extracts suggestions from the expected
// two-element upstream body: [echoedQuery string, suggestions []string].
// Any other shape yields an empty list rather than an error.
func parseSuggestBody(raw []json.RawMessage) []string {
	if len(raw) != 2 {
		return nil
	}

	var echoed string
	if err := json.Unmarshal(raw[0], &echoed); err != nil {
		return nil
	}

	var suggestions []string
	if err := json.Unmarshal(raw[1], &suggestions); err != nil {
		return nil
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
