package external

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFetchSuggestions_HappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["weather", ["weather today", "weather tomorrow"]]`))
	}))
	defer srv.Close()

	c := New(Config{UpstreamURL: srv.URL + "?hl=%s&q=%s", Timeout: time.Second}, zap.NewNop())
	got := c.FetchSuggestions(t.Context(), "weather", "en")
	assert.Equal(t, []string{"weather today", "weather tomorrow"}, got)
}

func TestFetchSuggestions_CachesResult(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`["q", ["one"]]`))
	}))
	defer srv.Close()

	c := New(Config{UpstreamURL: srv.URL + "?hl=%s&q=%s", Timeout: time.Second}, zap.NewNop())
	c.FetchSuggestions(t.Context(), "q", "en")
	c.FetchSuggestions(t.Context(), "q", "en")
	assert.Equal(t, 1, calls)
}

func TestFetchSuggestions_NonJSONDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := New(Config{UpstreamURL: srv.URL + "?hl=%s&q=%s", Timeout: time.Second}, zap.NewNop())
	got := c.FetchSuggestions(t.Context(), "q", "en")
	assert.Empty(t, got)
}

func TestFetchSuggestions_NonOKStatusDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(Config{UpstreamURL: srv.URL + "?hl=%s&q=%s", Timeout: time.Second}, zap.NewNop())
	got := c.FetchSuggestions(t.Context(), "q", "en")
	assert.Empty(t, got)
}

func TestFetchSuggestions_TruncatesToTen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["q", ["1","2","3","4","5","6","7","8","9","10","11","12"]]`))
	}))
	defer srv.Close()

	c := New(Config{UpstreamURL: srv.URL + "?hl=%s&q=%s", Timeout: time.Second}, zap.NewNop())
	got := c.FetchSuggestions(t.Context(), "q", "en")
	assert.Len(t, got, 10)
}

func TestFetchSuggestions_EmptyQueryReturnsNilWithoutFetch(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := New(Config{UpstreamURL: srv.URL + "?hl=%s&q=%s", Timeout: time.Second}, zap.NewNop())
	got := c.FetchSuggestions(t.Context(), "", "en")
	assert.Nil(t, got)
	assert.Equal(t, 0, calls)
}
