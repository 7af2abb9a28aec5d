package httpapi

import "github.com/bangdash/bangsuggest/internal/bang"

// resolveSearch delegates to bang.Resolve; kept as a separate function so
// handleSearch stays a thin HTTP-shape adapter.
func resolveSearch(q string) string {
	return bang.Resolve(q)
}
