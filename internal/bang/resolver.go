package bang

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerFolder = cases.Lower(language.Und)

// foldTrigger normalizes a captured trigger token for case-insensitive
// registry lookup. golang.org/x/text/cases is used rather than strings.ToLower
// so that non-ASCII trigger extensions (a future registry entry, or a
// mis-typed trigger with a Turkish-locale "İ") fold consistently; registry
// triggers are lowercase ASCII, but query *input* is untrusted.
func foldTrigger(s string) string {
	return lowerFolder.String(s)
}

// Resolve translates a raw
// address-bar query into a redirect URL. Resolve never returns an error for
// malformed input; it always falls through to the default bang.
func Resolve(query string) string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Default().HomeURL()
	}

	token, hadTrigger := extractBangToken(trimmed)

	var b Bang
	if hadTrigger {
		if found, ok := Lookup(token); ok {
			b = found
		} else {
			b = Default()
		}
	} else {
		b = Default()
	}

	rest := removeBangToken(trimmed, hadTrigger)

	if rest == "" {
		if hadTrigger {
			return b.HomeURL()
		}
		return Default().HomeURL()
	}

	encoded := encodeRestorePath(rest)
	return strings.Replace(b.URLTemplate, "{{{s}}}", encoded, 1)
}

// extractBangToken finds the first whitespace-delimited "!<non-space>+"
// token anywhere in the query (leftmost wins on ties) and returns its
// lowercased trigger along with whether one was found.
func extractBangToken(query string) (trigger string, found bool) {
	fields := strings.Fields(query)
	for _, f := range fields {
		if len(f) > 1 && f[0] == '!' {
			return foldTrigger(f[1:]), true
		}
	}
	return "", false
}

// removeBangToken removes the first "!trigger" token (and surrounding
// whitespace) from the query once, trimming the remainder.
func removeBangToken(query string, hadTrigger bool) string {
	if !hadTrigger {
		return strings.TrimSpace(query)
	}
	fields := strings.Fields(query)
	out := make([]string, 0, len(fields))
	removed := false
	for _, f := range fields {
		if !removed && len(f) > 1 && f[0] == '!' {
			removed = true
			continue
		}
		out = append(out, f)
	}
	return strings.TrimSpace(strings.Join(out, " "))
}

// encodeRestorePath percent-encodes rest per RFC 3986 component rules, then
// restores literal "/" characters so path-style bangs (e.g. "owner/repo")
// survive intact. This is load-bearing for the "ghr" bang.
func encodeRestorePath(rest string) string {
	encoded := url.QueryEscape(rest)
	// url.QueryEscape encodes spaces as "+"; spec examples expect "%20".
	encoded = strings.ReplaceAll(encoded, "+", "%20")
	encoded = strings.ReplaceAll(encoded, "%2F", "/")
	return encoded
}
