// Package bang implements the bang registry, resolver, and bang match policy:
// translating a "!trigger rest" query into a redirect URL, and ranking bangs
// by trigger/name prefix for autocomplete.
package bang

// Bang is a single search-shortcut entry. Triggers are unique, nonempty,
// lowercase ASCII, and contain no whitespace.
type Bang struct {
	// Trigger is the token following "!" that selects this bang, e.g. "y".
	Trigger string

	// URLTemplate contains exactly one "{{{s}}}" placeholder, or is a
	// bare-site template where the placeholder is appended to a path.
	URLTemplate string

	// Domain is the bare host used as a fallback redirect target when the
	// query carries no search terms.
	Domain string

	// Name is the bang's display name, used for tier-2 matching and the
	// "!trigger — Name" suggestion form.
	Name string

	// Description is free text, display only; the core never inspects it.
	Description string
}

// HomeURL returns the bare-site home page for this bang's engine.
func (b Bang) HomeURL() string {
	return "https://" + b.Domain
}

// DefaultTrigger names the bang used when a query carries no recognized
// "!trigger" token, or an unknown one.
const DefaultTrigger = "g"

// Registry is the static, ordered catalogue of bangs. Order matters: it is
// the tie-break order for Resolve's linear lookup and the within-tier order
// for MatchBangs.
var Registry = []Bang{
	{Trigger: "g", URLTemplate: "https://www.google.com/search?q={{{s}}}", Domain: "www.google.com", Name: "Google", Description: "Google Search"},
	{Trigger: "y", URLTemplate: "https://www.youtube.com/results?search_query={{{s}}}", Domain: "www.youtube.com", Name: "YouTube", Description: "YouTube video search"},
	{Trigger: "w", URLTemplate: "https://en.wikipedia.org/w/index.php?search={{{s}}}", Domain: "en.wikipedia.org", Name: "Wikipedia", Description: "Wikipedia encyclopedia"},
	{Trigger: "gh", URLTemplate: "https://github.com/search?q={{{s}}}", Domain: "github.com", Name: "GitHub", Description: "GitHub code search"},
	{Trigger: "ghr", URLTemplate: "https://github.com/{{{s}}}", Domain: "github.com", Name: "GitHub Repo", Description: "Jump to a GitHub owner/repo"},
	{Trigger: "so", URLTemplate: "https://stackoverflow.com/search?q={{{s}}}", Domain: "stackoverflow.com", Name: "Stack Overflow", Description: "Stack Overflow Q&A search"},
	{Trigger: "npm", URLTemplate: "https://www.npmjs.com/search?q={{{s}}}", Domain: "www.npmjs.com", Name: "npm", Description: "npm package search"},
	{Trigger: "pip", URLTemplate: "https://pypi.org/search/?q={{{s}}}", Domain: "pypi.org", Name: "PyPI", Description: "Python package index search"},
	{Trigger: "a", URLTemplate: "https://www.amazon.com/s?k={{{s}}}", Domain: "www.amazon.com", Name: "Amazon", Description: "Amazon product search"},
	{Trigger: "r", URLTemplate: "https://www.reddit.com/search/?q={{{s}}}", Domain: "www.reddit.com", Name: "Reddit", Description: "Reddit post search"},
	{Trigger: "maps", URLTemplate: "https://www.google.com/maps/search/{{{s}}}", Domain: "www.google.com", Name: "Google Maps", Description: "Google Maps location search"},
	{Trigger: "img", URLTemplate: "https://www.google.com/search?tbm=isch&q={{{s}}}", Domain: "www.google.com", Name: "Google Images", Description: "Google Images search"},
	{Trigger: "tr", URLTemplate: "https://translate.google.com/?text={{{s}}}", Domain: "translate.google.com", Name: "Google Translate", Description: "Google Translate"},
	{Trigger: "news", URLTemplate: "https://news.google.com/search?q={{{s}}}", Domain: "news.google.com", Name: "Google News", Description: "Google News search"},
	{Trigger: "imdb", URLTemplate: "https://www.imdb.com/find/?q={{{s}}}", Domain: "www.imdb.com", Name: "IMDb", Description: "Internet Movie Database search"},
	{Trigger: "tw", URLTemplate: "https://twitter.com/search?q={{{s}}}", Domain: "twitter.com", Name: "Twitter", Description: "Twitter/X search"},
	{Trigger: "hn", URLTemplate: "https://hn.algolia.com/?q={{{s}}}", Domain: "hn.algolia.com", Name: "Hacker News", Description: "Hacker News search"},
	{Trigger: "mdn", URLTemplate: "https://developer.mozilla.org/search?q={{{s}}}", Domain: "developer.mozilla.org", Name: "MDN Web Docs", Description: "MDN developer documentation search"},
	{Trigger: "go", URLTemplate: "https://pkg.go.dev/search?q={{{s}}}", Domain: "pkg.go.dev", Name: "Go Packages", Description: "Go package documentation search"},
	{Trigger: "crates", URLTemplate: "https://crates.io/search?q={{{s}}}", Domain: "crates.io", Name: "crates.io", Description: "Rust crate search"},
}

// Default returns the registry's designated default bang, used when no
// trigger matches. The package init panics if it is absent, so
// this is safe to call unconditionally at request time.
func Default() Bang {
	for _, b := range Registry {
		if b.Trigger == DefaultTrigger {
			return b
		}
	}
	panic("bang: default trigger " + DefaultTrigger + " missing from registry")
}

// Lookup finds a bang by exact, case-insensitive trigger match.
func Lookup(trigger string) (Bang, bool) {
	t := foldTrigger(trigger)
	for _, b := range Registry {
		if b.Trigger == t {
			return b, true
		}
	}
	return Bang{}, false
}

func init() {
	seen := make(map[string]struct{}, len(Registry))
	hasDefault := false
	for _, b := range Registry {
		if b.Trigger == "" {
			panic("bang: empty trigger in registry")
		}
		if _, dup := seen[b.Trigger]; dup {
			panic("bang: duplicate trigger " + b.Trigger)
		}
		seen[b.Trigger] = struct{}{}
		if b.Trigger == DefaultTrigger {
			hasDefault = true
		}
	}
	if !hasDefault {
		panic("bang: registry has no default trigger " + DefaultTrigger)
	}
}
