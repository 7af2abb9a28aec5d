package bang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchBangs_TriggerPrefix(t *testing.T) {
	matches := MatchBangs("g", 5, 2)
	require_contains_trigger(t, matches, "g")
	require_contains_trigger(t, matches, "gh")
	require_contains_trigger(t, matches, "ghr")
}

func TestMatchBangs_Tier2NameMatchExcludesTier1(t *testing.T) {
	matches := MatchBangs("git", 5, 2)
	// No trigger starts with "git", so tier 1 is empty; tier 2 holds the
	// name-prefix matches "GitHub" and "GitHub Repo", in registry order.
	var triggers []string
	for _, m := range matches {
		triggers = append(triggers, m.Trigger)
	}
	assert.Equal(t, []string{"gh", "ghr"}, triggers)

	// For "g", Google, GitHub and GitHub Repo are already tier 1 by trigger,
	// so tier 2 takes the next name matches: Google Maps and Google Images.
	triggers = nil
	for _, m := range MatchBangs("g", 5, 2) {
		triggers = append(triggers, m.Trigger)
	}
	assert.Equal(t, []string{"g", "gh", "ghr", "go", "maps", "img"}, triggers)
}

func TestMatchBangs_RespectsTierCaps(t *testing.T) {
	matches := MatchBangs("", 3, 1)
	assert.LessOrEqual(t, len(matches), 4)
}

func require_contains_trigger(t *testing.T, matches []Bang, trigger string) {
	t.Helper()
	for _, m := range matches {
		if m.Trigger == trigger {
			return
		}
	}
	t.Fatalf("expected matches to contain trigger %q, got %+v", trigger, matches)
}
