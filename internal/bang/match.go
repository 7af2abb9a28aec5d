package bang

import "strings"

// MatchBangs implements a two-tier bang match policy:
// tier 1 is trigger-prefix matches in registry order, tier 2 is name-prefix
// matches (excluding anything already in tier 1) in registry order. Tier 1
// entries are never displaced by tier 2.
func MatchBangs(prefix string, maxTier1, maxTier2 int) []Bang {
	p := foldTrigger(prefix)

	tier1 := make([]Bang, 0, maxTier1)
	inTier1 := make(map[string]struct{}, maxTier1)
	for _, b := range Registry {
		if len(tier1) >= maxTier1 {
			break
		}
		if strings.HasPrefix(b.Trigger, p) {
			tier1 = append(tier1, b)
			inTier1[b.Trigger] = struct{}{}
		}
	}

	tier2 := make([]Bang, 0, maxTier2)
	for _, b := range Registry {
		if len(tier2) >= maxTier2 {
			break
		}
		if _, already := inTier1[b.Trigger]; already {
			continue
		}
		if strings.HasPrefix(strings.ToLower(b.Name), p) {
			tier2 = append(tier2, b)
		}
	}

	return append(tier1, tier2...)
}
