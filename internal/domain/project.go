package domain

import "slices"

// ProjectOptions are the projects offered for selection.
var ProjectOptions = []string{"Aria", "Fusion", "SoMi Towns", "SoMi A", "SoMi B", "Vida", "Vida 2"}

// projectAliases maps historical display names to canonical project ids.
// Read-only after init.
var projectAliases = map[string]string{
	"Fusion":              "Fusion",
	"Fusion - Hayward":    "Fusion",
	"Fusion Hayward":      "Fusion",
	"Fusion - Live-Work":  "Fusion",
	"SoMi Haypark":        "SoMi Towns",
	"SoMi HayPark":        "SoMi Towns",
	"SoMi Towns":          "SoMi Towns",
	"SoMi HayView":        "SoMi A",
	"SoMi Hayview":        "SoMi A",
	"SoMi Building A":     "SoMi A",
	"SoMi A":              "SoMi A",
	"SoMi Building B":     "SoMi B",
	"SoMi Haypark Condos": "SoMi B",
	"SoMi B":              "SoMi B",
}

// aliasesByCanonical is the reverse index, aliases sorted for stable lookup
// order.
var aliasesByCanonical = buildAliasIndex(projectAliases)

func buildAliasIndex(aliases map[string]string) map[string][]string {
	idx := make(map[string][]string)
	for alias, canonical := range aliases {
		idx[canonical] = append(idx[canonical], alias)
	}
	for k := range idx {
		slices.Sort(idx[k])
	}
	return idx
}

// CanonicalProjectID maps a display name to its canonical id. Unknown names
// are returned unchanged.
func CanonicalProjectID(name string) string {
	if name == "" {
		return ""
	}
	if c, ok := projectAliases[name]; ok {
		return c
	}
	return name
}

// ProjectAliasCandidates returns the canonical id followed by every alias
// that maps to it. Stored data may live under any of them.
func ProjectAliasCandidates(name string) []string {
	canonical := CanonicalProjectID(name)
	if canonical == "" {
		return nil
	}
	out := []string{canonical}
	for _, alias := range aliasesByCanonical[canonical] {
		if alias != canonical {
			out = append(out, alias)
		}
	}
	return out
}

// PrioritizeCandidates moves resolved to the front when it is one of the
// candidates.
func PrioritizeCandidates(candidates []string, resolved string) []string {
	if resolved == "" || !slices.Contains(candidates, resolved) {
		return candidates
	}
	out := []string{resolved}
	for _, c := range candidates {
		if c != resolved {
			out = append(out, c)
		}
	}
	return out
}
