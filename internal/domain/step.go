package domain

// Step is one entry of an ordered milestone template.
type Step struct {
	Key    string `json:"key"`
	Code   string `json:"code,omitempty"`
	Label  string `json:"label"`
	Offset int    `json:"offset"` // business days from the previous resolved date

	// Manual steps copy the running date instead of consuming Offset.
	Manual bool `json:"manual,omitempty"`

	// Conditional names the activation flag gating this step ("" = always on).
	Conditional string `json:"conditional,omitempty"`

	// Stage steps take their date from the attested stage state first.
	Stage bool `json:"stage,omitempty"`
}

// ResolvedRow is the projection output for a single step.
type ResolvedRow struct {
	Step
	Active        bool   `json:"active"`
	Computed      string `json:"computed"`
	StageComplete bool   `json:"stage_complete,omitempty"`
}

// StageKeys returns the keys of the stage steps in template order.
func StageKeys(steps []Step) []string {
	var keys []string
	for _, s := range steps {
		if s.Stage {
			keys = append(keys, s.Key)
		}
	}
	return keys
}

// FindRow returns the row with the given key, or false.
func FindRow(rows []ResolvedRow, key string) (ResolvedRow, bool) {
	for _, r := range rows {
		if r.Key == key {
			return r, true
		}
	}
	return ResolvedRow{}, false
}
