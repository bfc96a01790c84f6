package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"time"

	"github.com/hbfa/milestones/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a YYYY-MM-DD flag. The empty string is accepted and means
// "clear".
type dateValue struct {
	value *string
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(p *string) *dateValue {
	return &dateValue{value: p}
}

func (d *dateValue) String() string {
	if d.value == nil {
		return ""
	}
	return *d.value
}

func (d *dateValue) Set(s string) error {
	if err := validateOptionalDate(s); err != nil {
		return err
	}
	*d.value = s
	return nil
}

func (d *dateValue) Type() string { return "date" }

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// dateFlag registers a YYYY-MM-DD flag on fs.
func dateFlag(fs *pflag.FlagSet, p *string, name, usage string) {
	fs.Var(newDateValue(p), name, usage)
}

// applyOverrides merges key=date pairs into overrides. An empty date removes
// the key.
func applyOverrides(overrides, changes map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(overrides)+len(changes))
	maps.Copy(out, overrides)
	for k, v := range changes {
		if err := validateOptionalDate(v); err != nil {
			return nil, fmt.Errorf("override %s: %w", k, err)
		}
		if v == "" {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
