package domain

// Holiday is a non-working calendar date for a project.
type Holiday struct {
	ProjectID string `json:"project_id"`
	Date      string `json:"date"`
	Name      string `json:"name,omitempty"`
}

// HolidaySet is an immutable-by-convention lookup of ISO holiday dates.
type HolidaySet map[string]struct{}

// NewHolidaySet builds a set from ISO date strings. Empty strings are skipped.
func NewHolidaySet(dates ...string) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		if d == "" {
			continue
		}
		set[d] = struct{}{}
	}
	return set
}

// Contains reports whether iso is a listed holiday. A nil set is empty.
func (h HolidaySet) Contains(iso string) bool {
	_, ok := h[iso]
	return ok
}

// HolidayDates extracts the non-empty dates of a holiday list.
func HolidayDates(holidays []Holiday) []string {
	dates := make([]string, 0, len(holidays))
	for _, h := range holidays {
		if h.Date != "" {
			dates = append(dates, h.Date)
		}
	}
	return dates
}
