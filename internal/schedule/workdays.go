package schedule

import (
	"time"

	"github.com/hbfa/milestones/internal/domain"
)

// AddWorkdays moves start by days business days. Saturdays, Sundays and
// dates in holidays are skipped in either direction and the start date is
// never counted. An empty start or zero days returns start unchanged, as does
// a start that is not a YYYY-MM-DD date.
func AddWorkdays(start string, days int, holidays domain.HolidaySet) string {
	if start == "" || days == 0 {
		return start
	}
	d, err := time.Parse(domain.DateLayout, start)
	if err != nil {
		return start
	}

	step := 1
	remaining := days
	if days < 0 {
		step = -1
		remaining = -days
	}
	for remaining > 0 {
		d = d.AddDate(0, 0, step)
		if IsBusinessDay(d, holidays) {
			remaining--
		}
	}
	return d.Format(domain.DateLayout)
}

// IsBusinessDay reports whether d is a weekday not listed in holidays.
func IsBusinessDay(d time.Time, holidays domain.HolidaySet) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !holidays.Contains(d.Format(domain.DateLayout))
}

// BusinessDaysBetween counts business days in (from, to]. It returns a
// negative count when to is before from and false when either date does not
// parse.
func BusinessDaysBetween(from, to string, holidays domain.HolidaySet) (int, bool) {
	a, err := time.Parse(domain.DateLayout, from)
	if err != nil {
		return 0, false
	}
	b, err := time.Parse(domain.DateLayout, to)
	if err != nil {
		return 0, false
	}
	sign := 1
	if b.Before(a) {
		a, b = b, a
		sign = -1
	}
	n := 0
	for d := a.AddDate(0, 0, 1); !d.After(b); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d, holidays) {
			n++
		}
	}
	return sign * n, true
}
