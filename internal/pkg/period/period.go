// Package period computes calendar-month boundaries and working-day counts
// for the payroll reports.
package period

import (
	"time"

	"github.com/rickar/cal/v2"
)

// Period is an inclusive calendar-month date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthBounds returns the first and last day of d's month.
func MonthBounds(d time.Time) Period {
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Period{Start: start, End: end}
}

// YM formats the period month as "2006-01", used for archive directories.
func (p Period) YM() string {
	return p.Start.Format("2006-01")
}

// YMKey formats the period month as "2006_01", used in artifact file names.
func (p Period) YMKey() string {
	return p.Start.Format("2006_01")
}

// Days returns the inclusive length of the period in days.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// BusinessDaysInMonth counts the weekdays (Mon-Fri) in d's month, excluding
// the given holidays. No holiday provider is wired in; callers that pass
// nothing get a pure weekday count.
func BusinessDaysInMonth(d time.Time, holidays ...time.Time) int {
	excluded := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		excluded[h.Format("2006-01-02")] = true
	}

	workweek := cal.NewBusinessCalendar()
	p := MonthBounds(d)

	days := 0
	for cur := p.Start; !cur.After(p.End); cur = cur.AddDate(0, 0, 1) {
		if workweek.IsWorkday(cur) && !excluded[cur.Format("2006-01-02")] {
			days++
		}
	}
	return days
}
