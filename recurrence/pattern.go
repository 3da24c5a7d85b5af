// Package recurrence describes how often a routine repeats: the parsed
// cadence (daily, specific weekdays, every other week, ...) plus its
// display labels and RRULE form.
package recurrence

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Kind int

const (
	Daily Kind = iota
	Weekdays
	Weekends
	Weekly
	Biweekly
	Monthly
	Quarterly
	Yearly
)

var kindNames = map[Kind]string{
	Daily:     "daily",
	Weekdays:  "weekdays",
	Weekends:  "weekends",
	Weekly:    "weekly",
	Biweekly:  "biweekly",
	Monthly:   "monthly",
	Quarterly: "quarterly",
	Yearly:    "yearly",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Pattern is the parsed cadence of a routine.
// Interval is meaningful only for Daily (0 = plain daily, >=2 = every N days).
// Days is required for Weekly and optional for Biweekly ("every other Monday"
// carries one; "every other week" carries none). Days is always deduplicated
// and sorted ascending (Sunday first, matching time.Weekday).
type Pattern struct {
	Kind     Kind
	Interval int
	Days     []time.Weekday
}

var dayCodes = map[time.Weekday]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}

// DayCode returns the 3-letter lowercase code used in persistence records.
func DayCode(d time.Weekday) string {
	return dayCodes[d]
}

// NormDays deduplicates and sorts a weekday set ascending.
func NormDays(days []time.Weekday) []time.Weekday {
	if len(days) == 0 {
		return nil
	}
	seen := make(map[time.Weekday]bool, len(days))
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Norm returns a copy with the Days invariant enforced.
func (p Pattern) Norm() Pattern {
	p.Days = NormDays(p.Days)
	return p
}

// Label is the canonical upper-case rendering used for day-pattern tokens:
// WEEKDAYS, EVERY OTHER DAY, MON, WED, and so on.
func (p Pattern) Label() string {
	switch p.Kind {
	case Daily:
		if p.Interval == 2 {
			return "EVERY OTHER DAY"
		}
		if p.Interval > 2 {
			return fmt.Sprintf("EVERY %d DAYS", p.Interval)
		}
		return "DAILY"
	case Weekdays:
		return "WEEKDAYS"
	case Weekends:
		return "WEEKENDS"
	case Weekly:
		return strings.ToUpper(joinDayAbbrevs(p.Days))
	case Biweekly:
		if len(p.Days) > 0 {
			return "EVERY OTHER " + strings.ToUpper(p.Days[0].String()[:3])
		}
		return "EVERY OTHER WEEK"
	case Monthly:
		return "MONTHLY"
	case Quarterly:
		return "QUARTERLY"
	case Yearly:
		return "YEARLY"
	}
	return ""
}

// Describe returns a human-readable summary of the pattern, suitable for
// preview chips ("Every Mon, Wed").
func (p Pattern) Describe() string {
	switch p.Kind {
	case Daily:
		if p.Interval == 2 {
			return "Every other day"
		}
		if p.Interval > 2 {
			return fmt.Sprintf("Every %d days", p.Interval)
		}
		return "Daily"
	case Weekdays:
		return "Weekdays"
	case Weekends:
		return "Weekends"
	case Weekly:
		return "Every " + joinDayAbbrevs(p.Days)
	case Biweekly:
		if len(p.Days) > 0 {
			return "Every other " + p.Days[0].String()
		}
		return "Every other week"
	case Monthly:
		return "Monthly"
	case Quarterly:
		return "Quarterly"
	case Yearly:
		return "Yearly"
	}
	return ""
}

func joinDayAbbrevs(days []time.Weekday) string {
	var names []string
	for _, d := range days {
		names = append(names, d.String()[:3])
	}
	return strings.Join(names, ", ")
}
