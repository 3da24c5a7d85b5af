package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var toRRuleDay = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// rrule-go numbers weekdays from Monday=0.
var fromRRuleDay = map[int]time.Weekday{
	0: time.Monday,
	1: time.Tuesday,
	2: time.Wednesday,
	3: time.Thursday,
	4: time.Friday,
	5: time.Saturday,
	6: time.Sunday,
}

var weekdayRun = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
var weekendRun = []time.Weekday{time.Sunday, time.Saturday}

// RRule renders the pattern as an RFC 5545 recurrence string, e.g.
// "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO". Quarterly has no RRULE frequency of its
// own and maps to FREQ=MONTHLY;INTERVAL=3.
func (p Pattern) RRule() string {
	opt := rrule.ROption{}
	switch p.Kind {
	case Daily:
		opt.Freq = rrule.DAILY
		if p.Interval >= 2 {
			opt.Interval = p.Interval
		}
	case Weekdays:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = rruleDays(weekdayRun)
	case Weekends:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = rruleDays(weekendRun)
	case Weekly:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = rruleDays(p.Days)
	case Biweekly:
		opt.Freq = rrule.WEEKLY
		opt.Interval = 2
		opt.Byweekday = rruleDays(p.Days)
	case Monthly:
		opt.Freq = rrule.MONTHLY
	case Quarterly:
		opt.Freq = rrule.MONTHLY
		opt.Interval = 3
	case Yearly:
		opt.Freq = rrule.YEARLY
	}
	return opt.RRuleString()
}

// FromRRule parses an RRULE string back into a Pattern. It canonicalizes the
// Mon-Fri and Sat-Sun day sets to Weekdays/Weekends and MONTHLY;INTERVAL=3 to
// Quarterly, so FromRRule(p.RRule()) round-trips for every representable
// pattern. Rules outside the representable set are rejected.
func FromRRule(s string) (Pattern, error) {
	if s == "" {
		return Pattern{}, fmt.Errorf("empty rrule")
	}
	opt, err := rrule.StrToROption(s)
	if err != nil {
		return Pattern{}, fmt.Errorf("parse rrule %q: %w", s, err)
	}

	interval := opt.Interval
	if interval < 1 {
		interval = 1
	}

	switch opt.Freq {
	case rrule.DAILY:
		if interval >= 2 {
			return Pattern{Kind: Daily, Interval: interval}, nil
		}
		return Pattern{Kind: Daily}, nil

	case rrule.WEEKLY:
		days := make([]time.Weekday, 0, len(opt.Byweekday))
		for _, wd := range opt.Byweekday {
			d, ok := fromRRuleDay[wd.Day()]
			if !ok {
				return Pattern{}, fmt.Errorf("rrule %q: unknown weekday %v", s, wd)
			}
			days = append(days, d)
		}
		days = NormDays(days)

		switch interval {
		case 1:
			if sameDays(days, NormDays(weekdayRun)) {
				return Pattern{Kind: Weekdays}, nil
			}
			if sameDays(days, NormDays(weekendRun)) {
				return Pattern{Kind: Weekends}, nil
			}
			if len(days) == 0 {
				return Pattern{}, fmt.Errorf("rrule %q: weekly rule without BYDAY", s)
			}
			return Pattern{Kind: Weekly, Days: days}, nil
		case 2:
			return Pattern{Kind: Biweekly, Days: days}, nil
		default:
			return Pattern{}, fmt.Errorf("rrule %q: unsupported weekly interval %d", s, interval)
		}

	case rrule.MONTHLY:
		switch interval {
		case 1:
			return Pattern{Kind: Monthly}, nil
		case 3:
			return Pattern{Kind: Quarterly}, nil
		default:
			return Pattern{}, fmt.Errorf("rrule %q: unsupported monthly interval %d", s, interval)
		}

	case rrule.YEARLY:
		if interval != 1 {
			return Pattern{}, fmt.Errorf("rrule %q: unsupported yearly interval %d", s, interval)
		}
		return Pattern{Kind: Yearly}, nil
	}

	return Pattern{}, fmt.Errorf("rrule %q: unsupported frequency", s)
}

func rruleDays(days []time.Weekday) []rrule.Weekday {
	out := make([]rrule.Weekday, len(days))
	for i, d := range days {
		out[i] = toRRuleDay[d]
	}
	return out
}

func sameDays(a, b []time.Weekday) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
