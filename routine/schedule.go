package routine

import (
	"time"

	"github.com/dukerupert/routinely/recurrence"
)

const dateLayout = "2006-01-02"

// Schedule is the persistence-ready recurrence descriptor stored alongside a
// routine. Days uses 3-letter lowercase codes; StartDate is set only for
// interval-bearing cadences so a downstream expander has an anchor date.
type Schedule struct {
	Type      string   `json:"type"`
	Days      []string `json:"days,omitempty"`
	Interval  int      `json:"interval,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
}

// ScheduleFor converts a recurrence pattern into its persistence descriptor.
// today anchors interval-bearing patterns ("every other day", biweekly).
func ScheduleFor(p recurrence.Pattern, today time.Time) Schedule {
	switch p.Kind {
	case recurrence.Daily:
		if p.Interval >= 2 {
			return Schedule{Type: "daily", Interval: p.Interval, StartDate: today.Format(dateLayout)}
		}
		return Schedule{Type: "daily"}
	case recurrence.Weekdays:
		return Schedule{Type: "weekly", Days: []string{"mon", "tue", "wed", "thu", "fri"}}
	case recurrence.Weekends:
		return Schedule{Type: "weekly", Days: []string{"sat", "sun"}}
	case recurrence.Weekly:
		return Schedule{Type: "weekly", Days: dayCodeList(p.Days)}
	case recurrence.Biweekly:
		s := Schedule{Type: "weekly", Interval: 2, StartDate: today.Format(dateLayout)}
		if len(p.Days) > 0 {
			s.Days = dayCodeList(p.Days)
		}
		return s
	case recurrence.Monthly:
		return Schedule{Type: "monthly"}
	case recurrence.Quarterly:
		return Schedule{Type: "quarterly"}
	case recurrence.Yearly:
		return Schedule{Type: "yearly"}
	}
	return Schedule{Type: "daily"}
}

func dayCodeList(days []time.Weekday) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = recurrence.DayCode(d)
	}
	return out
}

// Draft is the full creation payload handed to the persistence collaborator.
// TimeOfDay carries the exact parsed clock time; the coarse
// morning/afternoon/evening word is a display concern and stays on Routine.
type Draft struct {
	Name            string   `json:"name"`
	Schedule        Schedule `json:"schedule"`
	TimeOfDay       *string  `json:"time_of_day"`
	DefaultAssignee *string  `json:"default_assignee"`
	RawInput        string   `json:"raw_input"`
}

// Draft builds the storage record for this parse.
func (r Routine) Draft(today time.Time) Draft {
	d := Draft{
		Name:     r.Action,
		Schedule: ScheduleFor(r.Recurrence, today),
		RawInput: r.Raw,
	}
	if r.Time != "" {
		t := r.Time
		d.TimeOfDay = &t
	}
	if r.Assignee != "" {
		id := r.Assignee
		d.DefaultAssignee = &id
	}
	return d
}
