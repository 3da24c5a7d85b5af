package recurrence

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNormDays(t *testing.T) {
	tests := []struct {
		name string
		in   []time.Weekday
		want []time.Weekday
	}{
		{"empty", nil, nil},
		{"sorted", []time.Weekday{time.Monday, time.Wednesday}, []time.Weekday{time.Monday, time.Wednesday}},
		{"unsorted", []time.Weekday{time.Friday, time.Monday}, []time.Weekday{time.Monday, time.Friday}},
		{"duplicates", []time.Weekday{time.Monday, time.Monday, time.Sunday}, []time.Weekday{time.Sunday, time.Monday}},
	}

	for _, tt := range tests {
		got := NormDays(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: NormDays mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		p    Pattern
		want string
	}{
		{Pattern{Kind: Daily}, "DAILY"},
		{Pattern{Kind: Daily, Interval: 2}, "EVERY OTHER DAY"},
		{Pattern{Kind: Daily, Interval: 3}, "EVERY 3 DAYS"},
		{Pattern{Kind: Weekdays}, "WEEKDAYS"},
		{Pattern{Kind: Weekends}, "WEEKENDS"},
		{Pattern{Kind: Weekly, Days: []time.Weekday{time.Monday}}, "MON"},
		{Pattern{Kind: Weekly, Days: []time.Weekday{time.Monday, time.Wednesday}}, "MON, WED"},
		{Pattern{Kind: Biweekly}, "EVERY OTHER WEEK"},
		{Pattern{Kind: Biweekly, Days: []time.Weekday{time.Monday}}, "EVERY OTHER MON"},
		{Pattern{Kind: Monthly}, "MONTHLY"},
		{Pattern{Kind: Quarterly}, "QUARTERLY"},
		{Pattern{Kind: Yearly}, "YEARLY"},
	}

	for _, tt := range tests {
		if got := tt.p.Label(); got != tt.want {
			t.Errorf("Label(%+v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		p    Pattern
		want string
	}{
		{Pattern{Kind: Daily}, "Daily"},
		{Pattern{Kind: Daily, Interval: 2}, "Every other day"},
		{Pattern{Kind: Daily, Interval: 4}, "Every 4 days"},
		{Pattern{Kind: Weekdays}, "Weekdays"},
		{Pattern{Kind: Weekends}, "Weekends"},
		{Pattern{Kind: Weekly, Days: []time.Weekday{time.Monday, time.Wednesday}}, "Every Mon, Wed"},
		{Pattern{Kind: Biweekly}, "Every other week"},
		{Pattern{Kind: Biweekly, Days: []time.Weekday{time.Monday}}, "Every other Monday"},
		{Pattern{Kind: Monthly}, "Monthly"},
		{Pattern{Kind: Quarterly}, "Quarterly"},
		{Pattern{Kind: Yearly}, "Yearly"},
	}

	for _, tt := range tests {
		if got := tt.p.Describe(); got != tt.want {
			t.Errorf("Describe(%+v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestDayCode(t *testing.T) {
	want := map[time.Weekday]string{
		time.Sunday:    "sun",
		time.Monday:    "mon",
		time.Tuesday:   "tue",
		time.Wednesday: "wed",
		time.Thursday:  "thu",
		time.Friday:    "fri",
		time.Saturday:  "sat",
	}
	for d, code := range want {
		if got := DayCode(d); got != code {
			t.Errorf("DayCode(%v) = %q, want %q", d, got, code)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := Quarterly.String(); got != "quarterly" {
		t.Errorf("Quarterly.String() = %q, want %q", got, "quarterly")
	}
	if got := Weekdays.String(); got != "weekdays" {
		t.Errorf("Weekdays.String() = %q, want %q", got, "weekdays")
	}
}
