package routine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dukerupert/routinely/recurrence"
)

var today = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

func TestScheduleFor(t *testing.T) {
	tests := []struct {
		name string
		p    recurrence.Pattern
		want Schedule
	}{
		{
			name: "plain daily",
			p:    recurrence.Pattern{Kind: recurrence.Daily},
			want: Schedule{Type: "daily"},
		},
		{
			name: "every other day gets an anchor",
			p:    recurrence.Pattern{Kind: recurrence.Daily, Interval: 2},
			want: Schedule{Type: "daily", Interval: 2, StartDate: "2026-08-29"},
		},
		{
			name: "weekdays",
			p:    recurrence.Pattern{Kind: recurrence.Weekdays},
			want: Schedule{Type: "weekly", Days: []string{"mon", "tue", "wed", "thu", "fri"}},
		},
		{
			name: "weekends",
			p:    recurrence.Pattern{Kind: recurrence.Weekends},
			want: Schedule{Type: "weekly", Days: []string{"sat", "sun"}},
		},
		{
			name: "weekly with days",
			p:    recurrence.Pattern{Kind: recurrence.Weekly, Days: []time.Weekday{time.Sunday, time.Wednesday}},
			want: Schedule{Type: "weekly", Days: []string{"sun", "wed"}},
		},
		{
			name: "biweekly without day",
			p:    recurrence.Pattern{Kind: recurrence.Biweekly},
			want: Schedule{Type: "weekly", Interval: 2, StartDate: "2026-08-29"},
		},
		{
			name: "biweekly with day",
			p:    recurrence.Pattern{Kind: recurrence.Biweekly, Days: []time.Weekday{time.Monday}},
			want: Schedule{Type: "weekly", Interval: 2, Days: []string{"mon"}, StartDate: "2026-08-29"},
		},
		{
			name: "monthly",
			p:    recurrence.Pattern{Kind: recurrence.Monthly},
			want: Schedule{Type: "monthly"},
		},
		{
			name: "quarterly",
			p:    recurrence.Pattern{Kind: recurrence.Quarterly},
			want: Schedule{Type: "quarterly"},
		},
		{
			name: "yearly",
			p:    recurrence.Pattern{Kind: recurrence.Yearly},
			want: Schedule{Type: "yearly"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScheduleFor(tt.p, today)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ScheduleFor mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDraftFromParse(t *testing.T) {
	r := Parse("every other monday standup", nil)
	d := r.Draft(today)

	wantSchedule := Schedule{Type: "weekly", Interval: 2, Days: []string{"mon"}, StartDate: "2026-08-29"}
	if diff := cmp.Diff(wantSchedule, d.Schedule); diff != "" {
		t.Errorf("schedule mismatch (-want +got):\n%s", diff)
	}
	if d.Name != "standup" {
		t.Errorf("Name = %q, want %q", d.Name, "standup")
	}
	if d.TimeOfDay != nil {
		t.Errorf("TimeOfDay = %v, want nil", *d.TimeOfDay)
	}
	if d.DefaultAssignee != nil {
		t.Errorf("DefaultAssignee = %v, want nil", *d.DefaultAssignee)
	}
	if d.RawInput != "every other monday standup" {
		t.Errorf("RawInput = %q", d.RawInput)
	}
}

func TestDraftCarriesExactTimeAndAssignee(t *testing.T) {
	r := Parse("iris walks jax every weekday at 7am", people)
	d := r.Draft(today)

	if d.TimeOfDay == nil || *d.TimeOfDay != "07:00" {
		t.Errorf("TimeOfDay = %v, want 07:00", d.TimeOfDay)
	}
	if d.DefaultAssignee == nil || *d.DefaultAssignee != "iris-id" {
		t.Errorf("DefaultAssignee = %v, want iris-id", d.DefaultAssignee)
	}
}

func TestDraftJSON(t *testing.T) {
	r := Parse("iris walks jax every weekday at 7am", people)
	b, err := json.Marshal(r.Draft(today))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"name":"walks jax",` +
		`"schedule":{"type":"weekly","days":["mon","tue","wed","thu","fri"]},` +
		`"time_of_day":"07:00",` +
		`"default_assignee":"iris-id",` +
		`"raw_input":"iris walks jax every weekday at 7am"}`
	if string(b) != want {
		t.Errorf("draft json = %s, want %s", b, want)
	}
}

func TestDraftJSONNulls(t *testing.T) {
	b, err := json.Marshal(Parse("take vitamins", nil).Draft(today))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"name":"take vitamins",` +
		`"schedule":{"type":"daily"},` +
		`"time_of_day":null,` +
		`"default_assignee":null,` +
		`"raw_input":"take vitamins"}`
	if string(b) != want {
		t.Errorf("draft json = %s, want %s", b, want)
	}
}
