// Package routine parses free-form routine sentences ("iris walks jax every
// weekday at 7am") into a structured, deterministic description: who is
// responsible, what the action is, how often it recurs, and a token stream
// for highlighted rendering.
//
// Parse is a pure function. It never fails; degenerate input simply yields a
// routine whose action is the unrecognized text (or empty, in which case
// Valid reports false).
package routine

import (
	"strings"

	"github.com/dukerupert/routinely/recurrence"
)

// Person is a known household member the parser can match as an assignee.
// The list is read-only input; IDs are opaque to the parser.
type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TokenKind string

const (
	TokenPerson     TokenKind = "person"
	TokenAction     TokenKind = "action"
	TokenDayPattern TokenKind = "day-pattern"
	TokenTimeOfDay  TokenKind = "time-of-day"
	TokenTime       TokenKind = "time"
	TokenPlain      TokenKind = "plain"
)

// Token is one classified fragment of the input, in original reading order.
type Token struct {
	Text string    `json:"text"`
	Kind TokenKind `json:"kind"`
}

// Routine is the result of parsing one sentence. Every field is set by Parse
// and immutable afterwards.
type Routine struct {
	// Raw is the input verbatim, never trimmed or re-cased.
	Raw string `json:"raw"`

	// Assignee and AssigneeName are both empty or both set.
	Assignee     string `json:"assignee,omitempty"`
	AssigneeName string `json:"assignee_name,omitempty"`

	// Action is the residual activity text after all recognized spans are
	// removed.
	Action string `json:"action"`

	Recurrence recurrence.Pattern `json:"recurrence"`

	// TimeOfDay is "morning", "afternoon" or "evening" when one was named.
	TimeOfDay string `json:"time_of_day,omitempty"`

	// Time is an exact clock time in 24-hour HH:MM form when one was named.
	Time string `json:"time,omitempty"`

	Tokens []Token `json:"tokens"`
}

// Valid reports whether the parse carries a usable action. Input made up
// entirely of frequency and time words ("every day at 7am") parses cleanly
// but cannot be saved as a routine.
func (r Routine) Valid() bool {
	return strings.TrimSpace(r.Action) != ""
}
