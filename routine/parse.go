package routine

import (
	"sort"
)

// Parse turns one free-form sentence into a structured routine. It never
// fails: unrecognized text becomes the action, and with no frequency
// language at all the recurrence defaults to plain daily.
//
// Extraction runs in four phases over the same string (exact time, then
// frequency, then time-of-day words, then a leading assignee), each phase
// skipping character ranges a previous phase already claimed. The phase
// order and the matcher order inside each phase are fixed; they are how
// ambiguous input is resolved.
func Parse(raw string, people []Person) Routine {
	lower := lowerASCII(raw)

	var spans []span
	clock := extractTime(lower, &spans)
	pattern := extractRecurrence(lower, &spans)
	timeOfDay := extractTimeOfDay(lower, &spans)
	assigneeID, assigneeName := extractAssignee(lower, people, &spans)

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	action, tokens := reconstruct(raw, spans)

	return Routine{
		Raw:          raw,
		Assignee:     assigneeID,
		AssigneeName: assigneeName,
		Action:       action,
		Recurrence:   pattern,
		TimeOfDay:    timeOfDay,
		Time:         clock,
		Tokens:       tokens,
	}
}

// lowerASCII lowercases A-Z only. Unicode-aware lowering can change byte
// lengths, and the extraction spans must index the original string exactly.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
