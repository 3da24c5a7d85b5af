package routine

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dukerupert/routinely/recurrence"
)

// span is one claimed character range of the input, attributed to a single
// recognized category. Spans never overlap; reconstruction slices the
// original string around them.
type span struct {
	start, end int
	kind       TokenKind
	text       string // canonical display rendering for the token stream
}

func overlaps(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}

type match struct {
	start, end int
	groups     []string
}

// firstMatch returns the leftmost match of re that does not touch an already
// claimed span.
func firstMatch(re *regexp.Regexp, lower string, spans []span) *match {
	for _, idx := range re.FindAllStringSubmatchIndex(lower, -1) {
		if overlaps(spans, idx[0], idx[1]) {
			continue
		}
		return &match{idx[0], idx[1], matchGroups(lower, idx)}
	}
	return nil
}

func matchGroups(s string, idx []int) []string {
	out := make([]string, len(idx)/2)
	for i := range out {
		if idx[2*i] >= 0 {
			out[i] = s[idx[2*i]:idx[2*i+1]]
		}
	}
	return out
}

// extractTime runs Phase A: the "at ..." battery in priority order, then the
// bare/compact battery only when no "at" form matched anywhere. First valid
// unclaimed match wins.
func extractTime(lower string, spans *[]span) string {
	for _, battery := range [][]timeMatcher{atTimeMatchers, bareTimeMatchers} {
		for _, tm := range battery {
			for _, idx := range tm.re.FindAllStringSubmatchIndex(lower, -1) {
				if overlaps(*spans, idx[0], idx[1]) {
					continue
				}
				hhmm, ok := tm.build(matchGroups(lower, idx))
				if !ok {
					continue
				}
				*spans = append(*spans, span{idx[0], idx[1], TokenTime, CompactTime(hhmm)})
				return hhmm
			}
		}
	}
	return ""
}

// Day-name vocabularies. The loose no-"every" pass accepts only full names
// (optionally pluralized) so stray words like "sun" in "buy sun lotion"
// don't fabricate a weekly recurrence.
const (
	dayFull = `sunday|monday|tuesday|wednesday|thursday|friday|saturday`
	dayAbbr = `sun|mon|tues|tue|wed|thurs|thur|thu|fri|sat`
	dayName = `(?:` + dayFull + `|` + dayAbbr + `)`
	daySep  = `(?:\s*,\s*(?:and\s+)?|\s+and\s+)`
)

var (
	dayNameRe    = regexp.MustCompile(dayName)
	everyOtherRe = regexp.MustCompile(`\bevery other (` + dayName + `)s?\b`)
	everyListRe  = regexp.MustCompile(`\bevery ((?:` + dayName + `)s?(?:` + daySep + `(?:` + dayName + `)s?)*)\b`)
	looseListRe  = regexp.MustCompile(`\b(?:on\s+)?((?:` + dayFull + `)s?(?:` + daySep + `(?:` + dayFull + `)s?)*)\b`)
	timeOfDayRe  = regexp.MustCompile(`\b(morning|afternoon|evening)\b`)
)

var weekdayByPrefix = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

func weekdayOf(name string) time.Weekday {
	return weekdayByPrefix[name[:3]]
}

func dayList(listText string) []time.Weekday {
	var days []time.Weekday
	for _, name := range dayNameRe.FindAllString(listText, -1) {
		days = append(days, weekdayOf(name))
	}
	return days
}

type freqMatcher struct {
	re         *regexp.Regexp
	claimGroup int // submatch to claim instead of the whole match
	build      func(m []string) recurrence.Pattern
}

func fixedPattern(p recurrence.Pattern) func([]string) recurrence.Pattern {
	return func([]string) recurrence.Pattern { return p }
}

// The frequency battery, tried strictly top to bottom. Interval and
// "every other" forms sit above their plain counterparts so they are never
// shadowed ("every other day" must not read as "every day" plus noise).
var freqMatchers = []freqMatcher{
	{re: regexp.MustCompile(`\bevery other day\b|\balternate days?\b`),
		build: fixedPattern(recurrence.Pattern{Kind: recurrence.Daily, Interval: 2})},
	{re: regexp.MustCompile(`\bevery other week\b|\bbi-?weekly\b|\bfortnightly\b|\bevery (?:two|2) weeks\b`),
		build: fixedPattern(recurrence.Pattern{Kind: recurrence.Biweekly})},
	{re: regexp.MustCompile(`\bquarterly\b|\bevery quarter\b|\bevery (?:three|3) months\b`),
		build: fixedPattern(recurrence.Pattern{Kind: recurrence.Quarterly})},
	{re: regexp.MustCompile(`\byearly\b|\bannually\b|\bevery year\b`),
		build: fixedPattern(recurrence.Pattern{Kind: recurrence.Yearly})},
	{re: regexp.MustCompile(`\bmonthly\b|\bevery month\b`),
		build: fixedPattern(recurrence.Pattern{Kind: recurrence.Monthly})},
	{re: regexp.MustCompile(`\b(?:every )?weekdays?\b|\b(?:every )?mon(?:day)?\s*(?:-|to|through)\s*fri(?:day)?\b`),
		build: fixedPattern(recurrence.Pattern{Kind: recurrence.Weekdays})},
	{re: regexp.MustCompile(`\b(?:every )?weekends?\b|\b(?:every )?sat(?:urday)?\s+and\s+sun(?:day)?\b`),
		build: fixedPattern(recurrence.Pattern{Kind: recurrence.Weekends})},
	{re: regexp.MustCompile(`\bevery day\b|\bdaily\b`),
		build: fixedPattern(recurrence.Pattern{Kind: recurrence.Daily})},
	// "every morning" is daily; claim only "every" so the time-of-day phase
	// still sees "morning".
	{re: regexp.MustCompile(`\b(every)\s+(?:morning|afternoon|evening)\b`), claimGroup: 1,
		build: fixedPattern(recurrence.Pattern{Kind: recurrence.Daily})},
}

// extractRecurrence runs Phase B. After the fixed battery come two narrower
// passes ("every other <day>", then "every <day list>"), then the loose
// day-detection pass that needs no "every" at all. With no frequency
// language anywhere the routine is plain daily.
func extractRecurrence(lower string, spans *[]span) recurrence.Pattern {
	for _, fm := range freqMatchers {
		for _, idx := range fm.re.FindAllStringSubmatchIndex(lower, -1) {
			start, end := idx[0], idx[1]
			if fm.claimGroup > 0 {
				start, end = idx[2*fm.claimGroup], idx[2*fm.claimGroup+1]
			}
			if overlaps(*spans, start, end) {
				continue
			}
			p := fm.build(matchGroups(lower, idx)).Norm()
			*spans = append(*spans, span{start, end, TokenDayPattern, p.Label()})
			return p
		}
	}

	if m := firstMatch(everyOtherRe, lower, *spans); m != nil {
		p := recurrence.Pattern{Kind: recurrence.Biweekly, Days: []time.Weekday{weekdayOf(m.groups[1])}}.Norm()
		*spans = append(*spans, span{m.start, m.end, TokenDayPattern, p.Label()})
		return p
	}

	if m := firstMatch(everyListRe, lower, *spans); m != nil {
		p := recurrence.Pattern{Kind: recurrence.Weekly, Days: dayList(m.groups[1])}.Norm()
		*spans = append(*spans, span{m.start, m.end, TokenDayPattern, p.Label()})
		return p
	}

	if m := firstMatch(looseListRe, lower, *spans); m != nil {
		p := recurrence.Pattern{Kind: recurrence.Weekly, Days: dayList(m.groups[1])}.Norm()
		*spans = append(*spans, span{m.start, m.end, TokenDayPattern, p.Label()})
		return p
	}

	return recurrence.Pattern{Kind: recurrence.Daily}
}

// extractTimeOfDay runs Phase C: whole-word morning/afternoon/evening,
// skipping anything already claimed.
func extractTimeOfDay(lower string, spans *[]span) string {
	m := firstMatch(timeOfDayRe, lower, *spans)
	if m == nil {
		return ""
	}
	*spans = append(*spans, span{m.start, m.end, TokenTimeOfDay, strings.ToUpper(m.groups[1])})
	return m.groups[1]
}

// extractAssignee runs Phase D. Only a match anchored at the first non-space
// byte counts ("call iris" never assigns). Candidates are tried longest name
// first so "Mary Jane" beats "Mary".
func extractAssignee(lower string, people []Person, spans *[]span) (id, name string) {
	start := 0
	for start < len(lower) && isSpaceByte(lower[start]) {
		start++
	}
	if start >= len(lower) {
		return "", ""
	}

	cands := make([]Person, len(people))
	copy(cands, people)
	sort.SliceStable(cands, func(i, j int) bool { return len(cands[i].Name) > len(cands[j].Name) })

	for _, p := range cands {
		n := lowerASCII(p.Name)
		if n == "" || !strings.HasPrefix(lower[start:], n) {
			continue
		}
		end := start + len(n)
		if end < len(lower) && isWordByte(lower[end]) {
			continue
		}
		if overlaps(*spans, start, end) {
			continue
		}
		*spans = append(*spans, span{start, end, TokenPerson, strings.ToUpper(p.Name)})
		return p.ID, p.Name
	}
	return "", ""
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
