package routine

import (
	"fmt"
	"regexp"
	"strconv"
)

type timeMatcher struct {
	re    *regexp.Regexp
	build func(m []string) (string, bool)
}

func fixedTime(hhmm string) func([]string) (string, bool) {
	return func([]string) (string, bool) { return hhmm, true }
}

// The "at ..." battery, tried strictly in this order. The two no-meridiem
// forms below the meridiem ones read the hour literally, so "at 19" and
// "at 1930" are 24-hour values.
var atTimeMatchers = []timeMatcher{
	{regexp.MustCompile(`\bat noon\b`), fixedTime("12:00")},
	{regexp.MustCompile(`\bat midnight\b`), fixedTime("00:00")},
	{regexp.MustCompile(`\bat (\d{1,2}):(\d{2})\s*(am|pm|a|p)\b`), func(m []string) (string, bool) {
		return clockTime(m[1], m[2], m[3])
	}},
	{regexp.MustCompile(`\bat (\d{1,2})\s*(am|pm|a|p)\b`), func(m []string) (string, bool) {
		return clockTime(m[1], "", m[2])
	}},
	{regexp.MustCompile(`\bat (\d{1,2}):(\d{2})\b`), func(m []string) (string, bool) {
		return clockTime(m[1], m[2], "")
	}},
	{regexp.MustCompile(`\bat (\d{2})(\d{2})\b`), func(m []string) (string, bool) {
		return clockTime(m[1], m[2], "")
	}},
	{regexp.MustCompile(`\bat (\d{1,2})\b`), func(m []string) (string, bool) {
		return clockTime(m[1], "", "")
	}},
}

// Compact and military forms with no "at": "7p", "700p", "1130a", "7:30pm",
// "1930". The meridiem must touch the digits; "take 2 a day" is not a time.
var bareTimeMatchers = []timeMatcher{
	{regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm|a|p)\b`), func(m []string) (string, bool) {
		return clockTime(m[1], m[2], m[3])
	}},
	{regexp.MustCompile(`\b(\d{1,2})(\d{2})?(am|pm|a|p)\b`), func(m []string) (string, bool) {
		return clockTime(m[1], m[2], m[3])
	}},
	{regexp.MustCompile(`\b(\d{2})(\d{2})\b`), func(m []string) (string, bool) {
		return clockTime(m[1], m[2], "")
	}},
}

// clockTime converts matched hour/minute/meridiem strings to 24-hour "HH:MM".
// pm adds 12 unless the hour is already 12; am turns 12 into 0. Without a
// meridiem the hour is taken literally. Returns false for impossible values
// so the caller can move on to the next candidate.
func clockTime(hourStr, minStr, meridiem string) (string, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return "", false
	}
	min := 0
	if minStr != "" {
		min, err = strconv.Atoi(minStr)
		if err != nil || min > 59 {
			return "", false
		}
	}

	switch meridiem {
	case "":
		if hour > 23 {
			return "", false
		}
	case "am", "a":
		if hour < 1 || hour > 12 {
			return "", false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm", "p":
		if hour < 1 || hour > 12 {
			return "", false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		return "", false
	}

	return fmt.Sprintf("%02d:%02d", hour, min), true
}

// CompactTime renders a 24-hour "HH:MM" value in the compact form used by
// time tokens and preview chips: "7a", "2:30p", "12p".
func CompactTime(hhmm string) string {
	if len(hhmm) != 5 {
		return hhmm
	}
	hour, err := strconv.Atoi(hhmm[:2])
	if err != nil {
		return hhmm
	}
	min, err := strconv.Atoi(hhmm[3:])
	if err != nil {
		return hhmm
	}

	meridiem := "a"
	if hour >= 12 {
		meridiem = "p"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	if min == 0 {
		return fmt.Sprintf("%d%s", h, meridiem)
	}
	return fmt.Sprintf("%d:%02d%s", h, min, meridiem)
}
