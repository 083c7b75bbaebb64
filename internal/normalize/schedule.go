package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// schedulePattern matches a signed deviation at the start of the status
// string. The "ab: HH:MM" future-departure form deliberately does not match
// the anchor, and neither does free text such as a vehicle type label.
var schedulePattern = regexp.MustCompile(`^\s*([+-])?\s*(\d{2}):(\d{2})`)

// futureDeparturePrefix marks a vehicle that has not departed yet. Its delay
// is unknown, not zero; the caller omits the delay field entirely.
const futureDeparturePrefix = "ab:"

// ScheduleToSeconds converts a deviation status string into signed seconds.
// The upstream computes minutes*60 plus the trailing group and that
// arithmetic is preserved exactly as observed, its naming quirks included.
// Strings with no leading deviation yield 0.
func ScheduleToSeconds(s string) int {
	m := schedulePattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	delay := seconds + minutes*60
	if m[1] == "-" {
		delay = -delay
	}
	return delay
}

// IsFutureDeparture reports whether the status string announces a scheduled
// departure instead of a deviation.
func IsFutureDeparture(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), futureDeparturePrefix)
}
