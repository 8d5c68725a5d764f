package logbook

import (
	"fmt"
	"regexp"
	"strconv"
)

// timePattern accepts a 1-2 digit hour, a colon, and exactly two minute digits.
var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// MinutesToTime formats a non-negative minute count as "HH:MM". The hour part
// is zero-padded to at least two digits but has no upper bound, so 1500
// minutes renders as "25:00". Because TimeToMinutes caps the hour at 23, the
// two functions are not inverses for durations of 24 hours or more.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// TimeToMinutes parses a "H:MM" or "HH:MM" clock string into a minute count.
// The hour must be in [0,23] and the minute in [0,59]; anything else,
// including a single-digit minute, is rejected.
func TimeToMinutes(text string) (int, error) {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("not a time: %q", text)
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("not a time: %q", text)
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("not a time: %q", text)
	}

	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("not a time: %q", text)
	}

	return hours*60 + minutes, nil
}

// ValidTimeFormat reports whether TimeToMinutes accepts text.
func ValidTimeFormat(text string) bool {
	_, err := TimeToMinutes(text)
	return err == nil
}
