package durations

import (
	"strconv"
	"strings"
	"time"
)

// Part is one unit of a broken down duration, e.g. 3 minutes.
type Part struct {
	Count int64
	Unit  string
}

func (p Part) String() string {
	s := strconv.FormatInt(p.Count, 10) + " " + p.Unit
	if p.Count != 1 {
		s += "s"
	}
	return s
}

// scale lists each unit with how many of the next smaller unit it holds, smallest first.
var scale = []struct {
	unit string
	per  int64
}{
	{"millisecond", 1000},
	{"second", 60},
	{"minute", 60},
	{"hour", 24},
	{"day", 0},
}

// Split breaks dur into whole days, hours, minutes, seconds and milliseconds, largest first. Units with a zero count
// are left out. Anything finer than a millisecond is dropped, so a duration under 1ms yields no parts.
func Split(dur time.Duration) []Part {
	remaining := dur.Milliseconds()
	if remaining <= 0 {
		return nil
	}

	parts := make([]Part, 0, len(scale))
	for _, s := range scale {
		count := remaining
		if s.per > 0 {
			count = remaining % s.per
			remaining /= s.per
		}
		if count > 0 {
			parts = append(parts, Part{Count: count, Unit: s.unit})
		}
		if remaining == 0 || s.per == 0 {
			break
		}
	}

	// built smallest first
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return parts
}

// NiceDuration renders dur as words, e.g. "1 hour 30 minutes".
func NiceDuration(dur time.Duration) string {
	parts := Split(dur)
	if len(parts) == 0 {
		return "0 milliseconds"
	}

	words := make([]string, len(parts))
	for i, p := range parts {
		words[i] = p.String()
	}

	return strings.Join(words, " ")
}
