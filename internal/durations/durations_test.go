package durations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNiceDuration(t *testing.T) {
	tc := []struct {
		dur      time.Duration
		expected string
	}{
		{0, "0 milliseconds"},
		{-5 * time.Second, "0 milliseconds"},
		{500 * time.Microsecond, "0 milliseconds"},
		{time.Millisecond, "1 millisecond"},
		{1500 * time.Millisecond, "1 second 500 milliseconds"},
		{15 * time.Minute, "15 minutes"},
		{time.Hour + 30*time.Minute, "1 hour 30 minutes"},
		{49*time.Hour + time.Second, "2 days 1 hour 1 second"},
		{400 * 24 * time.Hour, "400 days"},
	}

	for _, curr := range tc {
		assert.Equal(t, curr.expected, NiceDuration(curr.dur), "duration %s", curr.dur)
	}
}

func TestSplit(t *testing.T) {
	assert.Nil(t, Split(999*time.Microsecond))

	assert.Equal(t, []Part{
		{Count: 1, Unit: "day"},
		{Count: 2, Unit: "minute"},
		{Count: 3, Unit: "millisecond"},
	}, Split(24*time.Hour+2*time.Minute+3*time.Millisecond))
}
