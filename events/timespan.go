package events

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan is the half-open time window used by RegisteredDuring.
type TimeSpan = timespan.TimeSpan

// Between returns the span covering [from, to).
func Between(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}
