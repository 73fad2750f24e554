package datetime

import "time"

// Clock provides the current time, so that callers reading "now" can be
// tested against a fixed reading.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

var _ Clock = SystemClock{}

/***** FUNCTION ********************************/

// Now2Instant reads c, truncated to the millisecond.
func Now2Instant(c Clock) Instant {
	return Time2Instant(c.Now())
}

/***********************************************/

func Now() Instant {
	return Now2Instant(SystemClock{})
}

/***********************************************/
