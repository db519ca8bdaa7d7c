package stopwatch

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seconds returns d as an exact number of seconds
func Seconds(d time.Duration) decimal.Decimal {
	return decimal.New(d.Nanoseconds(), -9)
}

// FormatSeconds renders d in seconds with exactly digits places after the
// decimal point, rounding half away from zero. A negative digits renders
// every significant nanosecond.
func FormatSeconds(d time.Duration, digits int) string {
	s := Seconds(d)
	if digits < 0 {
		return s.String()
	}
	return s.StringFixed(int32(digits))
}
