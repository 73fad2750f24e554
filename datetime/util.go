package datetime

import (
	"golang.org/x/exp/constraints"
)

/***** FUNCTION ********************************/

// IsLeapYear reports whether year has 366 days in the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return isLeap(int64(year))
}

/***********************************************/

func DaysInYear(year int) int {
	return int(daysInYear(int64(year)))
}

/***********************************************/

// DaysInMonth returns the length of month (1..12) in year.
func DaysInMonth(year, month int) int {
	return int(daysInMonth(int64(year), int64(month)))
}

/***********************************************/

func isLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/***********************************************/

func daysInYear(year int64) int64 {
	if isLeap(year) {
		return _DAYS_IN_YEAR + 1
	}

	return _DAYS_IN_YEAR
}

/***********************************************/

func daysInMonth(year, month int64) int64 {
	if month == 2 && isLeap(year) {
		return 29
	}

	return DAYS_IN_MONTH[month-1]
}

/***********************************************/

// floorDiv divides rounding toward negative infinity, so that the remainder
// left by floorMod is never negative.
func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b

	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

/***********************************************/

func floorMod[T constraints.Signed](a, b T) T {
	return a - floorDiv(a, b)*b
}

/***********************************************/

// carry moves whatever part of low lies outside [0, base) into high.
func carry[T constraints.Signed](high, low, base T) (T, T) {
	return high + floorDiv(low, base), floorMod(low, base)
}

/***********************************************/

// normalize brings month into 1..12 and the clock fields into their natural
// ranges, carrying the excess into the next larger field. The day is left
// as is: it is added linearly when the day count is built.
func normalize(year, month, day, hour, minute, second, ms int64) (int64, int64, int64, int64, int64, int64, int64) {
	second, ms = carry(second, ms, SECOND2MS)
	minute, second = carry(minute, second, MINUTE2SECOND)
	hour, minute = carry(hour, minute, HOUR2MINUTE)
	day, hour = carry(day, hour, DAY2HOUR)

	year, month = carry(year, month-1, 12)
	month++

	return year, month, day, hour, minute, second, ms
}

/***********************************************/
