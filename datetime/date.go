package datetime

/*
Calendar conversion.
Days are counted from the epoch (01-Jan-1970 is day 0) and may be negative.
Both directions peel the count apart with the 400/100/4/1-year cycles of the
proleptic Gregorian calendar, so neither loops over years or months. A
negative count is first moved into the non-negative range by whole 400-year
cycles, which have a fixed length, and the year is shifted back afterwards;
dates before the 1582 reform are therefore proleptic, not Julian.
*/

/***** FUNCTION ********************************/

// Convert year/month/day to days since the epoch. Month must be in 1..12;
// day is added linearly, so day 0 is the last day of the previous month.
func ymd2days(year, month, day int64) int64 {
	y := year - _REF_YEAR
	n400 := floorDiv(y, 400)
	y -= n400 * 400

	// days before January 1st of year
	dby := n400*_DAYS_IN_400YEARS + y*_DAYS_IN_YEAR + y/4 - y/100

	// days in year preceding first day of month
	dbm := DAYS_BEFORE_MONTH[month-1]

	if month > 2 && isLeap(year) {
		dbm++
	}

	return _REF_DAYS + dby + dbm + day - 1
}

/***********************************************/

// Convert days since the epoch to year and zero-based day of year.
func days2yd(days int64) (year, yday int64) {
	ord := days - _REF_DAYS
	n400 := floorDiv(ord, _DAYS_IN_400YEARS)
	ord -= n400 * _DAYS_IN_400YEARS

	// the last century of a 400-year cycle and the last year of a 4-year
	// cycle are one day longer; clamp so that day lands in the shorter unit
	n100 := min(ord/_DAYS_IN_100YEARS, 3)
	ord -= n100 * _DAYS_IN_100YEARS

	n4 := ord / _DAYS_IN_4YEARS
	ord -= n4 * _DAYS_IN_4YEARS

	n1 := min(ord/_DAYS_IN_YEAR, 3)
	ord -= n1 * _DAYS_IN_YEAR

	year = _REF_YEAR + 400*n400 + 100*n100 + 4*n4 + n1
	yday = ord
	return
}

/***********************************************/

// Convert days since the epoch to year/month/day.
func days2ymd(days int64) (year, month, day int64) {
	var yday int64
	year, yday = days2yd(days)

	if isLeap(year) {
		const leapDay = 31 + 29 - 1

		if yday == leapDay {
			return year, 2, 29
		} else if yday > leapDay {
			yday--
		}
	}

	// yday/31 never overshoots and undershoots by at most one month
	month = yday / 31

	if yday >= DAYS_BEFORE_MONTH[month+1] {
		month++
	}

	day = yday - DAYS_BEFORE_MONTH[month] + 1
	month++
	return
}

/***********************************************/

// Day of year (1..366) of a valid date.
func yearDay(year, month, day int64) int64 {
	doy := DAYS_BEFORE_MONTH[month-1] + day

	if month > 2 && isLeap(year) {
		doy++
	}

	return doy
}

/***********************************************/

// Convert year and day of year (1..366) to month/day.
func yd2md(year, doy int64) (month, day int64) {
	_, month, day = days2ymd(ymd2days(year, 1, doy))
	return
}

/***********************************************/
