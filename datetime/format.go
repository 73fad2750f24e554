package datetime

import (
	"strconv"
	"strings"
)

/***** METHOD **********************************/

/*
Format renders i according to pattern. The directives are

	%Y  year, 4 digits (negative years get a leading '-')
	%M  month, 2 digits
	%D  day of month, 2 digits
	%j  day of year, 3 digits
	%h  hour, 2 digits
	%m  minute, 2 digits
	%s  second, 2 digits
	%f  millisecond, 3 digits
	%S  whole seconds since the epoch
	%%  a literal '%'

Every other character is copied as is. An unknown directive renders as '?'.
*/
func (i Instant) Format(pattern string) string {
	f := i.fields()
	var sb strings.Builder
	sb.Grow(len(pattern) + 8)

	for k := 0; k < len(pattern); k++ {
		if pattern[k] != '%' {
			sb.WriteByte(pattern[k])
			continue
		}

		k++

		if k == len(pattern) { // dangling '%'
			sb.WriteByte('%')
			break
		}

		switch pattern[k] {
		case '%':
			sb.WriteByte('%')
		case 'S':
			sb.WriteString(strconv.FormatInt(i.Unix(), 10))
		case 'Y':
			writePadded(&sb, f.year, 4)
		case 'M':
			writePadded(&sb, f.month, 2)
		case 'D':
			writePadded(&sb, f.day, 2)
		case 'j':
			writePadded(&sb, yearDay(f.year, f.month, f.day), 3)
		case 'h':
			writePadded(&sb, f.hour, 2)
		case 'm':
			writePadded(&sb, f.minute, 2)
		case 's':
			writePadded(&sb, f.second, 2)
		case 'f':
			writePadded(&sb, f.ms, 3)
		default:
			sb.WriteByte('?')
		}
	}

	return sb.String()
}

/***********************************************/

// String formats i with DEFAULT_PATTERN.
func (i Instant) String() string {
	return i.Format(DEFAULT_PATTERN)
}

/***** FUNCTION ********************************/

// writePadded writes v zero-padded to width digits; the sign of a negative
// value does not count toward the width.
func writePadded(sb *strings.Builder, v int64, width int) {
	if v < 0 {
		sb.WriteByte('-')
		v = -v
	}

	digits := strconv.FormatInt(v, 10)

	for n := len(digits); n < width; n++ {
		sb.WriteByte('0')
	}

	sb.WriteString(digits)
}

/***********************************************/
