package datetime

import (
	"fmt"
	"unicode/utf8"
)

/***** STRUCT **********************************/

// parseState collects the fields met while scanning. Day of year and
// month/day are alternative ways to name the date and may not be mixed.
type parseState struct {
	year, month, day, yday int64
	hour, minute, second   int64
	ms                     int64

	hasYday, hasMonth, hasDay bool
	dayOffset                 int
}

/***********************************************/

type scanner struct {
	pattern, input string
	pos            int
}

/***** FUNCTION ********************************/

/*
Parse reads text according to pattern, using the directives of Format except
%S. Each directive consumes a fixed number of digits; every other pattern
character must appear literally in text. Missing fields default to the epoch:
year 1970, January 1st, midnight.

Parse fails with a *FormatError, which wraps ErrFormat, when a literal does
not match, a directive is unknown, a field is out of range or does not exist
in the resolved month or year, %j is mixed with %M or %D, or text has input
left over.
*/
func Parse(pattern, text string) (Instant, error) {
	sc := scanner{pattern: pattern, input: text}
	st := parseState{year: EPOCH_YEAR, month: 1, day: 1}

	for k := 0; k < len(pattern); k++ {
		if pattern[k] != '%' {
			if err := sc.literal(k); err != nil {
				return Instant{}, err
			}

			continue
		}

		k++

		if k == len(pattern) {
			return Instant{}, sc.fail("incomplete directive at end of pattern")
		}

		if err := sc.directive(k, &st); err != nil {
			return Instant{}, err
		}
	}

	if sc.pos < len(text) {
		return Instant{}, sc.fail(fmt.Sprintf("unexpected trailing input %q", text[sc.pos:]))
	}

	return st.resolve(&sc)
}

/***********************************************/

// MustParse is like Parse but panics on error.
func MustParse(pattern, text string) Instant {
	i, err := Parse(pattern, text)

	if err != nil {
		panic(err)
	}

	return i
}

/***** METHOD **********************************/

func (sc *scanner) fail(reason string) error {
	return &FormatError{Pattern: sc.pattern, Input: sc.input, Offset: sc.pos, Reason: reason}
}

/***********************************************/

// literal matches the pattern byte at k against the input.
func (sc *scanner) literal(k int) error {
	c := sc.pattern[k]

	if sc.pos >= len(sc.input) {
		return sc.fail(fmt.Sprintf("unexpected end of input, want %q", runeAt(sc.pattern, k)))
	}

	if sc.input[sc.pos] != c {
		return sc.fail(fmt.Sprintf("unexpected character %q, want %q", runeAt(sc.input, sc.pos), runeAt(sc.pattern, k)))
	}

	sc.pos++
	return nil
}

/***********************************************/

// number reads exactly width decimal digits. Leading zeros are plain
// padding.
func (sc *scanner) number(width int) (int64, error) {
	if len(sc.input)-sc.pos < width {
		return 0, sc.fail(fmt.Sprintf("unexpected end of input, want %d digits", width))
	}

	var v int64

	for n := 0; n < width; n++ {
		c := sc.input[sc.pos]

		if c < '0' || c > '9' {
			return 0, sc.fail(fmt.Sprintf("unexpected character %q, want a digit", runeAt(sc.input, sc.pos)))
		}

		v = v*10 + int64(c-'0')
		sc.pos++
	}

	return v, nil
}

/***********************************************/

// field reads a fixed-width number and checks it against [lo, hi].
func (sc *scanner) field(name string, width int, lo, hi int64) (int64, error) {
	start := sc.pos
	v, err := sc.number(width)

	if err != nil {
		return 0, err
	}

	if v < lo || v > hi {
		sc.pos = start
		return 0, sc.fail(fmt.Sprintf("%s %d out of range %d..%d", name, v, lo, hi))
	}

	return v, nil
}

/***********************************************/

// directive reads the field named by the pattern byte at k.
func (sc *scanner) directive(k int, st *parseState) (err error) {
	switch sc.pattern[k] {
	case '%':
		return sc.literal(k)
	case 'Y':
		neg := sc.pos < len(sc.input) && sc.input[sc.pos] == '-'

		if neg {
			sc.pos++
		}

		if st.year, err = sc.number(4); err == nil && neg {
			st.year = -st.year
		}
	case 'M':
		if st.hasYday {
			return sc.fail("month given after day of year")
		}

		st.month, err = sc.field("month", 2, 1, 12)
		st.hasMonth = true
	case 'D':
		if st.hasYday {
			return sc.fail("day of month given after day of year")
		}

		st.dayOffset = sc.pos
		st.day, err = sc.field("day of month", 2, 1, 31)
		st.hasDay = true
	case 'j':
		if st.hasMonth || st.hasDay {
			return sc.fail("day of year given after month or day of month")
		}

		st.dayOffset = sc.pos
		st.yday, err = sc.field("day of year", 3, 1, 366)
		st.hasYday = true
	case 'h':
		st.hour, err = sc.field("hour", 2, 0, 23)
	case 'm':
		st.minute, err = sc.field("minute", 2, 0, 59)
	case 's':
		st.second, err = sc.field("second", 2, 0, 59)
	case 'f':
		st.ms, err = sc.field("millisecond", 3, 0, 999)
	default:
		return sc.fail(fmt.Sprintf("unknown directive %%%c", runeAt(sc.pattern, k)))
	}

	return
}

/***********************************************/

// resolve checks the date against the calendar and builds the Instant.
func (st *parseState) resolve(sc *scanner) (Instant, error) {
	if st.hasYday {
		if st.yday > daysInYear(st.year) {
			sc.pos = st.dayOffset
			return Instant{}, sc.fail(fmt.Sprintf("day of year %d does not exist in %d", st.yday, st.year))
		}

		st.month, st.day = yd2md(st.year, st.yday)
	} else if st.day > daysInMonth(st.year, st.month) {
		sc.pos = st.dayOffset
		return Instant{}, sc.fail(fmt.Sprintf("day %d does not exist in %04d-%02d", st.day, st.year, st.month))
	}

	f := fields{st.year, st.month, st.day, st.hour, st.minute, st.second, st.ms}
	return f.instant(), nil
}

/***********************************************/

// runeAt decodes the rune starting at byte k of s, so that reasons quote
// whole characters rather than single bytes of a multibyte one.
func runeAt(s string, k int) rune {
	r, _ := utf8.DecodeRuneInString(s[k:])
	return r
}

/***********************************************/
