package datetime

import (
	"math"
	"time"
)

/***** STRUCT **********************************/

/*
Instant representation.
An Instant is a point of civil time kept as a signed count of milliseconds
from the epoch, 01-Jan-1970 00:00:00.000 UTC. There are no time zones and no
leap seconds in the count: every day lasts exactly 86400 seconds. The calendar
fields are derived on demand and never stored, and an Instant never changes
once built, so it can be copied and shared freely.
*/
type Instant struct {
	ms int64
}

/***********************************************/

// fields is the calendar breakdown of an Instant.
type fields struct {
	year, month, day     int64
	hour, minute, second int64
	ms                   int64
}

/***** FUNCTION ********************************/

// The default constructor, the epoch itself.
func NewInstant() Instant {
	return Instant{}
}

/***********************************************/

func Millis2Instant(ms int64) Instant {
	return Instant{ms}
}

/***********************************************/

func Seconds2Instant(seconds int64) Instant {
	return Instant{seconds * SECOND2MS}
}

/***********************************************/

func Date2Instant(year, month, day int) Instant {
	return DateTimeMs2Instant(year, month, day, 0, 0, 0, 0)
}

/***********************************************/

// DateTime2Instant builds an Instant from calendar fields. Fields outside
// their natural range are carried into the next larger one, e.g. month 13
// is January of the following year and day 0 the last day of the previous
// month.
func DateTime2Instant(year, month, day, hour, minute, second int) Instant {
	return DateTimeMs2Instant(year, month, day, hour, minute, second, 0)
}

/***********************************************/

func DateTimeMs2Instant(year, month, day, hour, minute, second, ms int) Instant {
	return fields{
		int64(year), int64(month), int64(day),
		int64(hour), int64(minute), int64(second),
		int64(ms),
	}.instant()
}

/***********************************************/

// YearDoy2Instant builds the Instant at midnight of day of year doy, where
// doy 1 is January 1st.
func YearDoy2Instant(year, doy int) Instant {
	return Instant{ymd2days(int64(year), 1, int64(doy)) * DAY2MS}
}

/***********************************************/

// Mjd2Instant converts a modified Julian date, rounded to the millisecond.
func Mjd2Instant(mjd float64) Instant {
	return Instant{int64(math.Round((mjd - float64(MJD_EPOCH)) * float64(DAY2MS)))}
}

/***********************************************/

// Time2Instant truncates t to the millisecond.
func Time2Instant(t time.Time) Instant {
	return Instant{t.UnixMilli()}
}

/***********************************************/

// Negative mirrors i around the epoch.
func Negative(i Instant) Instant {
	return Instant{-i.ms}
}

/***********************************************/

func (f fields) instant() Instant {
	year, month, day, hour, minute, second, ms := normalize(f.year, f.month, f.day, f.hour, f.minute, f.second, f.ms)
	days := ymd2days(year, month, day)
	seconds := days*DAY2SECOND + hour*HOUR2SECOND + minute*MINUTE2SECOND + second
	return Instant{seconds*SECOND2MS + ms}
}

/***** METHOD **********************************/

func (i Instant) fields() (f fields) {
	days := floorDiv(i.ms, DAY2MS)
	msOfDay := i.ms - days*DAY2MS

	f.year, f.month, f.day = days2ymd(days)
	f.hour = msOfDay / (HOUR2SECOND * SECOND2MS)
	f.minute = msOfDay / (MINUTE2SECOND * SECOND2MS) % HOUR2MINUTE
	f.second = msOfDay / SECOND2MS % MINUTE2SECOND
	f.ms = msOfDay % SECOND2MS
	return
}

/***********************************************/

func (i Instant) days() int64 {
	return floorDiv(i.ms, DAY2MS)
}

/***********************************************/

func (i Instant) UnixMilli() int64 {
	return i.ms
}

/***********************************************/

// Unix returns the whole seconds since the epoch, rounded toward negative
// infinity so that the millisecond part is never negative.
func (i Instant) Unix() int64 {
	return floorDiv(i.ms, SECOND2MS)
}

/***********************************************/

func (i Instant) IsZero() bool {
	return i.ms == 0
}

/***********************************************/

// Cast returns i as a UTC time.Time.
func (i Instant) Cast() time.Time {
	return time.UnixMilli(i.ms).UTC()
}

/***********************************************/

func (i Instant) Date() (year, month, day int) {
	y, m, d := days2ymd(i.days())
	return int(y), int(m), int(d)
}

/***********************************************/

func (i Instant) Time() (hour, minute, second int) {
	f := i.fields()
	return int(f.hour), int(f.minute), int(f.second)
}

/***********************************************/

func (i Instant) DateTime() (year, month, day, hour, minute, second int) {
	f := i.fields()
	return int(f.year), int(f.month), int(f.day), int(f.hour), int(f.minute), int(f.second)
}

/***********************************************/

func (i Instant) Year() (year int) {
	year, _, _ = i.Date()
	return
}

/***********************************************/

func (i Instant) Month() (month int) {
	_, month, _ = i.Date()
	return
}

/***********************************************/

func (i Instant) MonthDay() (day int) {
	_, _, day = i.Date()
	return
}

/***********************************************/

// YearDay returns the day of year, 1 for January 1st.
func (i Instant) YearDay() int {
	_, yday := days2yd(i.days())
	return int(yday) + 1
}

/***********************************************/

// WeekDay numbers the days of the week from Sunday (1) to Saturday (7).
// The epoch was a Thursday (5).
//
// IsoWeekDay is WeekDay minus one from Monday to Saturday. Sunday is the
// exception: WeekDay gives 1 and IsoWeekDay 7, not 0, so neither numbering
// leaves 1..7.
func (i Instant) WeekDay() int {
	return int(floorMod(i.days()+4, WEEK2DAY)) + 1
}

/***********************************************/

// IsoWeekDay numbers the days of the week from Monday (1) to Sunday (7),
// so Sunday is 7 while its WeekDay is 1.
func (i Instant) IsoWeekDay() int {
	return int(floorMod(i.days()+3, WEEK2DAY)) + 1
}

/***********************************************/

func (i Instant) Hour() (hour int) {
	hour, _, _ = i.Time()
	return
}

/***********************************************/

func (i Instant) Minute() (minute int) {
	_, minute, _ = i.Time()
	return
}

/***********************************************/

func (i Instant) Second() (second int) {
	_, _, second = i.Time()
	return
}

/***********************************************/

func (i Instant) Millisecond() int {
	return int(floorMod(i.ms, SECOND2MS))
}

/***********************************************/

// JulianDate uses the Fliegel-Van Flandern day number of the calendar date
// plus the fraction of the day elapsed. Valid for years after -4800.
func (i Instant) JulianDate() float64 {
	f := i.fields()
	y, m, d := f.year, f.month, f.day

	jdn := (1461*(y+4800+(m-14)/12))/4 +
		(367*(m-2-12*((m-14)/12)))/12 -
		(3*((y+4900+(m-14)/12)/100))/4 +
		d - 32075

	sod := float64(f.hour*HOUR2SECOND+f.minute*MINUTE2SECOND+f.second) + float64(f.ms)/float64(SECOND2MS)
	return float64(jdn) + sod*SECOND2DAY - 0.5
}

/***********************************************/

func (i Instant) ModifiedJulianDate() float64 {
	return i.JulianDate() - JD_MJD0
}

/***********************************************/

// Diff returns the whole seconds from other to i, truncated toward zero.
func (i Instant) Diff(other Instant) int64 {
	return (i.ms - other.ms) / SECOND2MS
}

/***********************************************/

func (i Instant) DiffMillis(other Instant) int64 {
	return i.ms - other.ms
}

/***********************************************/

func (i Instant) Add(seconds int64) Instant {
	return Instant{i.ms + seconds*SECOND2MS}
}

/***********************************************/

func (i Instant) AddMillis(ms int64) Instant {
	return Instant{i.ms + ms}
}

/***********************************************/

func (i Instant) Sub(seconds int64) Instant {
	return Instant{i.ms - seconds*SECOND2MS}
}

/***********************************************/

// AddDate adds calendar years, months and days, keeping the time of day.
// Months carry into years. The day is not clamped to the length of the
// resulting month: the excess rolls forward, so January 31st plus one month
// is early March. A day that drops to zero or below borrows the length of
// the previous month.
func (i Instant) AddDate(years, months, days int) Instant {
	f := i.fields()
	f.year += int64(years)
	f.month += int64(months)
	f.day += int64(days)
	return f.instant()
}

/***********************************************/

func (i Instant) IsBefore(other Instant) bool {
	return i.ms < other.ms
}

/***********************************************/

func (i Instant) IsAfter(other Instant) bool {
	return i.ms > other.ms
}

/***********************************************/

func (i Instant) Equal(other Instant) bool {
	return i.ms == other.ms
}

/***********************************************/

func (i Instant) Gt(other Instant) bool {
	return i.ms > other.ms
}

/***********************************************/

func (i Instant) Lt(other Instant) bool {
	return i.ms < other.ms
}

/***********************************************/

func (i Instant) Eq(other Instant) bool {
	return i.ms == other.ms
}

/***********************************************/

func (i Instant) Ne(other Instant) bool {
	return i.ms != other.ms
}

/***********************************************/

func (i Instant) Ge(other Instant) bool {
	return i.ms >= other.ms
}

/***********************************************/

func (i Instant) Le(other Instant) bool {
	return i.ms <= other.ms
}

/***********************************************/

// Compare returns -1, 0 or +1, for use with slices.SortFunc.
func (i Instant) Compare(other Instant) int {
	switch {
	case i.ms < other.ms:
		return -1
	case i.ms > other.ms:
		return 1
	default:
		return 0
	}
}

/***********************************************/

// LeapSeconds counts the leap seconds inserted since the GPS epoch up to
// and including i.
func (i Instant) LeapSeconds() int {
	seconds := i.Unix()
	var n int

	for _, s := range LEAP_SECONDS {
		if seconds < s {
			break
		}

		n++
	}

	return n
}

/***********************************************/

// ToGPS shifts i forward by the leap seconds inserted up to it, turning a
// UTC reading into the GPS time scale.
func (i Instant) ToGPS() Instant {
	return i.Add(int64(i.LeapSeconds()))
}

/***********************************************/

// GPSWeekSow returns the GPS week and second of week of the UTC instant i.
func (i Instant) GPSWeekSow() (week int, sow float64) {
	dt := i.ToGPS().ms - INSTANT_GPST0.ms
	weekMs := WEEK2SECOND * SECOND2MS

	week = int(floorDiv(dt, weekMs))
	sow = float64(floorMod(dt, weekMs)) / float64(SECOND2MS)
	return
}

/***********************************************/
