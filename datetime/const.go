package datetime

/***** CONSTANT ********************************/

const (
	SECOND2MS     int64   = 1000
	MINUTE2SECOND int64   = 60
	HOUR2MINUTE   int64   = 60
	DAY2HOUR      int64   = 24
	WEEK2DAY      int64   = 7
	HOUR2SECOND   int64   = HOUR2MINUTE * MINUTE2SECOND
	DAY2SECOND    int64   = DAY2HOUR * HOUR2SECOND
	WEEK2SECOND   int64   = WEEK2DAY * DAY2SECOND
	DAY2MS        int64   = DAY2SECOND * SECOND2MS
	SECOND2DAY    float64 = 1.0 / float64(DAY2SECOND)
)

/***********************************************/

const (
	EPOCH_YEAR      int64   = 1970
	JD_MJD0         float64 = 2400000.5
	MJD_EPOCH       int64   = 40587 // mjd of 01-Jan-1970
	DEFAULT_PATTERN string  = "%Y-%M-%D %h:%m:%s"
)

/***********************************************/

// lengths of the calendar cycles, in days
const (
	_DAYS_IN_YEAR     int64 = 365
	_DAYS_IN_4YEARS   int64 = 4*_DAYS_IN_YEAR + 1
	_DAYS_IN_100YEARS int64 = 25*_DAYS_IN_4YEARS - 1
	_DAYS_IN_400YEARS int64 = 4*_DAYS_IN_100YEARS + 1
)

// The cycle arithmetic counts from 01-Jan-1601, the first day of a 400-year
// cycle; _REF_DAYS is that day relative to the epoch.
const (
	_REF_YEAR int64 = 1601
	_REF_DAYS int64 = -134774
)

/***********************************************/

var (
	// DAYS_IN_MONTH holds the month lengths of a common year.
	DAYS_IN_MONTH = [12]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	// DAYS_BEFORE_MONTH[m] counts the days of a common year before month m+1
	// starts. The 13th entry is the length of the year.
	DAYS_BEFORE_MONTH = [13]int64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}
)

/***********************************************/

// LEAP_SECONDS lists, in ascending order, the first UTC second following each
// leap second inserted since the GPS epoch (06-Jan-1980).
var LEAP_SECONDS = [...]int64{
	362793600,  // 1981-07-01
	394329600,  // 1982-07-01
	425865600,  // 1983-07-01
	489024000,  // 1985-07-01
	567993600,  // 1988-01-01
	631152000,  // 1990-01-01
	662688000,  // 1991-01-01
	709948800,  // 1992-07-01
	741484800,  // 1993-07-01
	773020800,  // 1994-07-01
	820454400,  // 1996-01-01
	867715200,  // 1997-07-01
	915148800,  // 1999-01-01
	1136073600, // 2006-01-01
	1230768000, // 2009-01-01
	1341100800, // 2012-07-01
	1435708800, // 2015-07-01
	1483228800, // 2017-01-01
}

/***********************************************/

var (
	INSTANT_EPOCH = Instant{}
	INSTANT_GPST0 = DateTime2Instant(1980, 1, 6, 0, 0, 0)
)

/***********************************************/
