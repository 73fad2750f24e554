package datetime_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ever/datetime"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    datetime.Instant
	}{
		{"default", datetime.DEFAULT_PATTERN, "2020-07-14 13:48:18", datetime.DateTime2Instant(2020, 7, 14, 13, 48, 18)},
		{"epoch", datetime.DEFAULT_PATTERN, "1970-01-01 00:00:00", datetime.NewInstant()},
		{"date only", "%Y-%M-%D", "2020-07-14", datetime.Date2Instant(2020, 7, 14)},
		{"year only", "%Y", "2020", datetime.Date2Instant(2020, 1, 1)},
		{"time only", "%h:%m:%s", "13:48:18", datetime.DateTime2Instant(1970, 1, 1, 13, 48, 18)},
		{"empty", "", "", datetime.NewInstant()},
		{"day of year", "%Y/%j", "2020/196", datetime.Date2Instant(2020, 7, 14)},
		{"last day of leap year", "%Y/%j", "2020/366", datetime.Date2Instant(2020, 12, 31)},
		{"leap day", "%Y-%M-%D", "2020-02-29", datetime.Date2Instant(2020, 2, 29)},
		{"milliseconds", "%Y-%M-%D %h:%m:%s.%f", "2020-07-14 13:48:18.250", datetime.DateTimeMs2Instant(2020, 7, 14, 13, 48, 18, 250)},
		{"escaped percent", "%%%Y", "%2020", datetime.Date2Instant(2020, 1, 1)},
		{"negative year", "%Y-%M-%D", "-0001-12-31", datetime.Seconds2Instant(-62167305600)},
		{"pre-epoch", datetime.DEFAULT_PATTERN, "1910-08-04 17:15:23", datetime.Seconds2Instant(-1874817877)},
		{"fields in any order", "%s %m %h %D %M %Y", "18 48 13 14 07 2020", datetime.DateTime2Instant(2020, 7, 14, 13, 48, 18)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datetime.Parse(tt.pattern, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		offset  int
	}{
		{"month 00", datetime.DEFAULT_PATTERN, "1970-00-01 00:00:00", 5},
		{"month 25", datetime.DEFAULT_PATTERN, "1970-25-01 00:00:00", 5},
		{"day 00", datetime.DEFAULT_PATTERN, "1970-01-00 00:00:00", 8},
		{"day 45", datetime.DEFAULT_PATTERN, "1970-01-45 00:00:00", 8},
		{"hour 25", datetime.DEFAULT_PATTERN, "1970-01-01 25:00:00", 11},
		{"minute 69", datetime.DEFAULT_PATTERN, "1970-01-01 00:69:00", 14},
		{"second 79", datetime.DEFAULT_PATTERN, "1970-01-01 00:00:79", 17},
		{"april 31", datetime.DEFAULT_PATTERN, "1970-04-31 00:00:00", 8},
		{"may 32", datetime.DEFAULT_PATTERN, "1970-05-32 00:00:00", 8},
		{"february 29 of a common year", "%Y-%M-%D", "2021-02-29", 8},
		{"day of year 000", "%Y/%j", "1970/000", 5},
		{"day of year 453", "%Y/%j", "1970/453", 5},
		{"day 366 of a common year", "%Y/%j", "1970/366", 5},
		{"month after day of year", "%Y-%j-%M", "1970-001-01", 9},
		{"day of year after month", "%Y-%M-%j", "1970-01-001", 8},
		{"day of year after day", "%D %j", "01 001", 3},
		{"trailing input", "%Y-%D-%M", "1970-01-01 00:00:00", 10},
		{"trailing time", "%Y/%j", "1970/001 00:00:00", 8},
		{"literal mismatch", "-%Y-%j-", "%1970-001%", 0},
		{"unknown directive", "%Y.%J.%h.%m", "1970.001.00.00", 5},
		{"epoch seconds are not parsed", "%S", "0", 0},
		{"incomplete directive", "%Y%", "1970", 4},
		{"short input", datetime.DEFAULT_PATTERN, "1970-01-01", 10},
		{"letters for digits", "%Y", "19x0", 2},
		{"empty input", "%Y", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := datetime.Parse(tt.pattern, tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, datetime.ErrFormat))

			var fe *datetime.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.pattern, fe.Pattern)
			assert.Equal(t, tt.text, fe.Input)
			assert.Equal(t, tt.offset, fe.Offset, "reason: %s", fe.Reason)
			assert.NotEmpty(t, fe.Reason)
		})
	}
}

func TestParse_FormatSymmetry(t *testing.T) {
	patterns := []string{
		datetime.DEFAULT_PATTERN,
		"%Y%M%D%h%m%s%f",
		"%Y/%j %h:%m:%s.%f",
		"[%Y] %D.%M %h-%m-%s",
	}
	instants := []datetime.Instant{
		datetime.NewInstant(),
		datetime.DateTimeMs2Instant(2020, 7, 14, 13, 48, 18, 250),
		datetime.DateTimeMs2Instant(2000, 2, 29, 23, 59, 59, 999),
		datetime.DateTimeMs2Instant(1910, 8, 4, 17, 15, 23, 1),
		datetime.DateTimeMs2Instant(1601, 1, 1, 0, 0, 0, 0),
		datetime.DateTimeMs2Instant(-44, 3, 15, 12, 0, 0, 0),
	}
	for _, p := range patterns {
		for _, i := range instants {
			text := i.Format(p)
			got, err := datetime.Parse(p, text)
			require.NoError(t, err, "pattern %q text %q", p, text)

			want := i
			if !strings.Contains(p, "%f") {
				want = i.AddMillis(-int64(i.Millisecond()))
			}

			assert.Equal(t, want, got, "pattern %q text %q", p, text)
		}
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, datetime.Date2Instant(2020, 7, 14), datetime.MustParse("%Y-%M-%D", "2020-07-14"))
	assert.Panics(t, func() { datetime.MustParse("%Y-%M-%D", "2020-13-14") })
}

func TestFormatError(t *testing.T) {
	_, err := datetime.Parse("%Y-%M", "1970-13")
	require.Error(t, err)
	assert.Equal(t, `format error: parsing "1970-13" as "%Y-%M": month 13 out of range 1..12 at offset 5`, err.Error())
}

func TestParse_MultibyteReasons(t *testing.T) {
	tests := []struct {
		name, pattern, text, reason string
	}{
		{"full-width digits", "%Y", "２０２０", `unexpected character '２', want a digit`},
		{"literal mismatch", "%Y年", "2020x", `unexpected character 'x', want '年'`},
		{"input after literal", "%Y-%M", "2020ー07", `unexpected character 'ー', want '-'`},
		{"missing literal", "%Y年", "2020", `unexpected end of input, want '年'`},
		{"unknown directive", "%Y%é", "2020", `unknown directive %é`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := datetime.Parse(tt.pattern, tt.text)

			var fe *datetime.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.reason, fe.Reason)
		})
	}

	got, err := datetime.Parse("%Y年%M月%D日", "2020年07月14日")
	require.NoError(t, err)
	assert.Equal(t, datetime.Date2Instant(2020, 7, 14), got)
}
