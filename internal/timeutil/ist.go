package timeutil

import (
	"strings"
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30)
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback: create fixed zone if Asia/Kolkata not available
		IST = time.FixedZone("IST", 5*60*60+30*60)
	}
}

// Now returns the current time in IST
func Now() time.Time {
	return time.Now().In(IST)
}

// Common layouts used by the backend and the console
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	ClockLayout    = "15:04"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)

// timestampLayouts are tried in order by ParseTimestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DateTimeLayout,
	DateLayout,
}

// ParseTimestamp parses a backend timestamp (ISO-8601 with or without zone,
// or a bare date). Values without a zone are read as IST. ok is false for
// blank or unparsable input.
func ParseTimestamp(value string) (t time.Time, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.ParseInLocation(layout, value, IST)
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// DatePart returns the YYYY-MM-DD prefix of an ISO timestamp string, the
// way the console compares dates as strings.
func DatePart(value string) string {
	if i := strings.IndexByte(value, 'T'); i >= 0 {
		return value[:i]
	}
	return value
}

// LocalDate returns the IST calendar day of a backend timestamp. Values that
// do not parse fall back to their date prefix.
func LocalDate(value string) string {
	if t, ok := ParseTimestamp(value); ok {
		return FormatIST(t, DateLayout)
	}
	return DatePart(value)
}

// FormatIST formats a time in IST using the given layout
func FormatIST(t time.Time, layout string) string {
	return t.In(IST).Format(layout)
}

// StartOfDay returns the start of day (00:00:00) in IST for the given time
func StartOfDay(t time.Time) time.Time {
	ist := t.In(IST)
	return time.Date(ist.Year(), ist.Month(), ist.Day(), 0, 0, 0, 0, IST)
}

// EndOfDay returns the end of day (23:59:59.999999999) in IST for the given time
func EndOfDay(t time.Time) time.Time {
	ist := t.In(IST)
	return time.Date(ist.Year(), ist.Month(), ist.Day(), 23, 59, 59, 999999999, IST)
}

// DayBounds parses a YYYY-MM-DD filter value into its IST start and end.
func DayBounds(date string) (start, end time.Time, ok bool) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), IST)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return StartOfDay(d), EndOfDay(d), true
}

// MonthToDate returns the first day of t's month and t's own date, both as
// YYYY-MM-DD.
func MonthToDate(t time.Time) (from, to string) {
	ist := t.In(IST)
	first := time.Date(ist.Year(), ist.Month(), 1, 0, 0, 0, 0, IST)
	return first.Format(DateLayout), ist.Format(DateLayout)
}

// ShiftFor maps an IST wall-clock hour to the station's shift letter:
// A is 06:00-14:00, B is 14:00-22:00, C covers the night.
func ShiftFor(t time.Time) string {
	hour := t.In(IST).Hour()
	switch {
	case hour >= 6 && hour < 14:
		return "A"
	case hour >= 14 && hour < 22:
		return "B"
	default:
		return "C"
	}
}
