package tally

import (
	"strings"
	"time"
)

// Layouts tried, in order, when reading a raw author date. Git's %aD is RFC
// 2822, which does not zero-pad the day of the month.
var authorDateLayouts = []string{
	time.RFC1123Z,
	"Mon, _2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	time.RFC3339,
}

// Calendar breakdown of a commit's author date in local time.
//
// Month is zero-based (0 = January) and WeekDay counts from Sunday = 0.
type Date struct {
	Year    int `json:"year" yaml:"year"`
	Month   int `json:"month" yaml:"month"`
	Day     int `json:"day" yaml:"day"`
	Hour    int `json:"hour" yaml:"hour"`
	WeekDay int `json:"weekDay" yaml:"weekDay"`
}

// Substituted for dates that cannot be read. This is the start of the Unix
// epoch regardless of time zone.
var SentinelDate = Date{Year: 1970, Month: 0, Day: 1, Hour: 0, WeekDay: 4}

// Reads a raw author date and breaks it down in the given location.
//
// Never fails: empty or malformed input yields SentinelDate.
func DeriveDate(raw string, loc *time.Location) Date {
	t, ok := parseAuthorDate(raw)
	if !ok {
		return SentinelDate
	}

	if loc == nil {
		loc = time.Local
	}

	return dateOf(t.In(loc))
}

func parseAuthorDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range authorDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func dateOf(t time.Time) Date {
	return Date{
		Year:    t.Year(),
		Month:   int(t.Month()) - 1,
		Day:     t.Day(),
		Hour:    t.Hour(),
		WeekDay: int(t.Weekday()),
	}
}

// Orders dates from coarse to fine: year, month, day, then hour. Minutes and
// seconds are not part of a Date, so commits in the same hour compare equal.
func (a Date) Compare(b Date) int {
	switch {
	case a.Year != b.Year:
		return cmpInt(a.Year, b.Year)
	case a.Month != b.Month:
		return cmpInt(a.Month, b.Month)
	case a.Day != b.Day:
		return cmpInt(a.Day, b.Day)
	default:
		return cmpInt(a.Hour, b.Hour)
	}
}

// Human-readable calendar date, e.g. "Tue Mar 05 2024". Time of day is
// dropped.
func (d Date) String() string {
	t := time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Format(DateLayout)
}

// Layout used for the first and last commit dates in a Result.
const DateLayout = "Mon Jan 02 2006"

func cmpInt(a, b int) int {
	if a < b {
		return -1
	} else if b < a {
		return 1
	}

	return 0
}
