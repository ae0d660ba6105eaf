/*
* Utility functions for formatting output.
 */
package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

var weekDayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// Print string with max length, truncating with ellipsis.
func Abbrev(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max-1]) + "…"
}

func GitEmail(email string) string {
	return fmt.Sprintf("<%s>", email)
}

// Integer with thousands separators.
func Number(n int) string {
	return humanize.Comma(int64(n))
}

// Percentage with two decimal places, e.g. "66.67%".
func Percent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// Full English name of a day of the week, with Sunday = 0.
func WeekDayName(day int) string {
	if day < 0 || day >= len(weekDayNames) {
		return "Unknown"
	}

	return weekDayNames[day]
}

// Three-letter name of a day of the week, with Sunday = 0.
func WeekDayNameShort(day int) string {
	name := WeekDayName(day)
	return name[:3]
}

// Two-digit hour of day, e.g. "09".
func Hour(hour int) string {
	return fmt.Sprintf("%02d", hour)
}
