package tally

import (
	"slices"
)

// Earliest and latest commit dates.
//
// Dates are ordered by year, month, day and hour. The commits are stably
// sorted and the first and last elements taken, so among commits in the same
// hour the earliest bound is the one seen first and the latest bound is the
// one seen last. With no commits both bounds are SentinelDate.
func Bounds(commits []Commit) (first Date, last Date) {
	if len(commits) == 0 {
		return SentinelDate, SentinelDate
	}

	dates := make([]Date, len(commits))
	for i, commit := range commits {
		dates[i] = commit.Date
	}

	slices.SortStableFunc(dates, func(a, b Date) int {
		return a.Compare(b)
	})

	return dates[0], dates[len(dates)-1]
}
