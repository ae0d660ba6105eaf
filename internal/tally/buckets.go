package tally

const (
	HoursPerDay = 24
	DaysPerWeek = 7
)

// Commits made during one hour of the day (0-23), across all days.
type HourBucket struct {
	Hour  int `json:"hour" yaml:"hour"`
	Count int `json:"count" yaml:"count"`
}

// Commits made on one day of the week (0 = Sunday), across all weeks.
type WeekDayBucket struct {
	WeekDay int `json:"weekDay" yaml:"weekDay"`
	Count   int `json:"count" yaml:"count"`
}

// Histogram of commits by hour of day. Always has HoursPerDay buckets in
// ascending order, including empty ones.
func CountByHour(commits []Commit) []HourBucket {
	counts := countInto(HoursPerDay, commits, func(d Date) int { return d.Hour })

	buckets := make([]HourBucket, HoursPerDay)
	for hour, count := range counts {
		buckets[hour] = HourBucket{Hour: hour, Count: count}
	}

	return buckets
}

// Histogram of commits by day of week. Always has DaysPerWeek buckets in
// ascending order, Sunday first, including empty ones.
func CountByWeekDay(commits []Commit) []WeekDayBucket {
	counts := countInto(DaysPerWeek, commits, func(d Date) int { return d.WeekDay })

	buckets := make([]WeekDayBucket, DaysPerWeek)
	for day, count := range counts {
		buckets[day] = WeekDayBucket{WeekDay: day, Count: count}
	}

	return buckets
}

func countInto(size int, commits []Commit, key func(Date) int) []int {
	counts := make([]int, size)
	for _, commit := range commits {
		i := key(commit.Date)
		if i < 0 || i >= size {
			continue
		}

		counts[i] += 1
	}

	return counts
}
