// Handles summations over commits.
//
// Everything in this package is a pure function of its input: no I/O, no
// clock, no shared state. Input slices are never modified.
package tally

import (
	"time"

	"github.com/sinclairtarget/magit-stats/internal/git"
)

// The parts of a commit that the statistics depend on.
type Commit struct {
	AuthorName  string
	AuthorEmail string
	Date        Date
}

func (c Commit) Author() Author {
	return Author{Name: c.AuthorName, Email: c.AuthorEmail}
}

// Narrows commits read from git log down to what is tallied, deriving the
// calendar breakdown of each author date in loc.
func FromGit(commits []git.Commit, loc *time.Location) []Commit {
	narrowed := make([]Commit, 0, len(commits))
	for _, c := range commits {
		narrowed = append(narrowed, Commit{
			AuthorName:  c.AuthorName,
			AuthorEmail: c.AuthorEmail,
			Date:        DeriveDate(c.AuthorDate, loc),
		})
	}

	return narrowed
}

// Statistics for a whole commit log.
type Result struct {
	TotalCommits     int             `json:"totalCommits" yaml:"totalCommits"`
	Authors          []Author        `json:"authors" yaml:"authors"`
	CommitsByAuthor  []AuthorTally   `json:"commitsByAuthor" yaml:"commitsByAuthor"`
	CommitsByHour    []HourBucket    `json:"commitsByHour" yaml:"commitsByHour"`
	CommitsByWeekDay []WeekDayBucket `json:"commitsByWeekDay" yaml:"commitsByWeekDay"`
	FirstCommitDate  string          `json:"firstCommitDate" yaml:"firstCommitDate"`
	LastCommitDate   string          `json:"lastCommitDate" yaml:"lastCommitDate"`
}

// Computes every statistic over the commits.
//
// The commits are expected in git log order (most recent first). Calling
// Aggregate twice on the same input gives identical results.
func Aggregate(commits []Commit) Result {
	first, last := Bounds(commits)

	return Result{
		TotalCommits:     len(commits),
		Authors:          DistinctAuthors(commits),
		CommitsByAuthor:  RollUpAuthors(commits),
		CommitsByHour:    CountByHour(commits),
		CommitsByWeekDay: CountByWeekDay(commits),
		FirstCommitDate:  first.String(),
		LastCommitDate:   last.String(),
	}
}
