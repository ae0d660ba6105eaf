package tally

import (
	"errors"
	"slices"
)

// Returned by Share when there is nothing to take a share of.
var ErrNoCommits = errors.New("cannot compute share of zero commits")

// An author is identified by name and email together. Two commits with the
// same name but different emails belong to different authors.
type Author struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Commit count and percentage share of all commits for one author.
type AuthorTally struct {
	Name         string  `json:"name" yaml:"name"`
	Email        string  `json:"email" yaml:"email"`
	Count        int     `json:"count" yaml:"count"`
	SharePercent float64 `json:"sharePercent" yaml:"sharePercent"`
}

func (t AuthorTally) Author() Author {
	return Author{Name: t.Name, Email: t.Email}
}

// Unique authors in the order they first appear.
func DistinctAuthors(commits []Commit) []Author {
	authors := []Author{}
	seen := map[Author]bool{}

	for _, commit := range commits {
		author := commit.Author()
		if seen[author] {
			continue
		}

		seen[author] = true
		authors = append(authors, author)
	}

	return authors
}

// Percentage of total represented by count.
func Share(count int, total int) (float64, error) {
	if total == 0 {
		return 0, ErrNoCommits
	}

	return 100 * float64(count) / float64(total), nil
}

// Counts commits per author and ranks authors by count, highest first.
//
// Authors with equal counts keep the order in which they first appear in the
// log. Returns an empty slice when there are no commits.
func RollUpAuthors(commits []Commit) []AuthorTally {
	total := len(commits)
	if total == 0 {
		return []AuthorTally{}
	}

	counts := map[Author]int{}
	for _, commit := range commits {
		counts[commit.Author()] += 1
	}

	authors := DistinctAuthors(commits)
	tallies := make([]AuthorTally, 0, len(authors))
	for _, author := range authors {
		count := counts[author]

		// total is non-zero here
		share, _ := Share(count, total)

		tallies = append(tallies, AuthorTally{
			Name:         author.Name,
			Email:        author.Email,
			Count:        count,
			SharePercent: share,
		})
	}

	slices.SortStableFunc(tallies, func(a, b AuthorTally) int {
		return cmpInt(b.Count, a.Count)
	})

	return tallies
}
