package git

import (
	"fmt"
	"iter"
	"strings"

	"github.com/sinclairtarget/magit-stats/internal/git/cmd"
	rev "github.com/sinclairtarget/magit-stats/internal/git/revision"
)

func allowCommit(commit Commit) bool {
	if commit.AuthorName == "" && commit.AuthorEmail == "" {
		logger().Debug(
			"skipping commit with no author",
			"commit",
			commit.Name(),
		)

		return false
	}

	return true
}

// Turns an iterator over NUL-delimited fields from git log into an iterator
// of commits.
//
// Each commit is cmd.LogFieldsPerCommit fields: hash, short hash, parent
// hashes, author name, author email, author date and subject. Parsing stops at
// the first malformed commit; the error is returned by finish().
func ParseCommits(lines iter.Seq[string]) (iter.Seq[Commit], func() error) {
	var iterErr error

	seq := func(yield func(Commit) bool) {
		var commit Commit
		field := 0

		for line := range lines {
			if field == 0 && len(line) == 0 {
				continue // Trailing separator at end of output
			}

			switch field {
			case 0:
				if !rev.IsFullHash(line) {
					iterErr = fmt.Errorf(
						"expected commit hash but got \"%s\"",
						line,
					)
					return
				}
				commit.Hash = line
			case 1:
				commit.ShortHash = line
			case 2:
				parents := strings.Fields(line)
				commit.IsMerge = len(parents) > 1
			case 3:
				commit.AuthorName = line
			case 4:
				commit.AuthorEmail = line
			case 5:
				commit.AuthorDate = line
			case 6:
				commit.Subject = line
			}

			field += 1
			if field < cmd.LogFieldsPerCommit {
				continue
			}

			if allowCommit(commit) {
				if !yield(commit) {
					return
				}
			}

			commit = Commit{}
			field = 0
		}

		if field > 0 {
			iterErr = fmt.Errorf(
				"log output ended partway through commit %s",
				commit.Name(),
			)
		}
	}

	finish := func() error {
		if iterErr != nil {
			return fmt.Errorf("error parsing git log: %w", iterErr)
		}

		return nil
	}

	return seq, finish
}
