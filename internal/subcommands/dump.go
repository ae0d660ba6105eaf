package subcommands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sinclairtarget/magit-stats/internal/git"
	"github.com/sinclairtarget/magit-stats/internal/git/cmd"
	"github.com/sinclairtarget/magit-stats/internal/tally"
)

// Prints each commit as parsed from git log, along with the date it is
// bucketed under, one commit per line.
func Dump(
	w io.Writer,
	revs []string,
	pathspecs []string,
	filters cmd.LogFilters,
	mailmap bool,
	loc *time.Location,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"dump\": %w", err)
		}
	}()

	logger().Debug(
		"called dump()",
		"revs",
		revs,
		"pathspecs",
		pathspecs,
		"filters",
		filters,
		"mailmap",
		mailmap,
	)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err = git.GetRoot()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	commits, finish := git.CommitsWithOpts(ctx, revs, pathspecs, filters, mailmap)
	count := 0
	for commit := range commits {
		date := tally.DeriveDate(commit.AuthorDate, loc)
		fmt.Fprintf(
			bw,
			"%s %s <%s> %s %02d:00 %s\n",
			commit.Name(),
			commit.AuthorName,
			commit.AuthorEmail,
			date,
			date.Hour,
			commit.Subject,
		)
		count += 1
	}

	err = finish()
	if err != nil {
		return err
	}

	err = bw.Flush()
	if err != nil {
		return err
	}

	elapsed := time.Now().Sub(start)
	logger().Debug(
		"finished dump",
		"commits",
		count,
		"duration_ms",
		elapsed.Milliseconds(),
	)

	return nil
}
