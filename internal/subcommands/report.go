package subcommands

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/sinclairtarget/magit-stats/internal/git"
	"github.com/sinclairtarget/magit-stats/internal/git/cmd"
	"github.com/sinclairtarget/magit-stats/internal/git/config"
	"github.com/sinclairtarget/magit-stats/internal/output"
	"github.com/sinclairtarget/magit-stats/internal/report"
	"github.com/sinclairtarget/magit-stats/internal/tally"
)

type ReportOpts struct {
	Revs      []string
	Pathspecs []string
	Filters   cmd.LogFilters
	Mailmap   bool
	Location  *time.Location // Zone commits are bucketed in
	Format    report.Format
	Minify    bool
	Sink      output.Sink
}

// Reads the commit log of the repository in the working directory, computes
// statistics over it and writes the rendered report to the sink.
//
// Returns the path of the written report file, if any.
func Report(opts ReportOpts) (_ string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"report\": %w", err)
		}
	}()

	logger().Debug(
		"called report()",
		"revs",
		opts.Revs,
		"pathspecs",
		opts.Pathspecs,
		"filters",
		opts.Filters,
		"mailmap",
		opts.Mailmap,
		"location",
		opts.Location,
		"format",
		opts.Format,
		"minify",
		opts.Minify,
	)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	root, err := git.GetRoot()
	if err != nil {
		return "", err
	}

	remote, err := config.RemoteURL()
	if err != nil {
		return "", err
	}

	commits, err := git.CollectCommits(
		git.CommitsWithOpts(
			ctx,
			opts.Revs,
			opts.Pathspecs,
			opts.Filters,
			opts.Mailmap,
		),
	)
	if err != nil {
		return "", err
	}

	stats := tally.Aggregate(tally.FromGit(commits, opts.Location))

	rep := report.Report{
		Repository:  git.RepoName(root),
		RemoteURL:   config.BrowsableURL(remote),
		GeneratedAt: time.Now(),
		Stats:       stats,
	}

	var buf bytes.Buffer
	err = report.Render(&buf, opts.Format, rep, report.Options{
		Minify: opts.Minify,
	})
	if err != nil {
		return "", err
	}

	path, err := opts.Sink.Write(buf.Bytes())
	if err != nil {
		return "", err
	}

	elapsed := time.Now().Sub(start)
	logger().Debug(
		"finished report",
		"commits",
		stats.TotalCommits,
		"duration_ms",
		elapsed.Milliseconds(),
	)

	return path, nil
}
