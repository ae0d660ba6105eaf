package git

import (
	"context"
	"fmt"
	"iter"

	"github.com/sinclairtarget/magit-stats/internal/git/cmd"
	rev "github.com/sinclairtarget/magit-stats/internal/git/revision"
)

// Handles splitting the Git revisions from the paths given a list of args.
//
// We call git rev-parse to disambiguate.
func ParseArgs(args []string) (revs []string, pathspecs []string, err error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subprocess, err := cmd.RunRevParse(ctx, args)
	if err != nil {
		return nil, nil, fmt.Errorf("could not parse args: %w", err)
	}

	lines, finish := subprocess.StdoutLines()
	revs, pathspecs = SplitRevParseOutput(lines)

	err = finish()
	if err != nil {
		return nil, nil, fmt.Errorf("failed reading output of rev-parse: %w", err)
	}

	err = subprocess.Wait()
	if err != nil {
		return nil, nil, fmt.Errorf("could not parse args: %w", err)
	}

	if len(revs) == 0 {
		// Default rev
		revs = append(revs, "HEAD")
	}

	return revs, pathspecs, nil
}

// Sorts the output of git rev-parse into revisions followed by paths.
//
// Revisions always come first; everything after the first non-revision line
// is a path, apart from the "--" separator.
func SplitRevParseOutput(lines iter.Seq[string]) (revs []string, pathspecs []string) {
	revs = []string{}
	pathspecs = []string{}

	finishedRevs := false
	for line := range lines {
		if !finishedRevs && rev.IsRevision(line) {
			revs = append(revs, line)
		} else {
			finishedRevs = true

			if line != "--" {
				pathspecs = append(pathspecs, line)
			}
		}
	}

	return revs, pathspecs
}
