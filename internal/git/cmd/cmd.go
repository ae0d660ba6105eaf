/*
* Handles invoking Git as a subprocess.
 */
package cmd

import (
	"context"
	"fmt"
	"slices"
)

// Fields are NUL-terminated. tformat ends each commit with a newline, which
// ends up at the front of the next commit's first field.
const (
	logFormat        = "--pretty=tformat:%H%x00%h%x00%p%x00%an%x00%ae%x00%aD%x00%s%x00"
	mailmapLogFormat = "--pretty=tformat:%H%x00%h%x00%p%x00%aN%x00%aE%x00%aD%x00%s%x00"
)

// Number of NUL-terminated fields written per commit by the log formats.
const LogFieldsPerCommit = 7

// Runs git log
func RunLog(
	ctx context.Context,
	revs []string,
	pathspecs []string,
	filters LogFilters,
	useMailmap bool,
) (*Subprocess, error) {
	var baseArgs []string

	if useMailmap {
		baseArgs = []string{
			"log",
			mailmapLogFormat,
			"--no-show-signature",
		}
	} else {
		baseArgs = []string{
			"log",
			logFormat,
			"--no-show-signature",
			"--no-mailmap",
		}
	}

	filterArgs := filters.ToArgs()

	var args []string
	if len(pathspecs) > 0 {
		args = slices.Concat(
			baseArgs,
			filterArgs,
			revs,
			[]string{"--"},
			pathspecs,
		)
	} else {
		args = slices.Concat(baseArgs, filterArgs, revs)
	}

	subprocess, err := run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("failed to run git log: %w", err)
	}

	return subprocess, nil
}

// Runs git rev-parse
func RunRevParse(ctx context.Context, args []string) (*Subprocess, error) {
	var baseArgs = []string{
		"rev-parse",
		"--no-flags",
	}

	subprocess, err := run(ctx, slices.Concat(baseArgs, args))
	if err != nil {
		return nil, fmt.Errorf("failed to run git rev-parse: %w", err)
	}

	return subprocess, nil
}

func RunRevParseTopLevel(ctx context.Context) (*Subprocess, error) {
	var args = []string{"rev-parse", "--show-toplevel"}

	subprocess, err := run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("failed to run git rev-parse: %w", err)
	}

	return subprocess, nil
}

// Runs git config --get with the given args
func RunConfigGet(ctx context.Context, args []string) (*Subprocess, error) {
	var baseArgs = []string{"config", "--get"}

	subprocess, err := run(ctx, slices.Concat(baseArgs, args))
	if err != nil {
		return nil, fmt.Errorf("failed to run git config: %w", err)
	}

	return subprocess, nil
}
