/*
* Wraps access to data needed from Git.
*
* We invoke Git directly as a subprocess and parse the output rather than using
* git2go/libgit2.
 */
package git

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"

	"github.com/sinclairtarget/magit-stats/internal/git/cmd"
)

type Commit struct {
	Hash        string
	ShortHash   string
	IsMerge     bool
	AuthorName  string
	AuthorEmail string
	AuthorDate  string // As printed by git (RFC 2822), not yet interpreted
	Subject     string
}

func (c Commit) Name() string {
	if c.ShortHash != "" {
		return c.ShortHash
	} else if c.Hash != "" {
		return c.Hash
	} else {
		return "unknown"
	}
}

func (c Commit) String() string {
	return fmt.Sprintf(
		"{ hash:%s author:%s <%s> date:%s subject:%s merge:%v }",
		c.Name(),
		c.AuthorName,
		c.AuthorEmail,
		c.AuthorDate,
		c.Subject,
		c.IsMerge,
	)
}

// Returns a single-use iterator over commits identified by the given
// revisions and paths, in git log order (most recent first).
//
// The returned finish() function must be called once iteration is over. It
// waits on the git subprocess and reports any error encountered.
func CommitsWithOpts(
	ctx context.Context,
	revs []string,
	pathspecs []string,
	filters cmd.LogFilters,
	useMailmap bool,
) (
	iter.Seq[Commit],
	func() error,
) {
	subprocess, err := cmd.RunLog(ctx, revs, pathspecs, filters, useMailmap)
	if err != nil {
		return func(yield func(Commit) bool) {}, func() error { return err }
	}

	lines, finishLines := subprocess.StdoutNullDelimitedLines()
	commits, finishCommits := ParseCommits(lines)

	finish := func() error {
		err := finishCommits()
		if err != nil {
			return err
		}

		err = finishLines()
		if err != nil {
			return err
		}

		return subprocess.Wait()
	}

	return commits, finish
}

func Commits(ctx context.Context, revs []string, pathspecs []string) (
	iter.Seq[Commit],
	func() error,
) {
	return CommitsWithOpts(ctx, revs, pathspecs, cmd.LogFilters{}, true)
}

// Reads every commit into memory.
func CollectCommits(commits iter.Seq[Commit], finish func() error) (
	_ []Commit,
	err error,
) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error reading git log: %w", err)
		}
	}()

	collected := []Commit{}
	for commit := range commits {
		collected = append(collected, commit)
	}

	err = finish()
	if err != nil {
		return nil, err
	}

	logger().Debug("read commits", "count", len(collected))
	return collected, nil
}

// Returns the absolute path of the top level of the current repository.
//
// Fails when the working directory is not inside a Git repository.
func GetRoot() (_ string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("not a git repository: %w", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subprocess, err := cmd.RunRevParseTopLevel(ctx)
	if err != nil {
		return "", err
	}

	root, err := subprocess.StdoutText()
	if err != nil {
		return "", err
	}

	err = subprocess.Wait()
	if err != nil {
		return "", err
	}

	return root, nil
}

// Display name for the repository at the given top-level path.
func RepoName(root string) string {
	return filepath.Base(filepath.Clean(root))
}
