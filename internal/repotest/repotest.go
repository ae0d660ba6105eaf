// Helpers for running tests against a real, throwaway Git repository.
package repotest

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// A commit to create in a test repository.
type Commit struct {
	AuthorName  string
	AuthorEmail string
	Date        string // Anything git accepts in GIT_AUTHOR_DATE
	Message     string
}

// Creates a repository in a temporary directory, makes the given commits in
// order, and changes the working directory to it for the rest of the test.
//
// Skips the test if git is not installed.
func UseTestRepo(t *testing.T, commits []Commit) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}

	dir := t.TempDir()
	run(t, dir, nil, "init", "--quiet", "--initial-branch=main")
	run(t, dir, nil, "config", "user.name", "Test Committer")
	run(t, dir, nil, "config", "user.email", "committer@example.com")
	run(t, dir, nil, "config", "commit.gpgsign", "false")

	for i, commit := range commits {
		path := filepath.Join(dir, "file.txt")
		content := fmt.Sprintf("change %d\n", i)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("could not write file: %v", err)
		}

		run(t, dir, nil, "add", "file.txt")

		env := []string{
			"GIT_AUTHOR_NAME=" + commit.AuthorName,
			"GIT_AUTHOR_EMAIL=" + commit.AuthorEmail,
			"GIT_AUTHOR_DATE=" + commit.Date,
		}
		run(t, dir, env, "commit", "--quiet", "-m", commit.Message)
	}

	t.Chdir(dir)
	return dir
}

// Runs a git command in dir, failing the test on error.
func Git(t *testing.T, dir string, args ...string) {
	t.Helper()
	run(t, dir, nil, args...)
}

func run(t *testing.T, dir string, env []string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)

	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}
