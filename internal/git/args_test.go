package git_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/magit-stats/internal/git"
)

func TestSplitRevParseOutput(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expRevs  []string
		expPaths []string
	}{
		{
			"empty",
			[]string{},
			[]string{},
			[]string{},
		},
		{
			"revs_only",
			[]string{
				"ad6d3789cf56b4a8ae3f8632d43fa65f2ec823a0",
				"^879e94bbbcbbec348ba1df332dd46e7314c62df1",
			},
			[]string{
				"ad6d3789cf56b4a8ae3f8632d43fa65f2ec823a0",
				"^879e94bbbcbbec348ba1df332dd46e7314c62df1",
			},
			[]string{},
		},
		{
			"separator",
			[]string{
				"ad6d3789cf56b4a8ae3f8632d43fa65f2ec823a0",
				"--",
				"foo/bar.go",
			},
			[]string{"ad6d3789cf56b4a8ae3f8632d43fa65f2ec823a0"},
			[]string{"foo/bar.go"},
		},
		{
			"paths_only",
			[]string{"README.md", "internal"},
			[]string{},
			[]string{"README.md", "internal"},
		},
		{
			"hash_after_path_is_path",
			[]string{
				"README.md",
				"ad6d3789cf56b4a8ae3f8632d43fa65f2ec823a0",
			},
			[]string{},
			[]string{
				"README.md",
				"ad6d3789cf56b4a8ae3f8632d43fa65f2ec823a0",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			revs, paths := git.SplitRevParseOutput(slices.Values(test.lines))
			if diff := cmp.Diff(test.expRevs, revs); diff != "" {
				t.Errorf("revs are wrong:\n%s", diff)
			}
			if diff := cmp.Diff(test.expPaths, paths); diff != "" {
				t.Errorf("paths are wrong:\n%s", diff)
			}
		})
	}
}

func TestRepoName(t *testing.T) {
	if name := git.RepoName("/home/bob/src/magit-stats/"); name != "magit-stats" {
		t.Errorf("expected \"magit-stats\" but got \"%s\"", name)
	}
}
