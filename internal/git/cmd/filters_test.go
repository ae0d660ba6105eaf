package cmd_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/magit-stats/internal/git/cmd"
)

func TestLogFiltersToArgs(t *testing.T) {
	tests := []struct {
		name     string
		filters  cmd.LogFilters
		expected []string
	}{
		{
			"empty",
			cmd.LogFilters{},
			[]string{},
		},
		{
			"all_branches",
			cmd.LogFilters{All: true},
			[]string{"--all"},
		},
		{
			"since_until",
			cmd.LogFilters{Since: "2 weeks ago", Until: "2024-01-01"},
			[]string{"--since", "2 weeks ago", "--until", "2024-01-01"},
		},
		{
			"authors",
			cmd.LogFilters{Authors: []string{"bob", "jim"}},
			[]string{"--author", "bob", "--author", "jim"},
		},
		{
			"nauthors",
			cmd.LogFilters{Nauthors: []string{"bot", "ci"}},
			[]string{"--perl-regexp", "--author", "^((?!bot|ci).*)$"},
		},
		{
			"everything",
			cmd.LogFilters{
				All:      true,
				Since:    "yesterday",
				Authors:  []string{"sue"},
				Nauthors: []string{"bot"},
			},
			[]string{
				"--all",
				"--since",
				"yesterday",
				"--author",
				"sue",
				"--perl-regexp",
				"--author",
				"^((?!bot).*)$",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			args := test.filters.ToArgs()
			if diff := cmp.Diff(test.expected, args); diff != "" {
				t.Errorf("args are wrong:\n%s", diff)
			}
		})
	}
}

func TestLogFiltersLogValue(t *testing.T) {
	filters := cmd.LogFilters{
		Since:   "2024-01-01",
		Authors: []string{"bob"},
	}

	got := []string{}
	for _, attr := range filters.LogValue().Group() {
		got = append(got, attr.Key)
	}

	expected := []string{"since", "authors"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("logged attrs are wrong:\n%s", diff)
	}
}
