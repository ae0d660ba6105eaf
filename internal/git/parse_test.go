package git_test

import (
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/magit-stats/internal/git"
)

// Output of git log as split into fields, with "\x00" separating fields and
// a newline after each commit.
const threeCommitsDump = "ad6d3789cf56b4a8ae3f8632d43fa65f2ec823a0\x00" +
	"ad6d378\x00" +
	"879e94b\x00" +
	"Sinclair Target\x00" +
	"sinclairtarget@gmail.com\x00" +
	"Sun, 29 Dec 2024 13:02:26 +0000\x00" +
	"Edit bim\x00" +
	"\n879e94bbbcbbec348ba1df332dd46e7314c62df1\x00" +
	"879e94b\x00" +
	"bf4136d 6afef28\x00" +
	"Sinclair Target\x00" +
	"sinclairtarget@gmail.com\x00" +
	"Sun, 29 Dec 2024 13:02:02 +0000\x00" +
	"Merge branch 'rename'\x00" +
	"\nbf4136de996e9fb1f38620350cb7185613d71193\x00" +
	"bf4136d\x00" +
	"\x00" +
	"Jim Bob\x00" +
	"jim@mail.com\x00" +
	"Fri, 27 Dec 2024 8:01:44 -0500\x00" +
	"\x00" +
	"\n"

func readDump(dump string) iter.Seq[string] {
	fields := strings.Split(dump, "\x00")
	for i, field := range fields {
		fields[i] = strings.TrimPrefix(field, "\n")
	}

	return slices.Values(fields)
}

func TestParseCommits(t *testing.T) {
	lines := readDump(threeCommitsDump)

	seq, finish := git.ParseCommits(lines)
	commits := slices.Collect(seq)
	err := finish()
	if err != nil {
		t.Fatalf("error iterating commits: %v", err)
	}

	expected := []git.Commit{
		{
			Hash:        "ad6d3789cf56b4a8ae3f8632d43fa65f2ec823a0",
			ShortHash:   "ad6d378",
			AuthorName:  "Sinclair Target",
			AuthorEmail: "sinclairtarget@gmail.com",
			AuthorDate:  "Sun, 29 Dec 2024 13:02:26 +0000",
			Subject:     "Edit bim",
		},
		{
			Hash:        "879e94bbbcbbec348ba1df332dd46e7314c62df1",
			ShortHash:   "879e94b",
			IsMerge:     true,
			AuthorName:  "Sinclair Target",
			AuthorEmail: "sinclairtarget@gmail.com",
			AuthorDate:  "Sun, 29 Dec 2024 13:02:02 +0000",
			Subject:     "Merge branch 'rename'",
		},
		{
			Hash:        "bf4136de996e9fb1f38620350cb7185613d71193",
			ShortHash:   "bf4136d",
			AuthorName:  "Jim Bob",
			AuthorEmail: "jim@mail.com",
			AuthorDate:  "Fri, 27 Dec 2024 8:01:44 -0500",
			Subject:     "",
		},
	}
	if diff := cmp.Diff(expected, commits); diff != "" {
		t.Errorf("commits are wrong:\n%s", diff)
	}
}

func TestParseCommitsEmpty(t *testing.T) {
	seq, finish := git.ParseCommits(readDump(""))
	commits := slices.Collect(seq)
	if err := finish(); err != nil {
		t.Fatalf("error iterating commits: %v", err)
	}

	if len(commits) != 0 {
		t.Errorf("expected no commits but got %d", len(commits))
	}
}

func TestParseCommitsBadHash(t *testing.T) {
	dump := "not-a-hash\x00abc\x00\x00bob\x00bob@mail.com\x00" +
		"Sun, 29 Dec 2024 13:02:26 +0000\x00subject\x00\n"

	seq, finish := git.ParseCommits(readDump(dump))
	commits := slices.Collect(seq)
	if len(commits) != 0 {
		t.Errorf("expected no commits but got %d", len(commits))
	}

	if err := finish(); err == nil {
		t.Errorf("expected error for malformed hash")
	}
}

func TestParseCommitsTruncated(t *testing.T) {
	dump := "ad6d3789cf56b4a8ae3f8632d43fa65f2ec823a0\x00ad6d378\x00\x00bob"

	seq, finish := git.ParseCommits(readDump(dump))
	slices.Collect(seq)

	if err := finish(); err == nil {
		t.Errorf("expected error for truncated output")
	}
}

func TestParseCommitsSkipsAnonymous(t *testing.T) {
	dump := "ad6d3789cf56b4a8ae3f8632d43fa65f2ec823a0\x00ad6d378\x00\x00" +
		"\x00\x00Sun, 29 Dec 2024 13:02:26 +0000\x00subject\x00\n"

	seq, finish := git.ParseCommits(readDump(dump))
	commits := slices.Collect(seq)
	if err := finish(); err != nil {
		t.Fatalf("error iterating commits: %v", err)
	}

	if len(commits) != 0 {
		t.Errorf("expected commit without author to be skipped")
	}
}
