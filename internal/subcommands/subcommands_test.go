package subcommands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinclairtarget/magit-stats/internal/git/cmd"
	"github.com/sinclairtarget/magit-stats/internal/output"
	"github.com/sinclairtarget/magit-stats/internal/report"
	"github.com/sinclairtarget/magit-stats/internal/repotest"
	"github.com/sinclairtarget/magit-stats/internal/subcommands"
	"github.com/sinclairtarget/magit-stats/internal/tally"
)

var testCommits = []repotest.Commit{
	{
		AuthorName:  "Ann",
		AuthorEmail: "ann@mail.com",
		Date:        "Mon, 4 Mar 2024 09:15:02 +0000",
		Message:     "First",
	},
	{
		AuthorName:  "Ann",
		AuthorEmail: "ann@mail.com",
		Date:        "Mon, 4 Mar 2024 09:45:00 +0000",
		Message:     "Second",
	},
	{
		AuthorName:  "Bob",
		AuthorEmail: "bob@mail.com",
		Date:        "Wed, 6 Mar 2024 14:00:00 +0000",
		Message:     "Third",
	},
}

func TestReportJSONToStdout(t *testing.T) {
	repotest.UseTestRepo(t, testCommits)

	var buf bytes.Buffer
	path, err := subcommands.Report(subcommands.ReportOpts{
		Revs:     []string{"HEAD"},
		Mailmap:  true,
		Location: time.UTC,
		Format:   report.JSON,
		Sink:     output.Sink{Stdout: &buf},
	})
	require.NoError(t, err)
	assert.Empty(t, path)

	var result tally.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	assert.Equal(t, 3, result.TotalCommits)
	require.Len(t, result.CommitsByAuthor, 2)
	assert.Equal(t, "Ann", result.CommitsByAuthor[0].Name)
	assert.Equal(t, 2, result.CommitsByAuthor[0].Count)
	assert.Equal(t, 2, result.CommitsByHour[9].Count)
	assert.Equal(t, 1, result.CommitsByHour[14].Count)
	assert.Equal(t, 2, result.CommitsByWeekDay[1].Count)
	assert.Equal(t, 1, result.CommitsByWeekDay[3].Count)
	assert.Equal(t, "Mon Mar 04 2024", result.FirstCommitDate)
	assert.Equal(t, "Wed Mar 06 2024", result.LastCommitDate)
}

func TestReportHTMLToFile(t *testing.T) {
	dir := repotest.UseTestRepo(t, testCommits)

	target := filepath.Join(dir, output.FileName("", report.HTML.Extension()))
	path, err := subcommands.Report(subcommands.ReportOpts{
		Revs:     []string{"HEAD"},
		Mailmap:  true,
		Location: time.UTC,
		Format:   report.HTML,
		Sink:     output.Sink{Path: target},
	})
	require.NoError(t, err)
	assert.Equal(t, target, path)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Repository Statistics")
	assert.Contains(t, string(data), filepath.Base(dir))
}

func TestReportFilters(t *testing.T) {
	repotest.UseTestRepo(t, testCommits)

	var buf bytes.Buffer
	_, err := subcommands.Report(subcommands.ReportOpts{
		Revs:     []string{"HEAD"},
		Filters:  cmd.LogFilters{Authors: []string{"Bob"}},
		Mailmap:  true,
		Location: time.UTC,
		Format:   report.JSON,
		Sink:     output.Sink{Stdout: &buf},
	})
	require.NoError(t, err)

	var result tally.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, 1, result.TotalCommits)
	assert.Equal(t, []tally.Author{{Name: "Bob", Email: "bob@mail.com"}}, result.Authors)
}

func TestReportOutsideRepo(t *testing.T) {
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	_, err := subcommands.Report(subcommands.ReportOpts{
		Revs:   []string{"HEAD"},
		Format: report.JSON,
		Sink:   output.Sink{Stdout: &buf},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a git repository")
	assert.Zero(t, buf.Len())
}

func TestDump(t *testing.T) {
	repotest.UseTestRepo(t, testCommits)

	var buf bytes.Buffer
	err := subcommands.Dump(
		&buf,
		[]string{"HEAD"},
		nil,
		cmd.LogFilters{},
		true,
		time.UTC,
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Bob <bob@mail.com> Wed Mar 06 2024 14:00 Third")
	assert.Contains(t, lines[2], "Ann <ann@mail.com> Mon Mar 04 2024 09:00 First")
}
