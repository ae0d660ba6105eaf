package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/sinclairtarget/magit-stats/internal/format"
	"github.com/sinclairtarget/magit-stats/internal/pretty"
	"github.com/sinclairtarget/magit-stats/internal/tally"
)

const (
	barWidth       = 36
	maxAuthorWidth = 25
)

// Plain-text report: summary, author tables and bar plots of commits by hour
// and by day of week.
func RenderText(w io.Writer, rep Report) error {
	bw := bufio.NewWriter(w)
	stats := rep.Stats

	fmt.Fprintln(bw, pretty.Bold("Repository Statistics"))
	if rep.Repository != "" {
		fmt.Fprintf(bw, "%s", rep.Repository)
		if rep.RemoteURL != "" {
			fmt.Fprintf(bw, " (%s)", rep.RemoteURL)
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, basicsTable(stats))
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, pretty.Bold("Commits by author"))
	fmt.Fprintln(bw, authorsTable(stats.CommitsByAuthor))
	fmt.Fprintln(bw)

	hourLabels := make([]string, len(stats.CommitsByHour))
	hourValues := make([]int, len(stats.CommitsByHour))
	for i, bucket := range stats.CommitsByHour {
		hourLabels[i] = format.Hour(bucket.Hour)
		hourValues[i] = bucket.Count
	}

	fmt.Fprintln(bw, pretty.Bold("Commits by hour"))
	drawPlot(bw, hourLabels, hourValues)
	fmt.Fprintln(bw)

	dayLabels := make([]string, len(stats.CommitsByWeekDay))
	dayValues := make([]int, len(stats.CommitsByWeekDay))
	for i, bucket := range stats.CommitsByWeekDay {
		dayLabels[i] = format.WeekDayNameShort(bucket.WeekDay)
		dayValues[i] = bucket.Count
	}

	fmt.Fprintln(bw, pretty.Bold("Commits by day of week"))
	drawPlot(bw, dayLabels, dayValues)

	if !rep.GeneratedAt.IsZero() {
		fmt.Fprintln(bw)
		fmt.Fprintln(
			bw,
			pretty.Dim(fmt.Sprintf("Generated at %s", rep.GeneratedAt.Format(generatedAtLayout))),
		)
	}

	return bw.Flush()
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false
	return tbl
}

func basicsTable(stats tally.Result) string {
	tbl := newTable()
	tbl.Style().Options.SeparateColumns = false
	tbl.AppendRows([]table.Row{
		{"Total commits", format.Number(stats.TotalCommits)},
		{"Authors", format.Number(len(stats.Authors))},
		{"First commit", stats.FirstCommitDate},
		{"Last commit", stats.LastCommitDate},
	})
	return tbl.Render()
}

func authorsTable(tallies []tally.AuthorTally) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Author", "Email", "Commits", "Share"})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for _, t := range tallies {
		tbl.AppendRow(table.Row{
			format.Abbrev(t.Name, maxAuthorWidth),
			format.GitEmail(t.Email),
			format.Number(t.Count),
			format.Percent(t.SharePercent),
		})
	}

	if len(tallies) == 0 {
		tbl.AppendRow(table.Row{"No commits", "", "", ""})
	}

	return tbl.Render()
}

// Draws one horizontal bar per value, scaled so that the largest value fills
// barWidth.
func drawPlot(w io.Writer, labels []string, values []int) {
	maxVal := 0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}

	labelWidth := 0
	for _, label := range labels {
		labelWidth = max(labelWidth, len(label))
	}

	for i, value := range values {
		clamped := 0
		if maxVal > 0 {
			clamped = int(math.Ceil(
				(float64(value) / float64(maxVal)) * float64(barWidth),
			))
		}

		bar := pretty.Green(strings.Repeat("#", clamped))
		fmt.Fprintf(
			w,
			"%-*s ┤ %s%s %s\n",
			labelWidth,
			labels[i],
			bar,
			strings.Repeat(" ", barWidth-clamped),
			fmtCount(value),
		)
	}
}

func fmtCount(n int) string {
	s := format.Number(n)
	if n == 0 {
		return pretty.Dim(s)
	}

	return s
}
