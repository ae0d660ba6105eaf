package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"regexp"

	"github.com/sinclairtarget/magit-stats/internal/format"
	"github.com/sinclairtarget/magit-stats/internal/tally"
)

const (
	generatedAtLayout = "Mon Jan 02 2006 15:04:05 MST"
	echartsURL        = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"
)

//go:embed templates/report.html
var templateFS embed.FS

var reportTemplate = template.Must(
	template.New("report.html").
		Funcs(template.FuncMap{
			"number":  format.Number,
			"percent": format.Percent,
			"hour":    format.Hour,
			"weekDay": format.WeekDayName,
		}).
		ParseFS(templateFS, "templates/report.html"),
)

var interTagSpace = regexp.MustCompile(`>\s+<`)

type htmlPage struct {
	Repository   string
	RemoteURL    string
	GeneratedAt  string
	EChartsURL   string
	Stats        tally.Result
	AuthorsChart template.HTML
	HourChart    template.HTML
	WeekDayChart template.HTML
}

// Self-contained HTML page with tables and charts. Chart scripts are loaded
// from the go-echarts asset host.
func RenderHTML(w io.Writer, rep Report, minify bool) error {
	page := htmlPage{
		Repository: rep.Repository,
		RemoteURL:  rep.RemoteURL,
		EChartsURL: echartsURL,
		Stats:      rep.Stats,
	}

	if !rep.GeneratedAt.IsZero() {
		page.GeneratedAt = rep.GeneratedAt.Format(generatedAtLayout)
	}

	var err error
	page.AuthorsChart, err = renderChart(authorsPieChart(rep.Stats.CommitsByAuthor))
	if err != nil {
		return err
	}

	page.HourChart, err = renderChart(hourBarChart(rep.Stats.CommitsByHour))
	if err != nil {
		return err
	}

	page.WeekDayChart, err = renderChart(weekDayBarChart(rep.Stats.CommitsByWeekDay))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = reportTemplate.Execute(&buf, page)
	if err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	out := buf.Bytes()
	if minify {
		out = minifyHTML(out)
	}

	_, err = w.Write(out)
	return err
}

// Drops whitespace between tags.
func minifyHTML(b []byte) []byte {
	return bytes.TrimSpace(interTagSpace.ReplaceAll(b, []byte("><")))
}
