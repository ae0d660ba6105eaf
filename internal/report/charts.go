package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sinclairtarget/magit-stats/internal/format"
	"github.com/sinclairtarget/magit-stats/internal/tally"
)

const (
	chartWidth       = "100%"
	chartHeight      = "360px"
	pieRadius        = "65%"
	maxPieLabelWidth = 13
	chartTextColor   = "#555"
	chartBarColor    = "#4e79a7"
	styleTagLen      = len("</style>")
)

func authorsPieChart(tallies []tally.AuthorTally) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
	)

	pieData := make([]opts.PieData, len(tallies))
	for i, t := range tallies {
		pieData[i] = opts.PieData{
			Name:  format.Abbrev(t.Name, maxPieLabelWidth),
			Value: t.Count,
		}
	}

	pie.AddSeries("Commits", pieData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}: {d}%",
				Color:     chartTextColor,
			}),
			charts.WithPieChartOpts(opts.PieChart{
				Radius: pieRadius,
			}),
		)

	return pie
}

func barChart(seriesName string, labels []string, values []int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Color: chartTextColor},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Commits",
			AxisLabel: &opts.AxisLabel{Color: chartTextColor},
		}),
	)

	bar.SetXAxis(labels)

	barData := make([]opts.BarData, len(values))
	for i, v := range values {
		barData[i] = opts.BarData{Value: v}
	}

	bar.AddSeries(
		seriesName,
		barData,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: chartBarColor}),
	)

	return bar
}

func hourBarChart(buckets []tally.HourBucket) *charts.Bar {
	labels := make([]string, len(buckets))
	values := make([]int, len(buckets))
	for i, bucket := range buckets {
		labels[i] = format.Hour(bucket.Hour)
		values[i] = bucket.Count
	}

	return barChart("Commits by hour", labels, values)
}

func weekDayBarChart(buckets []tally.WeekDayBucket) *charts.Bar {
	labels := make([]string, len(buckets))
	values := make([]int, len(buckets))
	for i, bucket := range buckets {
		labels[i] = format.WeekDayNameShort(bucket.WeekDay)
		values[i] = bucket.Count
	}

	return barChart("Commits by day of week", labels, values)
}

type chart interface {
	Render(w io.Writer) error
}

// Renders a go-echarts chart and keeps only the chart element and its
// script, so that several charts can be placed on one page.
func renderChart(c chart) (template.HTML, error) {
	var buf bytes.Buffer

	err := c.Render(&buf)
	if err != nil {
		return "", fmt.Errorf("rendering chart: %w", err)
	}

	return template.HTML(extractChartContent(buf.String())), nil
}

func extractChartContent(html string) string {
	start := strings.Index(html, `<div class="container">`)
	if start == -1 {
		return html
	}

	end := strings.Index(html, `</body>`)
	if end == -1 {
		return html
	}

	content := html[start:end]
	content = strings.ReplaceAll(content, `class="container"`, `class="chart"`)
	content = removeStyleTags(content)

	return content
}

func removeStyleTags(content string) string {
	for {
		i := strings.Index(content, `<style>`)
		if i == -1 {
			break
		}

		j := strings.Index(content[i:], `</style>`)
		if j == -1 {
			break
		}

		content = content[:i] + content[i+j+styleTagLen:]
	}

	return content
}
