// Renders aggregated commit statistics for people and programs to read.
package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sinclairtarget/magit-stats/internal/tally"
)

type Format int

const (
	HTML Format = iota
	JSON
	YAML
	Text
)

var ErrUnknownFormat = errors.New("unknown report format")

func ParseFormat(s string) (Format, error) {
	switch s {
	case "html":
		return HTML, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "text", "txt":
		return Text, nil
	default:
		return HTML, fmt.Errorf("%w: \"%s\"", ErrUnknownFormat, s)
	}
}

func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// File extension used when a report is written to disk.
func (f Format) Extension() string {
	switch f {
	case YAML:
		return "yaml"
	case Text:
		return "txt"
	default:
		return f.String()
	}
}

// Everything a report shows. Only Stats comes from the commit log; the rest
// describes the repository and the run.
type Report struct {
	Repository  string
	RemoteURL   string // Browsable URL of the origin remote, may be empty
	GeneratedAt time.Time
	Stats       tally.Result
}

type Options struct {
	Minify bool
}

// Writes the report to w in the given format.
func Render(w io.Writer, format Format, rep Report, opts Options) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error rendering %s report: %w", format, err)
		}
	}()

	start := time.Now()

	switch format {
	case HTML:
		err = RenderHTML(w, rep, opts.Minify)
	case JSON:
		err = RenderJSON(w, rep.Stats, opts.Minify)
	case YAML:
		err = RenderYAML(w, rep.Stats)
	case Text:
		err = RenderText(w, rep)
	default:
		err = ErrUnknownFormat
	}

	logger().Debug(
		"rendered report",
		"format",
		format,
		"duration_ms",
		time.Since(start).Milliseconds(),
	)
	return err
}
