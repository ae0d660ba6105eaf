package report

import (
	"encoding/json"
	"io"

	"github.com/sinclairtarget/magit-stats/internal/tally"
)

// Writes the statistics verbatim as JSON, indented unless minify is set.
func RenderJSON(w io.Writer, stats tally.Result, minify bool) error {
	enc := json.NewEncoder(w)
	if !minify {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(stats)
}
