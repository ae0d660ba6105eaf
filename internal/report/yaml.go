package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sinclairtarget/magit-stats/internal/tally"
)

func RenderYAML(w io.Writer, stats tally.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(stats)
	if err != nil {
		return err
	}

	return enc.Close()
}
