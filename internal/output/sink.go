// Delivers a rendered report to stdout, to a file, or both.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
)

const DefaultBaseName = "magit-stats"

var ErrNoDestination = errors.New("no output destination")

// Swapped out in tests.
var openFile = browser.OpenFile

type Sink struct {
	Stdout io.Writer // Nil unless the report should be printed
	Path   string    // Empty unless the report should be written to disk
	Open   bool      // Open the written file with the default application
}

// File name for a report with the given base name and extension. An empty
// base name falls back to DefaultBaseName. A base name that already ends in
// the extension is left alone.
func FileName(base string, ext string) string {
	if base == "" {
		base = DefaultBaseName
	}

	if strings.HasSuffix(base, "."+ext) {
		return base
	}

	return base + "." + ext
}

// Writes the report. Returns the absolute path of the written file, or an
// empty string if nothing was written to disk.
func (s Sink) Write(data []byte) (_ string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error writing report: %w", err)
		}
	}()

	if s.Stdout == nil && s.Path == "" {
		return "", ErrNoDestination
	}

	if s.Stdout != nil {
		_, err = s.Stdout.Write(data)
		if err != nil {
			return "", err
		}
	}

	if s.Path == "" {
		return "", nil
	}

	path, err := filepath.Abs(s.Path)
	if err != nil {
		return "", err
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return "", err
	}

	logger().Debug("wrote report", "path", path, "bytes", len(data))

	if s.Open {
		logger().Debug("opening report", "path", path)
		err = openFile(path)
		if err != nil {
			return path, fmt.Errorf("could not open %s: %w", path, err)
		}
	}

	return path, nil
}
