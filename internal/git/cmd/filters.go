package cmd

import (
	"fmt"
	"log/slog"
	"strings"
)

type LogFilters struct {
	Since    string
	Until    string
	Authors  []string
	Nauthors []string
	All      bool // Walk every ref instead of just the given revisions
}

// Turn into CLI args we can pass to `git log`
func (f LogFilters) ToArgs() []string {
	args := []string{}

	if f.All {
		args = append(args, "--all")
	}

	if f.Since != "" {
		args = append(args, "--since", f.Since)
	}

	if f.Until != "" {
		args = append(args, "--until", f.Until)
	}

	for _, author := range f.Authors {
		args = append(args, "--author", author)
	}

	if len(f.Nauthors) > 0 {
		args = append(args, "--perl-regexp")

		// Build regex pattern OR-ing together all the nauthors
		var b strings.Builder
		for i, nauthor := range f.Nauthors {
			b.WriteString(nauthor)
			if i < len(f.Nauthors)-1 {
				b.WriteString("|")
			}
		}

		regex := fmt.Sprintf(`^((?!%s).*)$`, b.String())
		args = append(args, "--author", regex)
	}

	return args
}

// Only the filters that are set show up in debug logs.
func (f LogFilters) LogValue() slog.Value {
	attrs := []slog.Attr{}

	if f.All {
		attrs = append(attrs, slog.Bool("all", true))
	}
	if f.Since != "" {
		attrs = append(attrs, slog.String("since", f.Since))
	}
	if f.Until != "" {
		attrs = append(attrs, slog.String("until", f.Until))
	}
	if len(f.Authors) > 0 {
		attrs = append(attrs, slog.Any("authors", f.Authors))
	}
	if len(f.Nauthors) > 0 {
		attrs = append(attrs, slog.Any("nauthors", f.Nauthors))
	}

	return slog.GroupValue(attrs...)
}
