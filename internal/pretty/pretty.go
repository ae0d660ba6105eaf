package pretty

import (
	"os"

	"golang.org/x/term"
)

func AllowDynamic(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Enables color only when writing to a terminal and NO_COLOR is unset.
func UseColorFor(f *os.File) {
	_, noColor := os.LookupEnv("NO_COLOR")
	SetColorEnabled(!noColor && AllowDynamic(f))
}
