// Terminal colors
package pretty

import (
	"github.com/fatih/color"
)

var (
	bold  = color.New(color.Bold)
	dim   = color.New(color.Faint)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// SetColorEnabled controls whether ANSI color codes are output
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}

// GetColorEnabled returns whether ANSI color codes are currently enabled
func GetColorEnabled() bool {
	return !color.NoColor
}

func Bold(s string) string {
	return bold.Sprint(s)
}

func Dim(s string) string {
	return dim.Sprint(s)
}

func Green(s string) string {
	return green.Sprint(s)
}

func Red(s string) string {
	return red.Sprint(s)
}
