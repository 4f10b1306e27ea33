package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Output is the stream whose terminal status decides whether to colour.
var Output = os.Stdout

func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(Output.Fd()))
}

func wrap(code, s string) string {
	if !colorEnabled() {
		return s
	}
	return fmt.Sprintf("\033[%sm%s\033[0m", code, s)
}

// Red returns s wrapped in red, for errors.
func Red(s string) string { return wrap("31", s) }

// Yellow returns s wrapped in yellow, for past dates.
func Yellow(s string) string { return wrap("33", s) }

// Green returns s wrapped in green, for today.
func Green(s string) string { return wrap("32", s) }

// Cyan returns s wrapped in cyan, for future dates.
func Cyan(s string) string { return wrap("36", s) }

// Bold returns s in bold.
func Bold(s string) string { return wrap("1", s) }

// Dim returns s in faint style.
func Dim(s string) string { return wrap("2", s) }
