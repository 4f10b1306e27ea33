package ui

import "fmt"

// Relative describes a signed day count relative to today.
func Relative(days int64) string {
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 0:
		return fmt.Sprintf("in %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// RelativeColored is Relative coloured green for today, cyan for the
// future and yellow for the past.
func RelativeColored(days int64) string {
	s := Relative(days)
	switch {
	case days == 0:
		return Green(s)
	case days > 0:
		return Cyan(s)
	default:
		return Yellow(s)
	}
}
