package errors

import (
	"errors"
	"fmt"
)

// Reason classifies why a parse produced no date.
type Reason string

const (
	ReasonEmptyInput          Reason = "empty_input"
	ReasonNoSeparatorFound    Reason = "no_separator_found"
	ReasonTokenCountMismatch  Reason = "token_count_mismatch"
	ReasonUnknownFieldLetter  Reason = "unknown_field_letter"
	ReasonNonNumericToken     Reason = "non_numeric_token"
	ReasonExhaustedStrategies Reason = "exhausted_strategies"
)

var (
	ErrParseFailed = errors.New("date parse failed")
	ErrInvalidDate = errors.New("invalid date")
)

type ParseFailedError struct {
	Input  string
	Reason Reason
	Err    error
}

func (e *ParseFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse date %q (%s): %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot parse date %q (%s)", e.Input, e.Reason)
}

func (e *ParseFailedError) Unwrap() error { return e.Err }

func (e *ParseFailedError) Is(target error) bool { return target == ErrParseFailed }

// ParseFailed returns a *ParseFailedError for input.
func ParseFailed(input string, reason Reason, err error) error {
	return &ParseFailedError{Input: input, Reason: reason, Err: err}
}

// InvalidDateError reports fields that were read successfully but do not
// name a day of the proleptic Gregorian calendar, eg. Feb 30.
type InvalidDateError struct {
	Year  int
	Month int
	Day   int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: year %d, month %d, day %d", e.Year, e.Month, e.Day)
}

func (e *InvalidDateError) Is(target error) bool { return target == ErrInvalidDate }

// ReasonOf returns the reason carried by the outermost ParseFailedError in
// err's chain.
func ReasonOf(err error) (Reason, bool) {
	var pf *ParseFailedError
	if errors.As(err, &pf) {
		return pf.Reason, true
	}
	return "", false
}

// ExitCode maps an error onto the process exit status used by the CLI.
func ExitCode(err error) int {
	var pf *ParseFailedError
	var inv *InvalidDateError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &pf):
		return 1
	case errors.As(err, &inv):
		return 2
	default:
		return 1
	}
}
