package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseFailedError(t *testing.T) {
	cause := errors.New("no match")
	err := ParseFailed("foo", ReasonExhaustedStrategies, cause)

	if !errors.Is(err, ErrParseFailed) {
		t.Error("expected errors.Is(err, ErrParseFailed)")
	}
	if !errors.Is(err, cause) {
		t.Error("expected the cause to be reachable through Unwrap")
	}
	if errors.Is(err, ErrInvalidDate) {
		t.Error("a parse failure is not an invalid date")
	}
	msg := err.Error()
	if !strings.Contains(msg, `"foo"`) || !strings.Contains(msg, "exhausted_strategies") || !strings.Contains(msg, "no match") {
		t.Errorf("unexpected message %q", msg)
	}
	if got := ParseFailed("", ReasonEmptyInput, nil).Error(); strings.Contains(got, ": ") {
		t.Errorf("expected no cause in %q", got)
	}
}

func TestInvalidDateError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &InvalidDateError{Year: 2015, Month: 2, Day: 30})
	if !errors.Is(err, ErrInvalidDate) {
		t.Error("expected errors.Is(err, ErrInvalidDate)")
	}
	var inv *InvalidDateError
	if !errors.As(err, &inv) || inv.Day != 30 {
		t.Errorf("expected to recover the fields, got %+v", inv)
	}
	if _, ok := ReasonOf(err); ok {
		t.Error("an invalid date carries no reason")
	}
}

func TestReasonOf(t *testing.T) {
	inner := ParseFailed("x", ReasonNonNumericToken, nil)
	outer := ParseFailed("x", ReasonExhaustedStrategies, inner)
	if r, ok := ReasonOf(outer); !ok || r != ReasonExhaustedStrategies {
		t.Errorf("expected the outermost reason, got %s", r)
	}
	if r, ok := ReasonOf(fmt.Errorf("ctx: %w", inner)); !ok || r != ReasonNonNumericToken {
		t.Errorf("expected non_numeric_token, got %s", r)
	}
	if _, ok := ReasonOf(errors.New("plain")); ok {
		t.Error("expected no reason for a plain error")
	}
}

func TestExitCode(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want int
	}{
		{nil, 0},
		{ParseFailed("x", ReasonEmptyInput, nil), 1},
		{&InvalidDateError{Year: 2015, Month: 13, Day: 1}, 2},
		{ParseFailed("x", ReasonExhaustedStrategies, &InvalidDateError{Year: 2015, Month: 2, Day: 30}), 1},
		{errors.New("boom"), 1},
	} {
		if got := ExitCode(tc.err); got != tc.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
