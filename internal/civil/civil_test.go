package civil

import (
	"errors"
	"testing"
	"time"

	calerr "github.com/gongahkia/calcombo/internal/errors"
)

func TestNewRejectsImpossibleDates(t *testing.T) {
	for _, tc := range []struct {
		y, m, d int
	}{
		{2015, 2, 29},
		{2015, 2, 30},
		{1900, 2, 29},
		{2015, 13, 1},
		{2015, 0, 1},
		{2015, 4, 31},
		{2015, 4, 0},
	} {
		_, err := New(tc.y, time.Month(tc.m), tc.d)
		if !errors.Is(err, calerr.ErrInvalidDate) {
			t.Errorf("New(%d, %d, %d): expected invalid date, got %v", tc.y, tc.m, tc.d, err)
		}
	}
}

func TestNewLeapDays(t *testing.T) {
	for _, y := range []int{2000, 2020, 2024, 1600, 4} {
		if _, err := New(y, time.February, 29); err != nil {
			t.Errorf("expected Feb 29 %d to be valid: %v", y, err)
		}
	}
}

func TestRollover(t *testing.T) {
	for _, tc := range []struct {
		y, m, d int
		want    Date
	}{
		{2015, 13, 1, MustNew(2016, time.January, 1)},
		{2015, 2, 30, MustNew(2015, time.March, 2)},
		{2015, 3, 0, MustNew(2015, time.February, 28)},
		{2015, 3, 14, MustNew(2015, time.March, 14)},
	} {
		if got := Rollover(tc.y, tc.m, tc.d); got != tc.want {
			t.Errorf("Rollover(%d, %d, %d) = %v, want %v", tc.y, tc.m, tc.d, got, tc.want)
		}
	}
}

func TestPromoteTwoDigitYear(t *testing.T) {
	if got := MustNew(15, time.March, 14).PromoteTwoDigitYear(); got != MustNew(2015, time.March, 14) {
		t.Errorf("got %v", got)
	}
	if got := MustNew(0, time.February, 29).PromoteTwoDigitYear(); got != MustNew(2000, time.February, 29) {
		t.Errorf("got %v", got)
	}
	if got := MustNew(1999, time.March, 14).PromoteTwoDigitYear(); got.Year != 1999 {
		t.Errorf("year >= 100 must be left alone, got %v", got)
	}
	if got := MustNew(-43, time.March, 15).PromoteTwoDigitYear(); got.Year != -43 {
		t.Errorf("negative years must be left alone, got %v", got)
	}
}

func TestYearDayAndFromYearDay(t *testing.T) {
	d := MustNew(2020, time.December, 31)
	if d.YearDay() != 366 {
		t.Errorf("expected 366, got %d", d.YearDay())
	}
	if got := FromYearDay(2020, 60); got != MustNew(2020, time.February, 29) {
		t.Errorf("FromYearDay(2020, 60) = %v", got)
	}
}

func TestParseAndString(t *testing.T) {
	d, err := Parse("2015-03-14")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "2015-03-14" {
		t.Errorf("got %s", d)
	}
}
