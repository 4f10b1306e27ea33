package tui

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"github.com/charmbracelet/lipgloss"

	"github.com/gongahkia/calcombo/datehelper"
)

// addMonths moves d by n months, clamping the day to the target month.
func addMonths(d datehelper.Date, n int) datehelper.Date {
	m := int(d.Month) - 1 + n
	y := d.Year + m/12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}
	month := time.Month(m + 1)
	day := min(d.Day, int(datetime.DaysInMonth(y, datetime.Month(month))))
	return datehelper.Date{Year: y, Month: month, Day: day}
}

// monthGrid renders the month containing picked with one row per week.
// Weeks start on Sunday when sundayFirst is set and Monday otherwise.
func monthGrid(picked, today datehelper.Date, sundayFirst bool) string {
	first := datehelper.Date{Year: picked.Year, Month: picked.Month, Day: 1}
	n := int(datetime.DaysInMonth(picked.Year, datetime.Month(picked.Month)))

	start := time.Sunday
	if !sundayFirst {
		start = time.Monday
	}

	var header []string
	for i := 0; i < 7; i++ {
		header = append(header, time.Weekday((int(start) + i) % 7).String()[:2])
	}

	var b strings.Builder
	b.WriteString(GridHeaderStyle.Render(fmt.Sprintf("%s %d", picked.Month, picked.Year)))
	b.WriteString("\n")
	b.WriteString(GridHeaderStyle.Render(strings.Join(header, " ")))
	b.WriteString("\n")

	col := (int(first.Weekday()) - int(start) + 7) % 7
	b.WriteString(strings.Repeat("   ", col))
	for day := 1; day <= n; day++ {
		d := datehelper.Date{Year: picked.Year, Month: picked.Month, Day: day}
		cell := fmt.Sprintf("%2d", day)
		switch {
		case d == picked:
			cell = PickedStyle.Render(cell)
		case d == today:
			cell = TodayStyle.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == 7 && day < n {
			b.WriteString("\n")
			col = 0
		} else if day < n {
			b.WriteString(" ")
		}
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(b.String())
}
