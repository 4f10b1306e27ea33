package pattern

import (
	"strconv"
	"strings"
	"time"

	"github.com/gongahkia/calcombo/internal/civil"
)

// Format renders d using p. Time of day fields render as midnight.
func (p Pattern) Format(d civil.Date) string {
	var b strings.Builder
	for _, t := range p.tokens {
		if t.Kind == Literal {
			b.WriteString(t.Text)
			continue
		}
		b.WriteString(formatField(t, d))
	}
	return b.String()
}

// Format compiles src and renders d with it. Unknown letters are written
// through as literals rather than failing, matching the lenient formatter
// the date picker uses for display.
func Format(d civil.Date, src string) string {
	p, err := Compile(src)
	if err != nil {
		return formatLoose(d, src)
	}
	return p.Format(d)
}

func formatLoose(d civil.Date, src string) string {
	var b strings.Builder
	for i := 0; i < len(src); {
		c := src[i]
		j := i
		for j < len(src) && src[j] == c {
			j++
		}
		if _, ok := letters[c]; ok {
			b.WriteString(formatField(Token{Kind: Field, Letter: c, Width: j - i}, d))
		} else {
			b.WriteString(src[i:j])
		}
		i = j
	}
	return b.String()
}

func formatField(t Token, d civil.Date) string {
	switch t.Letter {
	case 'G':
		if d.Year > 0 {
			return "AD"
		}
		return "BC"
	case 'y':
		y := d.Year
		if y <= 0 {
			y = 1 - y
		}
		if t.Width == 2 {
			return pad(y%100, 2)
		}
		return pad(y, t.Width)
	case 'M':
		switch {
		case t.Width >= 4:
			return d.Month.String()
		case t.Width == 3:
			return d.Month.String()[:3]
		}
		return pad(int(d.Month), t.Width)
	case 'd':
		return pad(d.Day, t.Width)
	case 'E':
		if t.Width >= 4 {
			return d.Weekday().String()
		}
		return d.Weekday().String()[:3]
	case 'D':
		return pad(d.YearDay(), t.Width)
	case 'F':
		return pad((d.Day-1)/7+1, t.Width)
	case 'w':
		_, w := d.In(time.UTC).ISOWeek()
		return pad(w, t.Width)
	case 'W':
		first := civil.Date{Year: d.Year, Month: d.Month, Day: 1}.Weekday()
		return pad((d.Day+int(first)-1)/7+1, t.Width)
	case 'a':
		return "AM"
	case 'k':
		return pad(24, t.Width)
	case 'h':
		return pad(12, t.Width)
	case 'z':
		return "UTC"
	}
	// K, H, m, s, S
	return pad(0, t.Width)
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}
