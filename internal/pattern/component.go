package pattern

// Component is the calendar component a field letter denotes.
type Component int

const (
	Era Component = iota
	Year
	Month
	DayOfMonth
	DayOfWeek
	DayOfYear
	DayOfWeekInMonth
	WeekOfYear
	WeekOfMonth
	AmPm
	HourOfDay
	Hour
	Minute
	Second
	Millisecond
	ZoneOffset
)

var componentNames = map[Component]string{
	Era:              "era",
	Year:             "year",
	Month:            "month",
	DayOfMonth:       "day-of-month",
	DayOfWeek:        "day-of-week",
	DayOfYear:        "day-of-year",
	DayOfWeekInMonth: "day-of-week-in-month",
	WeekOfYear:       "week-of-year",
	WeekOfMonth:      "week-of-month",
	AmPm:             "am-pm",
	HourOfDay:        "hour-of-day",
	Hour:             "hour",
	Minute:           "minute",
	Second:           "second",
	Millisecond:      "millisecond",
	ZoneOffset:       "zone-offset",
}

func (c Component) String() string {
	if n, ok := componentNames[c]; ok {
		return n
	}
	return "unknown"
}

// letters holds every letter Compile accepts. K (hour 0-11) and H
// (hour 0-23) compile but have no Component.
var letters = map[byte]struct{}{
	'G': {}, 'y': {}, 'M': {}, 'd': {}, 'E': {}, 'D': {}, 'F': {}, 'w': {},
	'W': {}, 'a': {}, 'k': {}, 'K': {}, 'h': {}, 'H': {}, 'm': {}, 's': {},
	'S': {}, 'z': {},
}

var components = map[byte]Component{
	'G': Era,
	'y': Year,
	'M': Month,
	'd': DayOfMonth,
	'E': DayOfWeek,
	'D': DayOfYear,
	'F': DayOfWeekInMonth,
	'w': WeekOfYear,
	'W': WeekOfMonth,
	'a': AmPm,
	'k': HourOfDay,
	'h': Hour,
	'm': Minute,
	's': Second,
	'S': Millisecond,
	'z': ZoneOffset,
}

// ComponentOf maps a field letter onto its calendar component.
func ComponentOf(letter byte) (Component, bool) {
	c, ok := components[letter]
	return c, ok
}
