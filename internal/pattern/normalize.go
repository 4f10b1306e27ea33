package pattern

import "strings"

// Normalize widens the single letter month, day and year fields of a
// short-date pattern to two letters. Narrow fields would otherwise read a
// year typed as "03" as the year 3. Patterns that already use a wider form
// of a field are left alone, so Normalize is idempotent.
func Normalize(p string) string {
	p = widen(p, "M")
	p = widen(p, "d")
	p = widen(p, "y")
	return p
}

func widen(p, letter string) string {
	if strings.Contains(p, letter) && !strings.Contains(p, letter+letter) {
		return strings.ReplaceAll(p, letter, letter+letter)
	}
	return p
}

// Info holds a locale's short-date pattern along with its normalized
// two-digit and four-digit year variants.
type Info struct {
	Pattern   string `json:"pattern"`
	ShortYear string `json:"short_year"`
	LongYear  string `json:"long_year"`
}

// Derive normalizes p and produces its short- and long-year variants.
func Derive(p string) Info {
	n := Normalize(p)
	info := Info{Pattern: p}
	if !strings.Contains(n, "yyyy") {
		info.ShortYear = n
		info.LongYear = strings.ReplaceAll(n, "yy", "yyyy")
	} else {
		info.LongYear = n
		info.ShortYear = strings.ReplaceAll(n, "yyyy", "yy")
	}
	return info
}

// ForLength returns the variant whose year width suits an all-digit input
// of length n: the two-digit year for six digits, four digits otherwise.
func (i Info) ForLength(n int) string {
	if n == 6 {
		return i.ShortYear
	}
	return i.LongYear
}

// WidenYear turns a two-digit year field into a four-digit one unless the
// pattern already has one.
func WidenYear(p string) (string, bool) {
	if strings.Contains(p, "yyyy") || !strings.Contains(p, "yy") {
		return p, false
	}
	return strings.ReplaceAll(p, "yy", "yyyy"), true
}
