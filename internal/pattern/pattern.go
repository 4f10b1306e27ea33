// Package pattern implements the date pattern language used by locale
// short-date formats: runs of field letters such as "yyyy" or "M" separated
// by literal text, with single quotes escaping letters.
//
// Patterns are parsed into tokens once and then used to format civil dates
// or to parse user input in strict or lenient mode.
package pattern

import (
	"fmt"
	"strings"
)

// Kind distinguishes literal runs from fields.
type Kind int

const (
	Literal Kind = iota
	Field
)

// Token is one element of a compiled pattern. For a Field, Letter holds the
// field letter and Width the number of times it was repeated; for a
// Literal, Text holds the unescaped text.
type Token struct {
	Kind   Kind
	Letter byte
	Width  int
	Text   string
}

func (t Token) String() string {
	if t.Kind == Literal {
		return fmt.Sprintf("%q", t.Text)
	}
	return strings.Repeat(string(t.Letter), t.Width)
}

// numeric reports whether the field is always written with digits.
func (t Token) numeric() bool {
	if t.Kind != Field {
		return false
	}
	switch t.Letter {
	case 'M':
		return t.Width < 3
	case 'G', 'E', 'a', 'z':
		return false
	}
	return true
}

// Pattern is a compiled date pattern.
type Pattern struct {
	src    string
	tokens []Token
}

// Compile parses src into a Pattern. Letters outside the supported field
// set are rejected unless quoted.
func Compile(src string) (Pattern, error) {
	var tokens []Token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Token{Kind: Literal, Text: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\'':
			if i+1 < len(src) && src[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			j := i + 1
			for {
				if j >= len(src) {
					return Pattern{}, fmt.Errorf("unterminated quote in pattern %q", src)
				}
				if src[j] == '\'' {
					if j+1 < len(src) && src[j+1] == '\'' {
						lit.WriteByte('\'')
						j += 2
						continue
					}
					break
				}
				lit.WriteByte(src[j])
				j++
			}
			i = j + 1
		case isLetter(c):
			if _, ok := letters[c]; !ok {
				return Pattern{}, fmt.Errorf("unknown pattern letter %q in %q", c, src)
			}
			flush()
			j := i
			for j < len(src) && src[j] == c {
				j++
			}
			tokens = append(tokens, Token{Kind: Field, Letter: c, Width: j - i})
			i = j
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return Pattern{src: src, tokens: tokens}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) Pattern {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pattern) String() string { return p.src }

// Tokens returns a copy of the pattern's tokens.
func (p Pattern) Tokens() []Token {
	return append([]Token(nil), p.tokens...)
}

// HasFields reports whether the pattern contains any field.
func (p Pattern) HasFields() bool {
	for _, t := range p.tokens {
		if t.Kind == Field {
			return true
		}
	}
	return false
}

// FieldsOnly returns the pattern's fields with every literal removed, so
// "M/d/yy" becomes "Mdyy".
func (p Pattern) FieldsOnly() string {
	var b strings.Builder
	for _, t := range p.tokens {
		if t.Kind == Field {
			b.WriteString(strings.Repeat(string(t.Letter), t.Width))
		}
	}
	return b.String()
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
