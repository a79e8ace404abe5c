package graphcalc

import (
	"regexp"
	"strings"
	"unicode"
)

// assignment matches a leading "y =" that a user may type before a function.
var assignment = regexp.MustCompile(`(?i)^\s*y\s*=\s*`)

// glyphs rewrites keypad symbols to the spellings the lexer understands.
var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"π", "pi",
	"√", "sqrt",
)

// StripAssignment removes a leading "y =" or "y=" from src, ignoring case and
// whitespace around the equals sign.
func StripAssignment(src string) string {
	return assignment.ReplaceAllLiteralString(src, "")
}

// Normalize rewrites src into the canonical form that Parse tokenizes. It
// strips any "y =" prefix, replaces ×, ÷, π, and √ with *, /, pi, and sqrt,
// and makes implicit multiplications explicit.
//
// Only two adjacencies are implicit multiplications: a digit directly followed
// by a letter or an open bracket, and a close bracket directly followed by a
// letter or a digit. So "2x" becomes "2*x" and "(1)2" becomes "(1)*2", but
// "xy", "2 x", and "(1)(2)" are left alone.
func Normalize(src string) string {
	s := glyphs.Replace(StripAssignment(src))
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	var prev rune
	for i, r := range s {
		if i > 0 && implicitMul(prev, r) {
			b.WriteByte('*')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// implicitMul reports whether a * belongs between adjacent runes l and r.
func implicitMul(l, r rune) bool {
	switch {
	case isDigit(l):
		return unicode.IsLetter(r) || r == '('
	case l == ')':
		return unicode.IsLetter(r) || isDigit(r)
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
