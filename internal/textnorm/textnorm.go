// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm holds the accent, separator and line helpers shared by the
// parser and the category inferencer.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Bullet is the list separator commonly pasted into key-point lines.
const Bullet = "•"

var pointSeparators = regexp.MustCompile(`[,;]+`)

// StripAccents removes combining diacritical marks, keeping base characters
// and case ("Soulevé" becomes "Souleve").
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Fold lowercases s and strips its accents. Prefix and keyword matching
// always run on folded text.
func Fold(s string) string {
	return StripAccents(strings.ToLower(s))
}

// SplitPoints splits a key-point list on bullets, commas and semicolons,
// trimming each piece and dropping empty ones. The result is never nil.
func SplitPoints(s string) []string {
	s = strings.ReplaceAll(s, Bullet, ",")
	points := []string{}
	for _, p := range pointSeparators.Split(s, -1) {
		if p = strings.TrimSpace(p); p != "" {
			points = append(points, p)
		}
	}
	return points
}

// ValueAfterColon returns the trimmed text after the first colon in line,
// or "" when line has no colon.
func ValueAfterColon(line string) string {
	_, after, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(after)
}

var codeDashes = strings.NewReplacer("–", "-", "—", "-")

// NormalizeCode returns the canonical form of an exercise code: dashes
// unified to "-", whitespace removed, uppercase ("s1 – 1" becomes "S1-1").
func NormalizeCode(raw string) string {
	code := codeDashes.Replace(raw)
	code = strings.Join(strings.FieldsFunc(code, unicode.IsSpace), "")
	return strings.ToUpper(code)
}

// isLineBreak reports whether r ends a line inside a paragraph's text.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Lines splits text into trimmed, non-empty lines.
func Lines(text string) []string {
	var lines []string
	for _, l := range strings.FieldsFunc(text, isLineBreak) {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
