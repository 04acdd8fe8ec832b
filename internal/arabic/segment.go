package arabic

import "strings"

// Segment splits text into sentence-like units. A unit ends at a '.' seen
// while no parenthesis is open; the '.' stays with the unit and each unit is
// trimmed. A trailing unit without a terminator is kept when non-blank.
// Unbalanced ')' never drives the depth below zero, and a '.' after an
// unclosed '(' is never a split point.
func Segment(text string) []string {
	segments := []string{}

	// The structural characters are ASCII, so a byte scan never splits a
	// multi-byte rune and invalid UTF-8 passes through untouched.
	start, depth := 0, 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '.':
			if depth == 0 {
				segments = append(segments, strings.TrimSpace(text[start:i+1]))
				start = i + 1
			}
		}
	}

	if tail := strings.TrimSpace(text[start:]); tail != "" {
		segments = append(segments, tail)
	}

	return segments
}
