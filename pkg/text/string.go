package text

import (
	"strconv"
	"strings"
)

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// IsNumber returns if a text is a number.
func IsNumber(text string) bool {
	_, err := strconv.Atoi(text)
	return err == nil
}

// FirstLine returns the first line of a text without its terminator.
func FirstLine(text string) string {
	if i := strings.IndexRune(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

// LineRange returns the boundaries [start, end) in runes of the line containing
// the rune index, from the character following the previous line terminator
// through and including the next terminator (or the end of the text).
//
// The index can equal the text length to designate the caret resting after the
// last character. Indices outside [0, len] panic.
func LineRange(text string, index int) (int, int) {
	runes := []rune(text)
	if index < 0 || index > len(runes) {
		panic("text: line index out of range")
	}

	start := index
	for start > 0 && runes[start-1] != '\n' {
		start--
	}

	// An index sitting on a terminator belongs to the line this terminator ends.
	end := index
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	if end < len(runes) {
		end++ // include the terminator
	}
	return start, end
}
