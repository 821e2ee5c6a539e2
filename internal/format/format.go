// Package format implements the incremental rich-text formatting engine:
// inline bold/italic rewriting, list marker management, and the codec
// converting between the plain-text storage encoding and the attributed form.
package format

import (
	"unicode/utf8"

	"github.com/julien-sobczak/the-noteformatter/internal/richtext"
)

// FormattedText is the result of a formatting operation: a caret-correction
// hint covering the rewritten region. The caret must land immediately after
// the last character carrying the caret-marker attribute inside this range
// (see CaretPosition). Consumed once by the caller.
type FormattedText struct {
	Caret richtext.Range
}

// BodyAttributes returns the neutral style of unformatted text.
func BodyAttributes() richtext.Attributes {
	return richtext.Attributes{
		richtext.AttributeParagraphStyle: "body",
	}
}

// CaretPosition resolves a caret-correction hint against the current buffer
// content: the index right after the last caret-marker character inside the
// hinted range, or the end of the range when no marker is present.
func CaretPosition(buffer *richtext.Buffer, formatted *FormattedText) int {
	position := formatted.Caret.End()
	buffer.EnumerateAttribute(richtext.AttributeCaretMarker, formatted.Caret, func(value any, r richtext.Range) {
		if marked, ok := value.(bool); ok && marked {
			position = r.End()
		}
	})
	return position
}

// runeIndex converts a byte offset returned by the regexp engine into the
// rune offset used by buffer ranges.
func runeIndex(s string, byteOffset int) int {
	return utf8.RuneCountInString(s[:byteOffset])
}
