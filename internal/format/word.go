package format

import (
	"regexp"

	"github.com/julien-sobczak/the-noteformatter/internal/richtext"
)

// wordPattern binds a markdown enclosing syntax to its target style.
// Group 1 captures the full markup, group 2 the enclosed words.
type wordPattern struct {
	name      string
	trigger   *regexp.Regexp
	enclosing string
	// attribute identifying styled runs on deformat
	attribute string
	value     string
}

// Bold comes first so that the italic pattern never fires on the inner text
// of a **bold** markup. The italic left boundary must not be preceded by
// another emphasis character.
var wordPatterns = []wordPattern{
	{
		name:      "bold",
		trigger:   regexp.MustCompile(`(\*\*(\w+(?:\s\w+)*)\*\*)`),
		enclosing: "**",
		attribute: richtext.AttributeFontWeight,
		value:     "bold",
	},
	{
		name:      "italic",
		trigger:   regexp.MustCompile(`(?:^|[^*_])(\*(\w+(?:\s\w+)*)\*)`),
		enclosing: "*",
		attribute: richtext.AttributeFontStyle,
		value:     "italic",
	},
}

func (p wordPattern) style() richtext.Attributes {
	return BodyAttributes().Merge(richtext.Attributes{p.attribute: p.value})
}

// WordFormatter rewrites **bold** and *italic* markups into styled runs and
// back.
type WordFormatter struct{}

func NewWordFormatter() *WordFormatter {
	return &WordFormatter{}
}

// FormatWords searches the edited line for the first bold or italic markup
// and rewrites it into a styled run. A single trailing space with body style
// is appended when the character following the markup is not already a space,
// so that the styled run never collides with subsequent text. Returns nil
// when no pattern matches.
func (f *WordFormatter) FormatWords(buffer *richtext.Buffer, change ChangeDescription) *FormattedText {
	if buffer.Length() == 0 {
		return nil
	}

	lineText := buffer.Substring(change.LineRange)
	for _, pattern := range wordPatterns {
		match := pattern.trigger.FindStringSubmatchIndex(lineText)
		if match == nil {
			continue
		}

		markupRange := richtext.Range{
			Location: change.LineRange.Location + runeIndex(lineText, match[2]),
			Length:   runeIndex(lineText, match[3]) - runeIndex(lineText, match[2]),
		}
		words := lineText[match[4]:match[5]]

		replacement := richtext.NewBuffer(words, pattern.style())
		if !spaceFollows(buffer, markupRange.End()) {
			replacement.Append(richtext.NewBuffer(" ", BodyAttributes()))
		}
		replacement.AddAttributes(
			richtext.Attributes{richtext.AttributeCaretMarker: true},
			richtext.Range{Location: replacement.Length() - 1, Length: 1},
		)

		buffer.ReplaceWith(markupRange, replacement)

		return &FormattedText{Caret: buffer.LineRange(markupRange.Location)}
	}
	return nil
}

// spaceFollows reports if the character at an index is a space.
func spaceFollows(buffer *richtext.Buffer, index int) bool {
	if index >= buffer.Length() {
		return false
	}
	return buffer.Substring(richtext.Range{Location: index, Length: 1}) == " "
}

// Format rewrites every bold then italic markup in the document into styled
// runs, line by line. Used on document load only; no trailing space or caret
// marker is added.
func (f *WordFormatter) Format(document *richtext.Buffer) *richtext.Buffer {
	result := document
	for _, pattern := range wordPatterns {
		result = result.MapLines(func(line *richtext.Buffer) *richtext.Buffer {
			formatWordsInLine(line, pattern)
			return line
		})
	}
	return result
}

// formatWordsInLine rewrites all non-overlapping matches in left-to-right
// order. Rewritten runs contain no markup characters so searching restarts
// from the line start after every rewrite.
func formatWordsInLine(line *richtext.Buffer, pattern wordPattern) {
	for {
		lineText := line.String()
		match := pattern.trigger.FindStringSubmatchIndex(lineText)
		if match == nil {
			return
		}
		markupRange := richtext.Range{
			Location: runeIndex(lineText, match[2]),
			Length:   runeIndex(lineText, match[3]) - runeIndex(lineText, match[2]),
		}
		words := lineText[match[4]:match[5]]
		line.Replace(markupRange, words, pattern.style())
	}
}

// Deformat restores the markdown syntax of every styled run, removing the
// style attribute. The inverse of Format.
func (f *WordFormatter) Deformat(document *richtext.Buffer) *richtext.Buffer {
	return document.MapLines(func(line *richtext.Buffer) *richtext.Buffer {
		for _, pattern := range wordPatterns {
			deformatWordsInLine(line, pattern)
		}
		return line
	})
}

func deformatWordsInLine(line *richtext.Buffer, pattern wordPattern) {
	var runs []richtext.Range
	line.EnumerateAttribute(pattern.attribute, richtext.Range{Location: 0, Length: line.Length()},
		func(value any, r richtext.Range) {
			if value == pattern.value {
				runs = append(runs, r)
			}
		})

	// Rewrites change the line length: process in reverse position order.
	for i := len(runs) - 1; i >= 0; i-- {
		r := runs[i]
		words := line.Substring(r)
		line.Replace(r, pattern.enclosing+words+pattern.enclosing, BodyAttributes())
	}
}
