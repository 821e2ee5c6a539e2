package format

import (
	"fmt"

	"github.com/julien-sobczak/the-noteformatter/internal/richtext"
)

// ChangeDescription captures everything the formatters need to know about the
// edit that just happened. Built fresh per edit, never persisted.
type ChangeDescription struct {
	// Text is the literal text just inserted (empty for deletions).
	Text string
	// Deleted is the literal text just removed (empty for insertions).
	Deleted string
	// Kind distinguishes character edits from attribute-only edits.
	Kind richtext.EditKind
	// EditedRange is the precise range affected in the resulting buffer.
	EditedRange richtext.Range
	// LineRange is the edited range unioned with the line containing its start.
	LineRange richtext.Range
	// ListKind is the kind governing the edited line, if any.
	ListKind *ListKind
}

// DescribeChange builds the description of the edit just reported by the
// buffer.
func DescribeChange(buffer *richtext.Buffer, edit richtext.Edit) ChangeDescription {
	line := buffer.LineRange(edit.Range.Location)
	change := ChangeDescription{
		Text:        edit.Text,
		Deleted:     edit.Replaced,
		Kind:        edit.Kind,
		EditedRange: edit.Range,
		LineRange:   line.Union(edit.Range),
	}
	if kind, _, found := listItemAt(buffer, line); found {
		change.ListKind = &kind
	}
	return change
}

func (c ChangeDescription) String() string {
	kind := "none"
	if c.ListKind != nil {
		kind = c.ListKind.String()
	}
	return fmt.Sprintf("%s %q (deleted %q) at %s line %s list %s",
		c.Kind, c.Text, c.Deleted, c.EditedRange, c.LineRange, kind)
}

// listItemAt returns the list kind governing a line and the range of its
// marker (marker glyph plus trailing space). The marker must sit at the very
// start of the line.
func listItemAt(buffer *richtext.Buffer, line richtext.Range) (ListKind, richtext.Range, bool) {
	var kind ListKind
	var markerRange richtext.Range
	found := false
	buffer.EnumerateAttribute(richtext.AttributeListKind, line, func(value any, r richtext.Range) {
		if found || r.Location != line.Location {
			return
		}
		token, ok := value.(string)
		if !ok {
			panic(fmt.Sprintf("format: unexpected list-kind attribute value %v", value))
		}
		kind = MustParseListKind(token)
		markerRange = r
		found = true
	})
	return kind, markerRange, found
}
