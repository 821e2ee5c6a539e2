package format

import (
	"fmt"

	"github.com/julien-sobczak/the-noteformatter/internal/richtext"
	"github.com/julien-sobczak/the-noteformatter/pkg/text"
)

// ListFormatter manages list markers: start triggers, continuation and
// termination on newline, ordered renumbering, and checkmark state.
type ListFormatter struct{}

func NewListFormatter() *ListFormatter {
	return &ListFormatter{}
}

// FormatList dispatches an edit through the list rules in order:
// empty-item termination, item continuation, then new-list trigger.
// The first applicable rule wins. Returns nil when none applies.
func (f *ListFormatter) FormatList(buffer *richtext.Buffer, change ChangeDescription) *FormattedText {
	if buffer.Length() == 0 {
		return nil
	}
	if formatted := f.terminateEmptyItem(buffer, change); formatted != nil {
		return formatted
	}
	if formatted := f.continueItem(buffer, change); formatted != nil {
		return formatted
	}
	return f.startList(buffer, change)
}

// terminateEmptyItem ends a list when the user presses return on an item
// containing only its marker: the item line is deleted and the caret moves
// back to the preceding line end.
func (f *ListFormatter) terminateEmptyItem(buffer *richtext.Buffer, change ChangeDescription) *FormattedText {
	if change.Text != "\n" || change.ListKind == nil {
		return nil
	}

	line := buffer.LineRange(change.EditedRange.Location)
	_, markerRange, found := listItemAt(buffer, line)
	if !found {
		return nil
	}
	if line.Length != markerRange.Length+1 {
		// The item carries content beyond the marker and the newline.
		return nil
	}

	// The character after the deleted line must not inherit the item style.
	if line.End() < buffer.Length() {
		buffer.SetAttributes(BodyAttributes(), richtext.Range{Location: line.End(), Length: 1})
	}
	buffer.Replace(line, "", nil)

	if line.Location > 0 {
		// Caret lands after the newline ending the previous line.
		return &FormattedText{Caret: richtext.Range{Location: line.Location - 1, Length: 1}}
	}
	return &FormattedText{Caret: richtext.Range{Location: 0, Length: 0}}
}

// continueItem inserts the next item marker after a newline typed inside a
// list item, then renumbers the ordered items that follow.
func (f *ListFormatter) continueItem(buffer *richtext.Buffer, change ChangeDescription) *FormattedText {
	if change.Text != "\n" || change.ListKind == nil {
		return nil
	}

	next := change.ListKind.NextItem()
	marker := renderMarker(next)
	markerRange := richtext.Range{Location: change.EditedRange.End(), Length: marker.Length()}
	buffer.ReplaceWith(richtext.Range{Location: markerRange.Location, Length: 0}, marker)

	if next.Category == CategoryOrdered {
		f.renumberFollowing(buffer, buffer.LineRange(markerRange.Location), next)
	}

	return &FormattedText{Caret: markerRange}
}

// renumberFollowing walks the lines after an ordered item and rewrites the
// marker of every immediately-following ordered item, stopping at the first
// line that is not order-compatible or at the end of the buffer.
func (f *ListFormatter) renumberFollowing(buffer *richtext.Buffer, line richtext.Range, current ListKind) {
	for {
		if line.End() >= buffer.Length() {
			return
		}
		line = buffer.LineRange(line.End())
		kind, markerRange, found := listItemAt(buffer, line)
		if !found || kind.Category != CategoryOrdered {
			return
		}
		current = current.NextItem()
		buffer.ReplaceWith(markerRange, renderMarker(current))
		line = buffer.LineRange(line.Location)
	}
}

// startList detects a markdown list trigger on a line not yet part of a list
// and replaces the raw syntax with a styled marker run.
func (f *ListFormatter) startList(buffer *richtext.Buffer, change ChangeDescription) *FormattedText {
	if change.ListKind != nil {
		return nil
	}

	lineText := buffer.Substring(change.LineRange)
	for _, descriptor := range listDescriptors {
		match := descriptor.trigger.FindStringSubmatch(lineText)
		if match == nil {
			continue
		}
		kind := descriptor.parse(match)
		marker := renderMarker(kind)
		matchedRange := richtext.Range{
			Location: change.LineRange.Location,
			Length:   runeIndex(lineText, len(match[0])),
		}
		buffer.ReplaceWith(matchedRange, marker)

		// A new ordered item started above existing ones renumbers them,
		// exactly as a continuation does.
		if kind.Category == CategoryOrdered {
			f.renumberFollowing(buffer, buffer.LineRange(matchedRange.Location), kind)
		}

		return &FormattedText{Caret: richtext.Range{Location: matchedRange.Location, Length: marker.Length()}}
	}
	return nil
}

// SetCheckmark updates the checked state of a checkmark item. The index
// locates the line. Calling it on a line holding another list kind is a
// programming error.
func (f *ListFormatter) SetCheckmark(buffer *richtext.Buffer, index int, checked bool) {
	line := buffer.LineRange(index)
	kind, markerRange, found := listItemAt(buffer, line)
	if !found {
		panic(fmt.Sprintf("format: no list item on line at %d", index))
	}
	if kind.Category != CategoryCheckmark {
		panic(fmt.Sprintf("format: incompatible list kind %s for checkmark update", kind))
	}
	buffer.ReplaceWith(markerRange, renderMarker(CheckmarkKind(checked)))
}

// InsertCheckmark splices a fresh unchecked checkmark marker at the start of
// the caret's line. This is the explicit "insert checklist item" action,
// independent of the markdown trigger path.
func (f *ListFormatter) InsertCheckmark(buffer *richtext.Buffer, index int) *FormattedText {
	line := buffer.LineRange(index)
	marker := renderMarker(CheckmarkKind(false))
	buffer.ReplaceWith(richtext.Range{Location: line.Location, Length: 0}, marker)
	return &FormattedText{Caret: richtext.Range{Location: line.Location, Length: marker.Length()}}
}

// Format rewrites every line starting with the category's markdown trigger
// into a styled marker run. Lines already part of a list are left untouched.
// Used on document load only.
func (f *ListFormatter) Format(category ListCategory, document *richtext.Buffer) *richtext.Buffer {
	var descriptor listDescriptor
	for _, d := range listDescriptors {
		if d.category == category {
			descriptor = d
		}
	}
	return document.MapLines(func(line *richtext.Buffer) *richtext.Buffer {
		if line.Length() == 0 {
			return line
		}
		fullLine := richtext.Range{Location: 0, Length: line.Length()}
		if _, _, found := listItemAt(line, fullLine); found {
			return line
		}
		match := descriptor.trigger.FindStringSubmatch(line.String())
		if match == nil {
			return line
		}
		kind := descriptor.parse(match)
		line.ReplaceWith(richtext.Range{Location: 0, Length: runeIndex(line.String(), len(match[0]))}, renderMarker(kind))
		return line
	})
}

// Deformat restores the markdown prefix of every list line. A line holding
// only a marker is not a valid persisted item: its marker is dropped.
func (f *ListFormatter) Deformat(document *richtext.Buffer) *richtext.Buffer {
	return document.MapLines(func(line *richtext.Buffer) *richtext.Buffer {
		if line.Length() == 0 {
			return line
		}
		fullLine := richtext.Range{Location: 0, Length: line.Length()}
		kind, markerRange, found := listItemAt(line, fullLine)
		if !found {
			return line
		}
		content := line.Substring(richtext.Range{Location: markerRange.End(), Length: line.Length() - markerRange.End()})
		if text.IsBlank(content) {
			// Marker-only lines cannot occur in the storage encoding.
			line.Replace(markerRange, "", nil)
			return line
		}
		line.Replace(markerRange, kind.MarkdownPrefix(), BodyAttributes())
		return line
	})
}

// renderMarker builds the attributed marker run: the glyph plus a trailing
// space, carrying the list-kind token, the kerning hint of the kind, and a
// caret marker on its last character.
func renderMarker(kind ListKind) *richtext.Buffer {
	attrs := BodyAttributes().Merge(richtext.Attributes{
		richtext.AttributeListKind: kind.String(),
		richtext.AttributeKern:     kind.Kern(),
	})
	marker := richtext.NewBuffer(kind.Marker()+" ", attrs)
	marker.AddAttributes(
		richtext.Attributes{richtext.AttributeCaretMarker: true},
		richtext.Range{Location: marker.Length() - 1, Length: 1},
	)
	return marker
}
