package format_test

import (
	"testing"

	"github.com/julien-sobczak/the-noteformatter/internal/format"
	"github.com/julien-sobczak/the-noteformatter/internal/richtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typing simulates a host edit: splice the text and return the resulting
// change description, the way the orchestrator builds it.
func typing(buffer *richtext.Buffer, at int, text string) format.ChangeDescription {
	var edit richtext.Edit
	captured := false
	observer := func(e richtext.Edit) {
		if !captured {
			edit = e
			captured = true
		}
	}
	buffer.OnEdit(observer)
	buffer.Replace(richtext.NewRange(at, 0), text, format.BodyAttributes())
	return format.DescribeChange(buffer, edit)
}

func TestFormatWordsBoldTrigger(t *testing.T) {
	buffer := richtext.NewBuffer("Hello **bold*", format.BodyAttributes())
	change := typing(buffer, 13, "*")

	formatted := format.NewWordFormatter().FormatWords(buffer, change)
	require.NotNil(t, formatted)

	// Markers are gone, a single trailing space was appended
	assert.Equal(t, "Hello bold ", buffer.String())

	// A single styled run contains the word
	var runs []richtext.Range
	buffer.EnumerateAttribute(richtext.AttributeFontWeight, richtext.NewRange(0, buffer.Length()),
		func(value any, r richtext.Range) {
			assert.Equal(t, "bold", value)
			runs = append(runs, r)
		})
	require.Len(t, runs, 1)
	assert.Equal(t, richtext.NewRange(6, 4), runs[0])

	// Caret lands after the trailing space
	assert.Equal(t, 11, format.CaretPosition(buffer, formatted))
}

func TestFormatWordsItalicTrigger(t *testing.T) {
	buffer := richtext.NewBuffer("Say *hi", format.BodyAttributes())
	change := typing(buffer, 7, "*")

	formatted := format.NewWordFormatter().FormatWords(buffer, change)
	require.NotNil(t, formatted)
	assert.Equal(t, "Say hi ", buffer.String())

	attrs, effectiveRange := buffer.AttributesAt(4)
	assert.Equal(t, "italic", attrs[richtext.AttributeFontStyle])
	assert.Equal(t, richtext.NewRange(4, 2), effectiveRange)
}

func TestFormatWordsBoldNeverTriggersItalic(t *testing.T) {
	buffer := richtext.NewBuffer("**word*", format.BodyAttributes())
	change := typing(buffer, 7, "*")

	formatted := format.NewWordFormatter().FormatWords(buffer, change)
	require.NotNil(t, formatted)
	assert.Equal(t, "word ", buffer.String())

	// The inner text must carry the bold style, never the italic one
	attrs, _ := buffer.AttributesAt(0)
	assert.Equal(t, "bold", attrs[richtext.AttributeFontWeight])
	assert.NotContains(t, attrs, richtext.AttributeFontStyle)
}

func TestFormatWordsNoTrailingSpaceCollision(t *testing.T) {
	buffer := richtext.NewBuffer("**word** next", format.BodyAttributes())
	change := format.ChangeDescription{
		Text:        "*",
		Kind:        richtext.CharactersEdited,
		EditedRange: richtext.NewRange(7, 1),
		LineRange:   buffer.LineRange(0),
	}

	formatted := format.NewWordFormatter().FormatWords(buffer, change)
	require.NotNil(t, formatted)

	// The following character is already a space: no second one
	assert.Equal(t, "word next", buffer.String())
}

func TestFormatWordsMultiWordPattern(t *testing.T) {
	buffer := richtext.NewBuffer("**two words**", format.BodyAttributes())
	change := format.ChangeDescription{
		Text:        "*",
		Kind:        richtext.CharactersEdited,
		EditedRange: richtext.NewRange(12, 1),
		LineRange:   buffer.LineRange(0),
	}

	formatted := format.NewWordFormatter().FormatWords(buffer, change)
	require.NotNil(t, formatted)
	assert.Equal(t, "two words ", buffer.String())
}

func TestFormatWordsNoMatch(t *testing.T) {
	buffer := richtext.NewBuffer("Nothing to do here", format.BodyAttributes())
	change := typing(buffer, 18, "e")

	assert.Nil(t, format.NewWordFormatter().FormatWords(buffer, change))
	assert.Equal(t, "Nothing to do heree", buffer.String())
}

func TestFormatWordsEmptyDocument(t *testing.T) {
	buffer := richtext.NewBuffer("", format.BodyAttributes())
	change := format.ChangeDescription{
		Kind:        richtext.CharactersEdited,
		EditedRange: richtext.NewRange(0, 0),
		LineRange:   richtext.NewRange(0, 0),
	}

	assert.Nil(t, format.NewWordFormatter().FormatWords(buffer, change))
	assert.Equal(t, "", buffer.String())
}

func TestBulkFormatWords(t *testing.T) {
	document := richtext.NewBuffer("**a** and *b*\nplain **c d**", format.BodyAttributes())

	document = format.NewWordFormatter().Format(document)
	assert.Equal(t, "a and b\nplain c d", document.String())

	attrs, _ := document.AttributesAt(0)
	assert.Equal(t, "bold", attrs[richtext.AttributeFontWeight])
	attrs, _ = document.AttributesAt(6)
	assert.Equal(t, "italic", attrs[richtext.AttributeFontStyle])
	attrs, _ = document.AttributesAt(14)
	assert.Equal(t, "bold", attrs[richtext.AttributeFontWeight])
}

func TestBulkFormatWordsIsIdempotent(t *testing.T) {
	formatter := format.NewWordFormatter()
	document := formatter.Format(richtext.NewBuffer("**a** and *b*", format.BodyAttributes()))

	again := formatter.Format(document)
	assert.Equal(t, document.String(), again.String())

	var runs int
	again.EnumerateAttribute(richtext.AttributeFontWeight, richtext.NewRange(0, again.Length()),
		func(value any, r richtext.Range) {
			runs++
			assert.Equal(t, richtext.NewRange(0, 1), r)
		})
	assert.Equal(t, 1, runs)
}

func TestDeformatWords(t *testing.T) {
	formatter := format.NewWordFormatter()
	document := formatter.Format(richtext.NewBuffer("**a b** then *c*", format.BodyAttributes()))
	require.Equal(t, "a b then c", document.String())

	restored := formatter.Deformat(document)
	assert.Equal(t, "**a b** then *c*", restored.String())

	// Styled runs are gone
	restored.EnumerateAttribute(richtext.AttributeFontWeight, richtext.NewRange(0, restored.Length()),
		func(value any, r richtext.Range) {
			t.Errorf("unexpected bold run at %s", r)
		})
}
