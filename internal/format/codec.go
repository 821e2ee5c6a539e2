package format

import (
	"github.com/julien-sobczak/the-noteformatter/internal/richtext"
)

// Load converts the plain-text storage encoding into an attributed document:
// body style first, then inline word styling, then list markers. Word styling
// must come first since a list line can also contain bold or italic text.
func Load(plain string) *richtext.Buffer {
	document := richtext.NewBuffer(plain, BodyAttributes())
	document = NewWordFormatter().Format(document)
	lists := NewListFormatter()
	for _, category := range ListCategories {
		document = lists.Format(category, document)
	}
	return document
}

// Save converts an attributed document back into the plain-text storage
// encoding, in the inverse order: list markers first, then inline styling.
// All attributes are discarded. The receiver is left untouched.
func Save(document *richtext.Buffer) string {
	result := NewListFormatter().Deformat(document)
	result = NewWordFormatter().Deformat(result)
	return result.String()
}
