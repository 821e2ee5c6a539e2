package store

import (
	"time"

	"github.com/gosimple/slug"
	"github.com/julien-sobczak/the-noteformatter/pkg/clock"
	"github.com/julien-sobczak/the-noteformatter/pkg/oid"
	"github.com/julien-sobczak/the-noteformatter/pkg/text"
)

// Note is a persisted plain-text document. By convention the first line is
// the title. The content uses the storage encoding produced by format.Save
// and is written back verbatim.
type Note struct {
	OID       oid.OID   `yaml:"oid"`
	Slug      string    `yaml:"slug"`
	Title     string    `yaml:"title"`
	CreatedAt time.Time `yaml:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at"`

	// Content lives in its own file, not in the index.
	Content string `yaml:"-"`
}

// NewNote initializes a note from its plain-text content.
func NewNote(content string) *Note {
	title := text.FirstLine(content)
	now := clock.Now()
	return &Note{
		OID:       oid.New(),
		Slug:      slug.Make(title),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update replaces the content, refreshing the title and timestamp.
// The slug is kept stable so the note file does not move.
func (n *Note) Update(content string) {
	n.Content = content
	n.Title = text.FirstLine(content)
	n.UpdatedAt = clock.Now()
}

// Filename returns the file holding the note content inside the repository.
func (n *Note) Filename() string {
	return n.Slug + ".md"
}
