package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julien-sobczak/the-noteformatter/pkg/oid"
	"gopkg.in/yaml.v3"
)

// IndexFile lists the note metadata inside a repository directory.
const IndexFile = "index.yaml"

// Repository is a file-backed note store: one file per note under a root
// directory, plus a YAML index with the metadata. It is the persistence
// collaborator of the formatting engine, which only exchanges plain-text
// contents with it.
type Repository struct {
	root        string
	notes       []*Note
	subscribers []func(*Note)
}

// NewRepository opens (or initializes) a repository directory.
func NewRepository(root string) (*Repository, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("unable to create repository directory %q: %w", root, err)
	}

	r := &Repository{root: root}
	if err := r.readIndex(); err != nil {
		return nil, err
	}
	return r, nil
}

// Subscribe registers a callback invoked after every note addition, update,
// or deletion.
func (r *Repository) Subscribe(fn func(*Note)) {
	r.subscribers = append(r.subscribers, fn)
}

// Add creates a new note from its plain-text content and persists it.
func (r *Repository) Add(content string) (*Note, error) {
	note := NewNote(content)

	// Keep slugs unique inside the repository
	base := note.Slug
	if base == "" {
		base = "untitled"
		note.Slug = base
	}
	for i := 2; r.findBySlug(note.Slug) != nil; i++ {
		note.Slug = fmt.Sprintf("%s-%d", base, i)
	}

	r.notes = append(r.notes, note)
	if err := r.write(note); err != nil {
		return nil, err
	}
	r.notifySubscribers(note)
	return note, nil
}

// Get returns a note by identifier.
func (r *Repository) Get(id oid.OID) (*Note, error) {
	for _, note := range r.notes {
		if note.OID == id {
			return note, nil
		}
	}
	return nil, fmt.Errorf("no note %s", id)
}

// List returns all notes in index order.
func (r *Repository) List() []*Note {
	return r.notes
}

// Save persists the current state of a known note.
func (r *Repository) Save(note *Note) error {
	if _, err := r.Get(note.OID); err != nil {
		return err
	}
	if err := r.write(note); err != nil {
		return err
	}
	r.notifySubscribers(note)
	return nil
}

// Delete removes a note and its file.
func (r *Repository) Delete(id oid.OID) error {
	for i, note := range r.notes {
		if note.OID != id {
			continue
		}
		r.notes = append(r.notes[:i], r.notes[i+1:]...)
		if err := os.Remove(filepath.Join(r.root, note.Filename())); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("unable to delete note file: %w", err)
		}
		if err := r.writeIndex(); err != nil {
			return err
		}
		r.notifySubscribers(note)
		return nil
	}
	return fmt.Errorf("no note %s", id)
}

/* Persistence */

func (r *Repository) readIndex() error {
	path := filepath.Join(r.root, IndexFile)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to read index %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &r.notes); err != nil {
		return fmt.Errorf("unable to parse index %q: %w", path, err)
	}
	for _, note := range r.notes {
		content, err := os.ReadFile(filepath.Join(r.root, note.Filename()))
		if err != nil {
			return fmt.Errorf("unable to read note %s: %w", note.OID, err)
		}
		note.Content = string(content)
	}
	return nil
}

func (r *Repository) writeIndex() error {
	raw, err := yaml.Marshal(r.notes)
	if err != nil {
		return fmt.Errorf("unable to serialize index: %w", err)
	}
	path := filepath.Join(r.root, IndexFile)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("unable to write index %q: %w", path, err)
	}
	return nil
}

// write persists a note content verbatim and refreshes the index.
func (r *Repository) write(note *Note) error {
	path := filepath.Join(r.root, note.Filename())
	if err := os.WriteFile(path, []byte(note.Content), 0644); err != nil {
		return fmt.Errorf("unable to write note %s: %w", note.OID, err)
	}
	return r.writeIndex()
}

func (r *Repository) findBySlug(s string) *Note {
	for _, note := range r.notes {
		if note.Slug == s {
			return note
		}
	}
	return nil
}

func (r *Repository) notifySubscribers(note *Note) {
	for _, fn := range r.subscribers {
		fn(note)
	}
}
