package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julien-sobczak/the-noteformatter/internal/store"
	"github.com/julien-sobczak/the-noteformatter/pkg/clock"
	"github.com/julien-sobczak/the-noteformatter/pkg/oid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryAdd(t *testing.T) {
	now := time.Date(2023, time.Month(6), 1, 10, 0, 0, 0, time.UTC)
	clock.FreezeAt(now)
	defer clock.Unfreeze()
	oid.UseSequence(t)

	repository, err := store.NewRepository(t.TempDir())
	require.NoError(t, err)

	note, err := repository.Add("Groceries\n* milk\n* bread")
	require.NoError(t, err)

	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, "groceries", note.Slug)
	assert.Equal(t, now, note.CreatedAt)
	assert.Equal(t, now, note.UpdatedAt)
	assert.Len(t, note.OID.String(), 40)
}

func TestRepositoryPersistsNotes(t *testing.T) {
	oid.UseSequence(t)
	root := t.TempDir()

	repository, err := store.NewRepository(root)
	require.NoError(t, err)
	note, err := repository.Add("Groceries\n* milk")
	require.NoError(t, err)

	// The content is written back verbatim
	raw, err := os.ReadFile(filepath.Join(root, "groceries.md"))
	require.NoError(t, err)
	assert.Equal(t, "Groceries\n* milk", string(raw))

	// Reopening the repository restores the notes
	reopened, err := store.NewRepository(root)
	require.NoError(t, err)
	notes := reopened.List()
	require.Len(t, notes, 1)
	assert.Equal(t, note.OID, notes[0].OID)
	assert.Equal(t, "Groceries\n* milk", notes[0].Content)
}

func TestRepositorySlugsAreUnique(t *testing.T) {
	oid.UseSequence(t)
	repository, err := store.NewRepository(t.TempDir())
	require.NoError(t, err)

	first, err := repository.Add("Todo\nitem")
	require.NoError(t, err)
	second, err := repository.Add("Todo\nother item")
	require.NoError(t, err)

	assert.Equal(t, "todo", first.Slug)
	assert.Equal(t, "todo-2", second.Slug)
}

func TestRepositoryUpdate(t *testing.T) {
	start := time.Date(2023, time.Month(6), 1, 10, 0, 0, 0, time.UTC)
	testClock := clock.FreezeAt(start)
	defer clock.Unfreeze()
	oid.UseSequence(t)

	repository, err := store.NewRepository(t.TempDir())
	require.NoError(t, err)
	note, err := repository.Add("Draft\nfirst version")
	require.NoError(t, err)

	testClock.FastForward(2 * time.Hour)
	note.Update("Draft\nsecond version")
	require.NoError(t, repository.Save(note))

	reloaded, err := repository.Get(note.OID)
	require.NoError(t, err)
	assert.Equal(t, "Draft\nsecond version", reloaded.Content)
	assert.Equal(t, start, reloaded.CreatedAt)
	assert.Equal(t, start.Add(2*time.Hour), reloaded.UpdatedAt)
}

func TestRepositoryDelete(t *testing.T) {
	oid.UseSequence(t)
	root := t.TempDir()
	repository, err := store.NewRepository(root)
	require.NoError(t, err)

	note, err := repository.Add("Obsolete\nbye")
	require.NoError(t, err)
	require.NoError(t, repository.Delete(note.OID))

	assert.Empty(t, repository.List())
	_, err = os.Stat(filepath.Join(root, "obsolete.md"))
	assert.True(t, os.IsNotExist(err))

	_, err = repository.Get(note.OID)
	assert.Error(t, err)
}

func TestRepositoryNotifiesSubscribers(t *testing.T) {
	oid.UseSequence(t)
	repository, err := store.NewRepository(t.TempDir())
	require.NoError(t, err)

	var notified []*store.Note
	repository.Subscribe(func(note *store.Note) {
		notified = append(notified, note)
	})

	note, err := repository.Add("Watched\ncontent")
	require.NoError(t, err)
	require.NoError(t, repository.Save(note))
	require.NoError(t, repository.Delete(note.OID))

	assert.Len(t, notified, 3)
}
