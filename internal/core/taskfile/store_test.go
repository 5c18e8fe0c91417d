package taskfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/paratrooper/internal/core/task"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "tasks.md"))

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Main)
	assert.False(t, store.Exists())
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "dir", "tasks.md"))

	doc := task.NewDocument()
	d, err := task.ParseDate("15-06-2025")
	require.NoError(t, err)
	doc.EnsureSection("HOME").Add(&task.Task{
		ID: "001", Text: "water plants", Status: task.StatusIncomplete, Date: d, Section: "HOME",
	})

	require.NoError(t, store.Save(doc))
	assert.True(t, store.Exists())

	loaded, err := store.Load()
	require.NoError(t, err)
	got := loaded.FindMain("001")
	require.NotNil(t, got)
	assert.Equal(t, "water plants", got.Text)
	assert.Equal(t, d, got.Date)
}

func TestFileStore_SaveIsCanonical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")
	messy := "# MAIN\n\n\n## HOME\n- [ ] spaced | #001\n\n\n\n"
	require.NoError(t, os.WriteFile(path, []byte(messy), 0o644))

	store := NewFileStore(path)
	doc, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Save(doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# MAIN\n\n## HOME\n\n- [ ] spaced | #001\n", string(data))
}
