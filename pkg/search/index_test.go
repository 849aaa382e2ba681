package search

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdeck/devdeck/pkg/models"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func testSheets() []*models.Sheet {
	return []*models.Sheet{
		{
			ID:   "git-tricks",
			Name: "Git Tricks",
			Headers: []*models.Header{
				{
					ID:   "h1",
					Name: "Daily",
					Notes: []*models.Note{
						{ID: "n1", Title: "git status", Content: "git status", Kind: models.KindCommand, Description: "Check repo"},
						{ID: "n2", Title: "remember to rebase...", Content: "remember to rebase before pushing", Kind: models.KindPlainNote},
					},
				},
			},
		},
		{
			ID:   "docker",
			Name: "Docker",
			Headers: []*models.Header{
				{
					ID:   "h2",
					Name: "Containers",
					Notes: []*models.Note{
						{ID: "n3", Title: "docker ps", Content: "docker ps", Kind: models.KindCommand},
					},
				},
			},
		},
	}
}

func TestIndexReindexAndSearch(t *testing.T) {
	idx := newTestIndex(t)
	require.NoError(t, idx.Reindex(testSheets()))

	notes, err := idx.Search("rebase", nil)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "n2", notes[0].ID)
	assert.Equal(t, "Git Tricks", notes[0].SheetName)
	assert.Equal(t, "Daily", notes[0].HeaderName)
}

func TestIndexSearchByKind(t *testing.T) {
	idx := newTestIndex(t)
	require.NoError(t, idx.Reindex(testSheets()))

	notes, err := idx.Search("docker", &Options{Kind: models.KindCommand})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "n3", notes[0].ID)
}

func TestIndexSearchScopedToSheet(t *testing.T) {
	idx := newTestIndex(t)
	require.NoError(t, idx.Reindex(testSheets()))

	notes, err := idx.Search("git", &Options{Sheet: "Docker"})
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestReindexReplacesPreviousContent(t *testing.T) {
	idx := newTestIndex(t)
	require.NoError(t, idx.Reindex(testSheets()))

	// Reindex with an empty collection wipes everything.
	require.NoError(t, idx.Reindex(nil))
	notes, err := idx.Search("docker", nil)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
