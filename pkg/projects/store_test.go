package projects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdeck/devdeck/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStoreLoadEmpty(t *testing.T) {
	s := newTestStore(t)

	records, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, records)

	categories, err := s.Categories()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestStoreAddPreservesOrder(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(&models.ProjectRecord{Label: "z", Path: "/z", Active: true}))
	require.NoError(t, s.Add(&models.ProjectRecord{Label: "a", Path: "/a", Active: true}))

	records, err := s.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "z", records[0].Label)
	assert.Equal(t, "a", records[1].Label)
}

func TestStoreAddReplacesInPlace(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(&models.ProjectRecord{Label: "x", Path: "/old", Active: true}))
	require.NoError(t, s.Add(&models.ProjectRecord{Label: "y", Path: "/y", Active: true}))
	require.NoError(t, s.Add(&models.ProjectRecord{Label: "x", Path: "/new", Active: true}))

	records, err := s.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "x", records[0].Label)
	assert.Equal(t, "/new", records[0].Path)
}

func TestStoreAddValidation(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.Add(&models.ProjectRecord{Label: "", Path: "/p"}))
	assert.Error(t, s.Add(&models.ProjectRecord{Label: "x", Path: " "}))
}

func TestStoreRemove(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(&models.ProjectRecord{Label: "x", Path: "/x", Active: true}))

	require.NoError(t, s.Remove("x"))
	records, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.Error(t, s.Remove("x"))
}

func TestStoreUpdate(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(&models.ProjectRecord{Label: "x", Path: "/x", Active: true}))

	require.NoError(t, s.Update("x", func(rec *models.ProjectRecord) {
		rec.Favorite = true
	}))

	records, err := s.Load()
	require.NoError(t, err)
	assert.True(t, records[0].Favorite)

	assert.Error(t, s.Update("nope", func(*models.ProjectRecord) {}))
}

func TestStoreListFilters(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(&models.ProjectRecord{Label: "active", Path: "/a", Active: true}))
	require.NoError(t, s.Add(&models.ProjectRecord{Label: "dormant", Path: "/d", Active: false}))
	require.NoError(t, s.Add(&models.ProjectRecord{Label: "work/api", Path: "/w", Active: true}))

	records, err := s.List(Filter{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	records, err = s.List(Filter{ShowInactive: true})
	require.NoError(t, err)
	assert.Len(t, records, 3)

	records, err = s.List(Filter{Term: "API"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "work/api", records[0].Label)

	// The term also matches paths.
	records, err = s.List(Filter{Term: "/w", ShowInactive: true})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestStoreCategories(t *testing.T) {
	s := newTestStore(t)

	cat, err := s.AddCategory("open source", "🌱")
	require.NoError(t, err)
	assert.Equal(t, "open-source", cat.ID)
	assert.Equal(t, "Open Source", cat.Name)

	_, err = s.AddCategory("Open Source", "")
	assert.Error(t, err, "duplicate id rejected")

	_, err = s.AddCategory("work", "")
	require.NoError(t, err)

	categories, err := s.Categories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "open-source", categories[0].ID)
	assert.Equal(t, "work", categories[1].ID)

	require.NoError(t, s.RemoveCategory("open-source"))
	categories, err = s.Categories()
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	assert.Error(t, s.RemoveCategory("open-source"))
}
