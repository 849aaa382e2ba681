package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdeck/devdeck/pkg/models"
	"github.com/devdeck/devdeck/pkg/projects"
	"github.com/devdeck/devdeck/pkg/sheet"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(&Config{DataDir: t.TempDir()}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestRefreshLoadsReservedSheetAndIndexes(t *testing.T) {
	svc := newTestService(t)

	sheets, err := svc.Refresh()
	require.NoError(t, err)
	require.NotEmpty(t, sheets)
	assert.Equal(t, sheet.ReservedSheetID, sheets[0].ID)

	// The reserved template seeds the index, so a search for one of
	// its commands succeeds right after the first refresh.
	notes, err := svc.SearchNotes("stash", nil)
	require.NoError(t, err)
	require.NotEmpty(t, notes)
	assert.Equal(t, models.KindCommand, notes[0].Kind)
}

func TestRefreshIsIdempotent(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Refresh()
	require.NoError(t, err)
	second, err := svc.Refresh()
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Len(t, second[i].Headers, len(first[i].Headers))
	}
}

func TestProjectTreesAndGrouping(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Projects.Add(&models.ProjectRecord{
		Label: "work/api", Path: "/api", Active: true, Favorite: true,
	}))
	require.NoError(t, svc.Projects.Add(&models.ProjectRecord{
		Label: "work/web", Path: "/web", Active: true,
	}))

	nodes, err := svc.ProjectTrees(projects.Filter{})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "work", nodes[0].Name)
	assert.Len(t, nodes[0].Children, 2)

	g, err := svc.GroupedProjects(projects.Filter{})
	require.NoError(t, err)
	require.Len(t, g.Favorites, 1)
	require.Len(t, g.Uncategorized, 1)
}

func TestOpenProjectUnknownLabel(t *testing.T) {
	svc := newTestService(t)
	assert.Error(t, svc.OpenProject("nope"))
}
