package projects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdeck/devdeck/pkg/models"
)

func TestGroupFavoriteWithoutCategoryAppearsTwice(t *testing.T) {
	records := []*models.ProjectRecord{
		{Label: "lonely", Path: "/p", Active: true, Favorite: true},
	}

	g := Group(records, nil)
	require.Len(t, g.Favorites, 1)
	require.Len(t, g.Uncategorized, 1)
	assert.Equal(t, "lonely", g.Favorites[0].Name)
	assert.Equal(t, "lonely", g.Uncategorized[0].Name)
}

func TestGroupFavoriteWithCategoryStaysOutOfUncategorized(t *testing.T) {
	categories := []models.Category{{ID: "work", Name: "Work"}}
	records := []*models.ProjectRecord{
		{Label: "api", Path: "/api", Active: true, Favorite: true, Category: "work"},
	}

	g := Group(records, categories)
	require.Len(t, g.Favorites, 1)
	require.Len(t, g.Categories, 1)
	assert.Empty(t, g.Uncategorized)
}

func TestGroupEmptyBucketsOmitted(t *testing.T) {
	records := []*models.ProjectRecord{
		{Label: "plain", Path: "/p", Active: true},
	}

	g := Group(records, []models.Category{{ID: "work", Name: "Work"}})
	assert.Nil(t, g.Favorites)
	assert.Empty(t, g.Categories)
	require.Len(t, g.Uncategorized, 1)
}

func TestGroupCategoryOrderFollowsCategoryList(t *testing.T) {
	categories := []models.Category{
		{ID: "second", Name: "Second"},
		{ID: "first", Name: "First"},
	}
	records := []*models.ProjectRecord{
		{Label: "a", Path: "/a", Active: true, Category: "first"},
		{Label: "b", Path: "/b", Active: true, Category: "second"},
	}

	g := Group(records, categories)
	require.Len(t, g.Categories, 2)
	// The external category list's order wins, not record order.
	assert.Equal(t, "second", g.Categories[0].Category.ID)
	assert.Equal(t, "first", g.Categories[1].Category.ID)
}

func TestGroupUnknownCategoryDropsFromCategoryBuckets(t *testing.T) {
	records := []*models.ProjectRecord{
		{Label: "ghost", Path: "/g", Active: true, Favorite: true, Category: "missing"},
	}

	g := Group(records, []models.Category{{ID: "work", Name: "Work"}})
	assert.Empty(t, g.Categories)
	// Still present via the favorite rule; category is set, so it does
	// not fall into uncategorized.
	require.Len(t, g.Favorites, 1)
	assert.Empty(t, g.Uncategorized)
}

func TestGroupBucketsAreTreeBuilt(t *testing.T) {
	records := []*models.ProjectRecord{
		{Label: "work/api", Path: "/api", Active: true, Favorite: true},
		{Label: "work/web", Path: "/web", Active: true, Favorite: true},
	}

	g := Group(records, nil)
	require.Len(t, g.Favorites, 1)
	assert.Equal(t, "work", g.Favorites[0].Name)
	assert.Len(t, g.Favorites[0].Children, 2)
}
