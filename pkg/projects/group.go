package projects

import "github.com/devdeck/devdeck/pkg/models"

// CategoryTree pairs a category with the tree built from its records.
type CategoryTree struct {
	Category models.Category
	Nodes    []*models.ProjectTreeNode
}

// Grouping is the derived partition of project records: favorites,
// per-category trees in category-list order, and uncategorized. Empty
// buckets are omitted entirely.
type Grouping struct {
	Favorites     []*models.ProjectTreeNode
	Categories    []CategoryTree
	Uncategorized []*models.ProjectTreeNode
}

// Group partitions records into favorites, per-category and
// uncategorized buckets, then tree-builds each bucket independently.
// A favorite record joins the favorites bucket regardless of its
// category; a record without a category joins uncategorized even when
// it is also a favorite, so it can appear in both. Records referring
// to an unknown category id land in no category bucket but still
// follow the favorite/uncategorized rules.
func Group(records []*models.ProjectRecord, categories []models.Category) Grouping {
	var favorites, uncategorized []*models.ProjectRecord
	byCategory := make(map[string][]*models.ProjectRecord)

	for _, rec := range records {
		if rec.Favorite {
			favorites = append(favorites, rec)
		}
		if rec.Category == "" {
			uncategorized = append(uncategorized, rec)
		} else {
			byCategory[rec.Category] = append(byCategory[rec.Category], rec)
		}
	}

	g := Grouping{}
	if len(favorites) > 0 {
		g.Favorites = BuildTree(favorites)
	}
	for _, cat := range categories {
		recs := byCategory[cat.ID]
		if len(recs) == 0 {
			continue
		}
		g.Categories = append(g.Categories, CategoryTree{
			Category: cat,
			Nodes:    BuildTree(recs),
		})
	}
	if len(uncategorized) > 0 {
		g.Uncategorized = BuildTree(uncategorized)
	}
	return g
}
