// Package projects manages the flat project registry and derives the
// nested label trees and category groupings shown to the user.
package projects

import (
	"strings"

	"github.com/devdeck/devdeck/pkg/models"
)

// BuildTree folds flat project records into a nested tree keyed by the
// slash-separated segments of each record's label. Children keep the
// order in which their segment first appeared. Metadata (active,
// category, favorite) is overwritten at every visited segment, so
// later records win on shared prefixes; only the final segment of a
// record receives the record's path. The function never fails and is
// idempotent for a given input order.
func BuildTree(records []*models.ProjectRecord) []*models.ProjectTreeNode {
	root := &models.ProjectTreeNode{}

	for _, rec := range records {
		segments := splitLabel(rec.Label)
		if len(segments) == 0 {
			continue
		}

		node := root
		for i, seg := range segments {
			child := node.Child(seg)
			if child == nil {
				child = &models.ProjectTreeNode{Name: seg}
				node.Children = append(node.Children, child)
			}

			child.Active = rec.Active
			child.Category = rec.Category
			child.Favorite = rec.Favorite
			if i == len(segments)-1 {
				child.FullPath = rec.Path
			}
			node = child
		}
	}

	return root.Children
}

// splitLabel splits a label on both slash directions, dropping empty
// segments.
func splitLabel(label string) []string {
	parts := strings.FieldsFunc(label, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	segments := []string{}
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
