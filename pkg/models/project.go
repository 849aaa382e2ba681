package models

// ProjectRecord is the flat, persisted description of one bookmarked
// filesystem path. Label may contain slash characters to express
// nesting; Path is only meaningful on the final label segment.
type ProjectRecord struct {
	Label    string `json:"label"`
	Path     string `json:"path"`
	Active   bool   `json:"active"`
	Category string `json:"category,omitempty"`
	Favorite bool   `json:"favorite,omitempty"`
}

// Category is a user-defined grouping for project records.
type Category struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// ProjectTreeNode is an in-memory node produced by folding record
// labels into a nested hierarchy. A node with FullPath set is an
// openable project; it may still have children when another record's
// longer label passes through the same segment.
type ProjectTreeNode struct {
	Name     string             `json:"name"`
	FullPath string             `json:"full_path,omitempty"`
	Active   bool               `json:"active"`
	Category string             `json:"category,omitempty"`
	Favorite bool               `json:"favorite,omitempty"`
	Children []*ProjectTreeNode `json:"children,omitempty"`
}

// IsOpenable reports whether the node points at a concrete project path.
func (n *ProjectTreeNode) IsOpenable() bool {
	return n.FullPath != ""
}

// Child returns the direct child with the given segment name, or nil.
func (n *ProjectTreeNode) Child(name string) *ProjectTreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}
