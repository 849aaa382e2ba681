package projects

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/devdeck/devdeck/pkg/models"
)

const (
	recordsFile    = "projects.json"
	categoriesFile = "categories.yaml"
)

// Store persists the flat project record list and the category list.
// Record order in the file is significant: the tree builder's
// last-write-wins semantics depend on it, so Load and Save preserve it
// verbatim.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create projects dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Filter selects records before they reach the tree builder. The
// builder itself never filters; it receives this store's output.
type Filter struct {
	ShowInactive bool
	Term         string
}

// Load reads all project records in persisted order. A missing file
// yields an empty list.
func (s *Store) Load() ([]*models.ProjectRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, recordsFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*models.ProjectRecord{}, nil
		}
		return nil, fmt.Errorf("read projects: %w", err)
	}

	var records []*models.ProjectRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse projects: %w", err)
	}
	return records, nil
}

// Save writes the record list atomically, preserving order.
func (s *Store) Save(records []*models.ProjectRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}
	return s.writeFile(recordsFile, data)
}

// List loads records and applies the filter: inactive records are
// dropped unless ShowInactive is set, and a non-empty term keeps only
// records whose label or path contains it case-insensitively.
func (s *Store) List(f Filter) ([]*models.ProjectRecord, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(f.Term))
	filtered := []*models.ProjectRecord{}
	for _, rec := range records {
		if !rec.Active && !f.ShowInactive {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(rec.Label), term) &&
			!strings.Contains(strings.ToLower(rec.Path), term) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered, nil
}

// Add appends a record. A record with the same label already present
// is replaced in place, keeping its position.
func (s *Store) Add(rec *models.ProjectRecord) error {
	if strings.TrimSpace(rec.Label) == "" {
		return fmt.Errorf("project label cannot be empty")
	}
	if strings.TrimSpace(rec.Path) == "" {
		return fmt.Errorf("project path cannot be empty")
	}

	records, err := s.Load()
	if err != nil {
		return err
	}
	for i, existing := range records {
		if existing.Label == rec.Label {
			records[i] = rec
			return s.Save(records)
		}
	}
	return s.Save(append(records, rec))
}

// Remove deletes the record with the given label.
func (s *Store) Remove(label string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.Label == label {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return fmt.Errorf("project not found: %s", label)
	}
	return s.Save(kept)
}

// Update applies fn to the record with the given label and persists.
func (s *Store) Update(label string, fn func(*models.ProjectRecord)) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.Label == label {
			fn(rec)
			return s.Save(records)
		}
	}
	return fmt.Errorf("project not found: %s", label)
}

// Categories reads the ordered category list. A missing file yields an
// empty list.
func (s *Store) Categories() ([]models.Category, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, categoriesFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Category{}, nil
		}
		return nil, fmt.Errorf("read categories: %w", err)
	}

	var categories []models.Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	return categories, nil
}

// SaveCategories writes the category list, preserving order.
func (s *Store) SaveCategories(categories []models.Category) error {
	data, err := yaml.Marshal(categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}
	return s.writeFile(categoriesFile, data)
}

// AddCategory appends a category derived from name: the id is a
// lowercase slug, the display name is title-cased.
func (s *Store) AddCategory(name, icon string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, fmt.Errorf("category name cannot be empty")
	}

	cat := models.Category{
		ID:   strings.ReplaceAll(strings.ToLower(name), " ", "-"),
		Name: cases.Title(language.English).String(name),
		Icon: icon,
	}

	categories, err := s.Categories()
	if err != nil {
		return models.Category{}, err
	}
	for _, existing := range categories {
		if existing.ID == cat.ID {
			return models.Category{}, fmt.Errorf("category already exists: %s", cat.ID)
		}
	}
	if err := s.SaveCategories(append(categories, cat)); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// RemoveCategory deletes a category by id. Records referencing it keep
// their category field; they simply fall out of the per-category
// grouping until reassigned.
func (s *Store) RemoveCategory(id string) error {
	categories, err := s.Categories()
	if err != nil {
		return err
	}
	kept := categories[:0]
	found := false
	for _, cat := range categories {
		if cat.ID == id {
			found = true
			continue
		}
		kept = append(kept, cat)
	}
	if !found {
		return fmt.Errorf("category not found: %s", id)
	}
	return s.SaveCategories(kept)
}

// writeFile writes via a temp file and rename so a crash cannot leave
// a half-written list.
func (s *Store) writeFile(name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return os.Rename(tmp, path)
}
