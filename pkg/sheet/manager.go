package sheet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devdeck/devdeck/pkg/models"
	"github.com/devdeck/devdeck/pkg/sheetstore"
)

// Manager owns the loaded sheet collection. It is a stateless
// transformer over the store: every mutation persists and then rebuilds
// the whole collection, so the in-memory sheets are always a faithful
// re-derivation of persisted state.
type Manager struct {
	store  sheetstore.Store
	log    *logrus.Logger
	sheets []*models.Sheet
}

// NewManager creates a manager over the given store.
func NewManager(store sheetstore.Store, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.New()
	}
	return &Manager{store: store, log: log}
}

// LoadAll rebuilds the sheet collection from the store. The reserved
// tips sheet is regenerated from its built-in template on every call,
// overwriting whatever was persisted under its id, and always sorts
// first; user sheets follow in ascending name order. Unreadable
// sources are skipped with a warning rather than failing the load.
func (m *Manager) LoadAll() ([]*models.Sheet, error) {
	if err := m.store.Write(ReservedSheetID, ReservedTemplate()); err != nil {
		m.log.Warnf("persist reserved sheet: %v", err)
	}

	ids, err := m.store.List()
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}

	sheets := []*models.Sheet{m.materialize(ReservedSheetID, ReservedTemplate())}
	for _, id := range ids {
		if id == ReservedSheetID {
			continue
		}
		text, err := m.store.Read(id)
		if err != nil {
			m.log.Warnf("skipping unreadable sheet %s: %v", id, err)
			continue
		}
		sheets = append(sheets, m.materialize(id, text))
	}

	rest := sheets[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Name < rest[j].Name
	})

	m.sheets = sheets
	return sheets, nil
}

// Sheets returns the collection from the last LoadAll.
func (m *Manager) Sheets() []*models.Sheet {
	return m.sheets
}

// Get returns the loaded sheet with the given id, or nil.
func (m *Manager) Get(id string) *models.Sheet {
	for _, s := range m.sheets {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Add creates a new sheet from the starter template, persists it and
// reloads the collection.
func (m *Manager) Add(name string) (*models.Sheet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("sheet name cannot be empty")
	}

	id := m.newID(name)
	if err := m.store.Write(id, NewSheetTemplate(name)); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	if _, err := m.LoadAll(); err != nil {
		return nil, err
	}
	return m.Get(id), nil
}

// Rename rewrites the first line of the persisted text, which holds
// the display name, and reloads.
func (m *Manager) Rename(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("sheet name cannot be empty")
	}

	text, err := m.store.Read(id)
	if err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	lines := strings.Split(text, "\n")
	lines[0] = newName
	if err := m.store.Write(id, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	_, err = m.LoadAll()
	return err
}

// Delete removes the persisted sheet and reloads. Deleting the
// reserved sheet is permitted but it reappears on the next load.
func (m *Manager) Delete(id string) error {
	if err := m.store.Delete(id); err != nil {
		return err
	}
	_, err := m.LoadAll()
	return err
}

// Search filters the loaded collection by a case-insensitive substring
// term. A sheet whose name matches is returned whole; otherwise a
// shallow copy holding only its matching headers is returned. The
// underlying collection is never mutated.
func (m *Manager) Search(term string) []*models.Sheet {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return m.sheets
	}

	results := []*models.Sheet{}
	for _, s := range m.sheets {
		if strings.Contains(strings.ToLower(s.Name), term) {
			results = append(results, s)
			continue
		}

		matched := []*models.Header{}
		for _, h := range s.Headers {
			if headerMatches(h, term) {
				matched = append(matched, h)
			}
		}
		if len(matched) > 0 {
			filtered := *s
			filtered.Headers = matched
			results = append(results, &filtered)
		}
	}
	return results
}

// materialize parses a sheet text and backfills the sheet and header
// names onto every note.
func (m *Manager) materialize(id, text string) *models.Sheet {
	name := sheetName(id, text)
	headers := Parse(text)
	for _, h := range headers {
		for _, n := range h.Notes {
			n.SheetName = name
			n.HeaderName = h.Name
		}
	}
	return &models.Sheet{
		ID:      id,
		Name:    name,
		RawText: text,
		Headers: headers,
	}
}

// sheetName reads the display name from the first line, falling back
// to the id when the text is empty.
func sheetName(id, text string) string {
	first := strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
	if first == "" {
		return id
	}
	return first
}

// newID derives a store key from the sheet name, disambiguating
// against existing ids with a random suffix.
func (m *Manager) newID(name string) string {
	id := slugify(name)
	if id == "" || id == ReservedSheetID || m.Get(id) != nil {
		id = id + "-" + uuid.NewString()[:8]
		id = strings.TrimPrefix(id, "-")
	}
	return id
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")

	var b strings.Builder
	for _, r := range s {
		if r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}

func headerMatches(h *models.Header, term string) bool {
	if strings.Contains(strings.ToLower(h.Name), term) {
		return true
	}
	for _, n := range h.Notes {
		if strings.Contains(strings.ToLower(n.Title), term) ||
			strings.Contains(strings.ToLower(n.Content), term) {
			return true
		}
		for _, tag := range n.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				return true
			}
		}
	}
	return false
}
