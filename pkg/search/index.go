// Package search maintains a sqlite-backed index over parsed sheet
// notes for fast lookup from the command line.
package search

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/devdeck/devdeck/pkg/models"
)

// Index manages the note search index.
type Index struct {
	db     *sql.DB
	useFTS bool
}

// NewIndex opens (or creates) the index database.
func NewIndex(dbPath string) (*Index, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	idx := &Index{db: db}
	if err := idx.init(); err != nil {
		return nil, err
	}
	return idx, nil
}

// init creates the database schema
func (idx *Index) init() error {
	idx.useFTS = idx.checkFTS5Support()

	metaSchema := `
	CREATE TABLE IF NOT EXISTS notes_meta (
		id TEXT PRIMARY KEY,
		sheet TEXT,
		header TEXT,
		kind TEXT,
		title TEXT,
		content TEXT,
		description TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_notes_meta_sheet ON notes_meta(sheet);
	CREATE INDEX IF NOT EXISTS idx_notes_meta_kind ON notes_meta(kind);
	`

	if _, err := idx.db.Exec(metaSchema); err != nil {
		return err
	}

	if idx.useFTS {
		ftsSchema := `
		CREATE VIRTUAL TABLE IF NOT EXISTS notes_fts USING fts5(
			id UNINDEXED,
			sheet,
			header,
			kind UNINDEXED,
			title,
			content,
			description,
			tokenize = 'porter unicode61'
		);
		`

		if _, err := idx.db.Exec(ftsSchema); err != nil {
			// If FTS creation fails, disable FTS and continue
			idx.useFTS = false
		}
	}

	return nil
}

// checkFTS5Support checks if the FTS5 module is available
func (idx *Index) checkFTS5Support() bool {
	_, err := idx.db.Exec("CREATE VIRTUAL TABLE IF NOT EXISTS fts5_test USING fts5(content)")
	if err != nil {
		return false
	}
	_, _ = idx.db.Exec("DROP TABLE IF EXISTS fts5_test")
	return true
}

// Reindex replaces the whole index with the notes of the given sheet
// collection. The collection is rebuilt wholesale on every load, so
// the index follows the same overwrite-everything contract.
func (idx *Index) Reindex(sheets []*models.Sheet) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM notes_meta"); err != nil {
		return err
	}
	if idx.useFTS {
		if _, err := tx.Exec("DELETE FROM notes_fts"); err != nil {
			return err
		}
	}

	for _, sheet := range sheets {
		for _, header := range sheet.Headers {
			for _, note := range header.Notes {
				_, err := tx.Exec(`
					INSERT INTO notes_meta (id, sheet, header, kind, title, content, description)
					VALUES (?, ?, ?, ?, ?, ?, ?)
				`, note.ID, sheet.Name, header.Name, note.Kind, note.Title, note.Content, note.Description)
				if err != nil {
					return err
				}

				if idx.useFTS {
					_, err := tx.Exec(`
						INSERT INTO notes_fts (id, sheet, header, kind, title, content, description)
						VALUES (?, ?, ?, ?, ?, ?, ?)
					`, note.ID, sheet.Name, header.Name, note.Kind, note.Title, note.Content, note.Description)
					if err != nil {
						return err
					}
				}
			}
		}
	}

	return tx.Commit()
}

// Options for searching
type Options struct {
	Sheet string
	Kind  models.NoteKind
	Limit int
}

// Search performs a full-text search over indexed notes.
func (idx *Index) Search(query string, opts *Options) ([]*models.Note, error) {
	if opts == nil {
		opts = &Options{Limit: 50}
	}
	if opts.Limit == 0 {
		opts.Limit = 50
	}

	if idx.useFTS {
		return idx.searchWithFTS(query, opts)
	}
	return idx.searchWithoutFTS(query, opts)
}

// searchWithFTS performs search using FTS5
func (idx *Index) searchWithFTS(query string, opts *Options) ([]*models.Note, error) {
	var conditions []string
	var args []any

	if opts.Sheet != "" {
		conditions = append(conditions, "m.sheet = ?")
		args = append(args, opts.Sheet)
	}
	if opts.Kind != "" {
		conditions = append(conditions, "m.kind = ?")
		args = append(args, opts.Kind)
	}

	whereClause := "WHERE"
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ") + " AND"
	}

	searchQuery := fmt.Sprintf(`
		SELECT f.id, f.sheet, f.header, m.kind, f.title, f.content, f.description
		FROM notes_fts f
		JOIN notes_meta m ON f.id = m.id
		%s notes_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, whereClause)

	args = append(args, query, opts.Limit)
	return idx.scanNotes(searchQuery, args...)
}

// searchWithoutFTS performs search using LIKE queries on the metadata table
func (idx *Index) searchWithoutFTS(query string, opts *Options) ([]*models.Note, error) {
	var conditions []string
	var args []any

	if opts.Sheet != "" {
		conditions = append(conditions, "sheet = ?")
		args = append(args, opts.Sheet)
	}
	if opts.Kind != "" {
		conditions = append(conditions, "kind = ?")
		args = append(args, opts.Kind)
	}

	searchPattern := "%" + strings.ReplaceAll(query, " ", "%") + "%"
	conditions = append(conditions, "(title LIKE ? OR content LIKE ? OR description LIKE ?)")
	args = append(args, searchPattern, searchPattern, searchPattern)

	searchQuery := fmt.Sprintf(`
		SELECT id, sheet, header, kind, title, content, description
		FROM notes_meta
		WHERE %s
		ORDER BY sheet, header
		LIMIT ?
	`, strings.Join(conditions, " AND "))

	args = append(args, opts.Limit)
	return idx.scanNotes(searchQuery, args...)
}

func (idx *Index) scanNotes(query string, args ...any) ([]*models.Note, error) {
	rows, err := idx.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Note
	for rows.Next() {
		note := &models.Note{Tags: []string{}}
		err := rows.Scan(
			&note.ID, &note.SheetName, &note.HeaderName, &note.Kind,
			&note.Title, &note.Content, &note.Description,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, note)
	}
	return results, rows.Err()
}

// Close closes the index
func (idx *Index) Close() error {
	return idx.db.Close()
}
