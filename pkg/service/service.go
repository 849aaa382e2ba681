// Package service wires the sheet manager, project store, search
// index and launchers into one facade for the CLI.
package service

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/devdeck/devdeck/pkg/gitstatus"
	"github.com/devdeck/devdeck/pkg/models"
	"github.com/devdeck/devdeck/pkg/projects"
	"github.com/devdeck/devdeck/pkg/search"
	"github.com/devdeck/devdeck/pkg/sheet"
	"github.com/devdeck/devdeck/pkg/sheetstore"
	"github.com/devdeck/devdeck/pkg/terminal"
)

// Config holds service configuration
type Config struct {
	DataDir      string
	Terminal     string
	ShowInactive bool
}

// Service is the core devdeck service.
type Service struct {
	Config   *Config
	Log      *logrus.Logger
	Sheets   *sheet.Manager
	Projects *projects.Store
	Index    *search.Index
}

// New creates a service rooted at cfg.DataDir.
func New(cfg *Config, log *logrus.Logger) (*Service, error) {
	if log == nil {
		log = logrus.New()
	}

	sheetStore, err := sheetstore.New(filepath.Join(cfg.DataDir, "sheets"))
	if err != nil {
		return nil, fmt.Errorf("open sheet store: %w", err)
	}

	projectStore, err := projects.NewStore(filepath.Join(cfg.DataDir, "projects"))
	if err != nil {
		return nil, fmt.Errorf("open project store: %w", err)
	}

	index, err := search.NewIndex(filepath.Join(cfg.DataDir, "index.db"))
	if err != nil {
		return nil, fmt.Errorf("open search index: %w", err)
	}

	return &Service{
		Config:   cfg,
		Log:      log,
		Sheets:   sheet.NewManager(sheetStore, log),
		Projects: projectStore,
		Index:    index,
	}, nil
}

// Refresh rebuilds the sheet collection from storage and reindexes it.
// An index failure is reported as a warning; the in-memory collection
// is still usable without it.
func (s *Service) Refresh() ([]*models.Sheet, error) {
	sheets, err := s.Sheets.LoadAll()
	if err != nil {
		return nil, err
	}
	if err := s.Index.Reindex(sheets); err != nil {
		s.Log.Warnf("failed to reindex notes: %v", err)
	}
	return sheets, nil
}

// SearchNotes queries the note index.
func (s *Service) SearchNotes(query string, opts *search.Options) ([]*models.Note, error) {
	return s.Index.Search(query, opts)
}

// ProjectTrees lists filtered project records folded into label trees.
func (s *Service) ProjectTrees(filter projects.Filter) ([]*models.ProjectTreeNode, error) {
	records, err := s.Projects.List(filter)
	if err != nil {
		return nil, err
	}
	return projects.BuildTree(records), nil
}

// GroupedProjects partitions filtered records into favorites,
// per-category and uncategorized trees.
func (s *Service) GroupedProjects(filter projects.Filter) (projects.Grouping, error) {
	records, err := s.Projects.List(filter)
	if err != nil {
		return projects.Grouping{}, err
	}
	categories, err := s.Projects.Categories()
	if err != nil {
		return projects.Grouping{}, err
	}
	return projects.Group(records, categories), nil
}

// OpenProject launches a terminal in the project registered under
// label.
func (s *Service) OpenProject(label string) error {
	records, err := s.Projects.Load()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.Label == label {
			return terminal.Launch(rec.Path, s.Config.Terminal)
		}
	}
	return fmt.Errorf("project not found: %s", label)
}

// ProjectStatus reports the git state of a project path.
func (s *Service) ProjectStatus(path string) gitstatus.Status {
	return gitstatus.Detect(path)
}

// Close releases the search index.
func (s *Service) Close() error {
	return s.Index.Close()
}
