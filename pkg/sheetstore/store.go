// Package sheetstore persists raw sheet texts as flat UTF-8 blobs
// keyed by sheet id.
package sheetstore

import (
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Store is the persistence contract for sheet texts. Reads directly
// after a write observe the written text within one process.
type Store interface {
	List() ([]string, error)
	Read(id string) (string, error)
	Write(id, text string) error
	Delete(id string) error
}

// DiskStore is a Store backed by a diskv key/value directory, one file
// per sheet.
type DiskStore struct {
	d *diskv.Diskv
}

// New creates a DiskStore rooted at basePath, creating the directory
// if needed.
func New(basePath string) (*DiskStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("create sheet dir: %w", err)
	}

	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

// List returns the ids of all persisted sheets in unspecified order.
func (s *DiskStore) List() ([]string, error) {
	ids := []string{}
	for key := range s.d.Keys(nil) {
		ids = append(ids, key)
	}
	return ids, nil
}

// Read returns the full text stored under id.
func (s *DiskStore) Read(id string) (string, error) {
	val, err := s.d.Read(id)
	if err != nil {
		return "", fmt.Errorf("read sheet %s: %w", id, err)
	}
	return string(val), nil
}

// Write stores text under id, replacing any previous content.
func (s *DiskStore) Write(id, text string) error {
	if err := s.d.Write(id, []byte(text)); err != nil {
		return fmt.Errorf("write sheet %s: %w", id, err)
	}
	return nil
}

// Delete removes the sheet stored under id. Deleting a missing id is
// not an error.
func (s *DiskStore) Delete(id string) error {
	if !s.d.Has(id) {
		return nil
	}
	if err := s.d.Erase(id); err != nil {
		return fmt.Errorf("delete sheet %s: %w", id, err)
	}
	return nil
}
