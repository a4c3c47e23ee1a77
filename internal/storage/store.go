// Package storage persists the task list as a JSON document on disk.
//
// The document carries a schema version and the next id to assign, so
// ids stay unique across the life of the file even after removals.
// Every load validates the document against an embedded JSON Schema
// before decoding.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"todo/internal/service"
)

// SchemaVersion is the storage document version this build reads and writes.
const SchemaVersion = 1

// document is the on-disk shape of the task list.
type document struct {
	SchemaVersion int            `json:"schema_version"`
	NextID        int            `json:"next_id"`
	Tasks         []service.Task `json:"tasks"`
}

// Store reads and writes the task list document at a fixed path.
type Store struct {
	path string
}

// New returns a Store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the storage file path.
func (s *Store) Path() string { return s.path }

// Exists reports whether the storage file has been created.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates the storage file holding an empty task list. It
// returns service.ErrAlreadyInitialized if the file is already there.
func (s *Store) Initialize(ctx context.Context) error {
	if s.Exists() {
		return service.ErrAlreadyInitialized
	}
	return s.Save(ctx, service.NewList())
}

// Load reads the storage file, validates it, and decodes the task list.
// It returns service.ErrNotInitialized if the file does not exist.
func (s *Store) Load(ctx context.Context) (*service.List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, service.ErrNotInitialized
		}
		return nil, fmt.Errorf("read storage: %w", err)
	}

	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("storage %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse storage %s: %w", s.path, err)
	}
	if err := validateDocument(&doc); err != nil {
		return nil, fmt.Errorf("storage %s: %w", s.path, err)
	}

	list := &service.List{NextID: doc.NextID, Tasks: doc.Tasks}
	if list.Tasks == nil {
		list.Tasks = []service.Task{}
	}
	return list, nil
}

// Save writes the whole list atomically: marshal, write a temp file in
// the same directory, then rename it over the target.
func (s *Store) Save(ctx context.Context, list *service.List) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	doc := document{SchemaVersion: SchemaVersion, NextID: list.NextID, Tasks: list.Tasks}
	if doc.Tasks == nil {
		doc.Tasks = []service.Task{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal storage: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace storage: %w", err)
	}
	return nil
}
