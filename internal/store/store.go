// Package store implements the contact collection and its persistence to a JSON file.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smileynet/contactbook/internal/contact"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrNoSelection = errors.New("store: no contact selected")
	ErrNotFound    = errors.New("store: contact not found")
	ErrLoad        = errors.New("store: contacts file is unreadable")
	ErrWrite       = errors.New("store: could not save contacts")
)

// ErrCorrupt marks a contacts file that was read but is not a JSON contact list.
// It matches ErrLoad.
var ErrCorrupt = fmt.Errorf("%w: invalid contacts JSON", ErrLoad)

// DefaultFile is the contacts file name used when none is configured.
const DefaultFile = "contacts.json"

// Store holds the ordered contact collection and mirrors every change to a file.
// It is not safe for concurrent use.
type Store struct {
	path     string
	contacts []contact.Contact
	logger   *zap.Logger
	newID    func() string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load, mutation and persistence events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDFunc overrides the generator for in-memory contact IDs.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New creates an empty Store backed by path. Call Load to read the file.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: zap.NewNop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a Store and loads path. The returned Store is always usable;
// on a load error it is empty and the error matches ErrLoad or ErrWrite.
func Open(path string, opts ...Option) (*Store, error) {
	s := New(path, opts...)
	return s, s.Load()
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the collection with the contents of the backing file.
// A missing file is created holding an empty list. An unparsable file is
// left untouched, the collection becomes empty and the error matches ErrLoad,
// and also ErrCorrupt when the bytes were read but did not parse.
func (s *Store) Load() error {
	s.contacts = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info("contacts file missing, creating", zap.String("path", s.path))
			return s.Persist()
		}
		s.logger.Error("reading contacts file", zap.String("path", s.path), zap.Error(err))
		return fmt.Errorf("%w: reading %s: %v", ErrLoad, s.path, err)
	}

	var loaded []contact.Contact
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &loaded); err != nil {
			s.logger.Error("parsing contacts file", zap.String("path", s.path), zap.Error(err))
			return fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, s.path, err)
		}
	}

	for i := range loaded {
		loaded[i].ID = s.newID()
	}
	s.contacts = loaded
	s.logger.Info("contacts loaded", zap.String("path", s.path), zap.Int("count", len(loaded)))
	return nil
}

// Contacts returns a copy of the collection in insertion order.
func (s *Store) Contacts() []contact.Contact {
	return append([]contact.Contact(nil), s.contacts...)
}

// Len returns the number of stored contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

// At returns the contact at position i (0-based).
func (s *Store) At(i int) (contact.Contact, bool) {
	if i < 0 || i >= len(s.contacts) {
		return contact.Contact{}, false
	}
	return s.contacts[i], true
}

// Get returns the contact with the given ID.
func (s *Store) Get(id string) (contact.Contact, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return contact.Contact{}, false
	}
	return s.contacts[i], true
}

// Add validates in, appends it and persists the collection.
// If only the persist fails, the contact stays appended and the error matches ErrWrite.
func (s *Store) Add(in contact.Input) (contact.Contact, error) {
	if err := in.Validate(); err != nil {
		return contact.Contact{}, err
	}

	c := in.Normalize(s.newID())
	s.contacts = append(s.contacts, c)
	s.logger.Info("contact added", zap.String("id", c.ID), zap.Int("count", len(s.contacts)))
	return c, s.Persist()
}

// Update replaces the contact with the given ID in place and persists.
func (s *Store) Update(id string, in contact.Input) (contact.Contact, error) {
	i, err := s.resolve(id)
	if err != nil {
		return contact.Contact{}, err
	}
	if err := in.Validate(); err != nil {
		return contact.Contact{}, err
	}

	c := in.Normalize(id)
	s.contacts[i] = c
	s.logger.Info("contact updated", zap.String("id", id), zap.Int("position", i))
	return c, s.Persist()
}

// Delete removes the contact with the given ID and persists.
func (s *Store) Delete(id string) error {
	i, err := s.resolve(id)
	if err != nil {
		return err
	}

	s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
	s.logger.Info("contact deleted", zap.String("id", id), zap.Int("count", len(s.contacts)))
	return s.Persist()
}

// Search returns the contacts matching query in collection order.
// found is false when nothing matched.
func (s *Store) Search(query string) (results []contact.Contact, found bool) {
	for _, c := range s.contacts {
		if c.Matches(query) {
			results = append(results, c)
		}
	}
	s.logger.Debug("search", zap.String("query", query), zap.Int("matches", len(results)))
	return results, len(results) > 0
}

// Persist writes the whole collection to the backing file atomically.
func (s *Store) Persist() error {
	records := s.contacts
	if records == nil {
		records = []contact.Contact{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshaling: %v", ErrWrite, err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		s.logger.Error("writing contacts file", zap.String("path", s.path), zap.Error(err))
		return fmt.Errorf("%w: writing %s: %v", ErrWrite, s.path, err)
	}
	s.logger.Debug("contacts saved", zap.String("path", s.path), zap.Int("count", len(records)))
	return nil
}

// resolve maps a selected ID to its current position.
func (s *Store) resolve(id string) (int, error) {
	if id == "" {
		return -1, ErrNoSelection
	}
	i := s.indexOf(id)
	if i < 0 {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return i, nil
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, c := range s.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path, so readers see either the old or the new content.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
