// Package profile persists named answer profiles to a local JSON document and
// tracks which profile was used last.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rishi/placement-autofill/internal/types"
)

// DefaultFileName is the profile store file created under the user's home
// directory when no explicit path is given.
const DefaultFileName = ".autofill-profiles.json"

// document is the on-disk shape. Version is bumped only on incompatible
// layout changes.
type document struct {
	Version  int                      `json:"version"`
	Profiles map[string]types.Profile `json:"profiles"`
	LastUsed string                   `json:"last_used,omitempty"`
}

const currentVersion = 1

// Store reads and writes named profiles at a fixed path. Safe for concurrent
// use within a process; cross-process writers are last-write-wins.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a store backed by the given path. An empty path resolves
// to DefaultFileName in the user's home directory.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, DefaultFileName)
	}
	return &Store{path: path}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save stores a profile under the given name, creating or replacing it, and
// marks it as last used.
func (s *Store) Save(name string, p types.Profile) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("profile name is empty")
	}
	if len(p) == 0 {
		return fmt.Errorf("profile %q has no fields", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Profiles[name] = p
	doc.LastUsed = name
	return s.write(doc)
}

// Load returns the profile stored under the given name.
func (s *Store) Load(name string) (types.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	p, ok := doc.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found", name)
	}
	return p, nil
}

// LoadLastUsed returns the most recently saved or used profile and its name.
func (s *Store) LoadLastUsed() (string, types.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return "", nil, err
	}
	if doc.LastUsed == "" {
		return "", nil, fmt.Errorf("no profile has been used yet")
	}
	p, ok := doc.Profiles[doc.LastUsed]
	if !ok {
		return "", nil, fmt.Errorf("last used profile %q no longer exists", doc.LastUsed)
	}
	return doc.LastUsed, p, nil
}

// MarkUsed records the named profile as last used.
func (s *Store) MarkUsed(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Profiles[name]; !ok {
		return fmt.Errorf("profile %q not found", name)
	}
	doc.LastUsed = name
	return s.write(doc)
}

// Delete removes the named profile. Deleting the last used profile clears the
// last used marker.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Profiles[name]; !ok {
		return fmt.Errorf("profile %q not found", name)
	}
	delete(doc.Profiles, name)
	if doc.LastUsed == name {
		doc.LastUsed = ""
	}
	return s.write(doc)
}

// List returns the stored profile names in sorted order.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(doc.Profiles))
	for name := range doc.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &document{Version: currentVersion, Profiles: map[string]types.Profile{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile store %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse profile store %s: %w", s.path, err)
	}
	if doc.Version > currentVersion {
		return nil, fmt.Errorf("profile store %s has unsupported version %d", s.path, doc.Version)
	}
	if doc.Profiles == nil {
		doc.Profiles = map[string]types.Profile{}
	}
	doc.Version = currentVersion
	return &doc, nil
}

func (s *Store) write(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write profile store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace profile store: %w", err)
	}
	return nil
}
