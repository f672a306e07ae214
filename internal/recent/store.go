// Package recent persists the last saved searches to a flat INI file. The
// file holds a [Recent] section with query_<i> / parts_<i> key pairs, most
// recent first; parts_<i> is the JSON-encoded criteria record so a saved
// search restores the full form state.
package recent

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/ini.v1"

	"gsearch/internal/models"
	"gsearch/internal/query"
)

// DefaultMaxEntries bounds the list when no limit is configured.
const DefaultMaxEntries = 20

const sectionName = "Recent"

// ErrIndexOutOfRange is returned when a load or delete targets a position
// outside the current list.
var ErrIndexOutOfRange = errors.New("recent: index out of range")

// Entry pairs a generated query string with the criteria record that
// produced it.
type Entry struct {
	Query    string
	Criteria models.SearchCriteria
}

// Store keeps the recent-searches list in memory and mirrors it to disk.
// The in-memory list stays authoritative for the session: a failed write is
// reported to the caller but never rolls the list back.
type Store struct {
	mu      sync.Mutex
	path    string
	max     int
	entries []Entry
}

// NewStore creates a store backed by the given file path. A max of zero or
// less falls back to DefaultMaxEntries.
func NewStore(path string, max int) *Store {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Store{path: path, max: max}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file into memory. A missing file is not an error:
// the list starts empty and an empty file is written so the next run finds
// one. A malformed file or unreadable record leaves the list empty and
// returns the parse error; the session continues with an empty list.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil

	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return s.write()
	}

	cfg, err := ini.Load(s.path)
	if err != nil {
		return fmt.Errorf("recent: load %s: %w", s.path, err)
	}

	sec := cfg.Section(sectionName)
	for i := 1; sec.HasKey(queryKey(i)); i++ {
		var entry Entry

		parts := sec.Key(partsKey(i)).String()
		if parts == "" {
			parts = "{}"
		}
		if err := json.Unmarshal([]byte(parts), &entry.Criteria); err != nil {
			s.entries = nil
			return fmt.Errorf("recent: entry %d: %w", i, err)
		}
		entry.Criteria.Normalize()

		// The INI parser unquotes query_<i> values that are fully wrapped
		// in double quotes, which mangles a phrase-only query. The criteria
		// record is authoritative, so regenerate the query text from it
		// instead of trusting the raw key.
		entry.Query = query.Build(entry.Criteria)

		s.entries = append(s.entries, entry)
	}

	s.truncate()
	return nil
}

// Save prepends an entry, drops any older entry with the same query string,
// truncates to the configured maximum and rewrites the file. The entry is
// kept in memory even when the write fails.
func (s *Store) Save(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Query != entry.Query {
			kept = append(kept, e)
		}
	}
	s.entries = append([]Entry{entry}, kept...)
	s.truncate()

	return s.write()
}

// Delete removes the entry at the given position and rewrites the file.
func (s *Store) Delete(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return ErrIndexOutOfRange
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)

	return s.write()
}

// Get returns the entry at the given position.
func (s *Store) Get(index int) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return Entry{}, ErrIndexOutOfRange
	}
	return s.entries[index], nil
}

// Entries returns a copy of the current list, most recent first.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Queries returns just the query strings, most recent first.
func (s *Store) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Query
	}
	return out
}

func (s *Store) truncate() {
	if len(s.entries) > s.max {
		s.entries = s.entries[:s.max]
	}
}

// write rewrites the whole file from the in-memory list. Callers hold the
// lock.
func (s *Store) write() error {
	cfg := ini.Empty()
	sec, err := cfg.NewSection(sectionName)
	if err != nil {
		return fmt.Errorf("recent: section: %w", err)
	}

	for i, entry := range s.entries {
		parts, err := json.Marshal(entry.Criteria)
		if err != nil {
			return fmt.Errorf("recent: encode entry %d: %w", i+1, err)
		}
		if _, err := sec.NewKey(queryKey(i+1), entry.Query); err != nil {
			return fmt.Errorf("recent: key %s: %w", queryKey(i+1), err)
		}
		if _, err := sec.NewKey(partsKey(i+1), string(parts)); err != nil {
			return fmt.Errorf("recent: key %s: %w", partsKey(i+1), err)
		}
	}

	if err := cfg.SaveTo(s.path); err != nil {
		return fmt.Errorf("recent: write %s: %w", s.path, err)
	}
	return nil
}

func queryKey(i int) string { return fmt.Sprintf("query_%d", i) }
func partsKey(i int) string { return fmt.Sprintf("parts_%d", i) }
