package launch

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// EntryID indexes an entry inside one Store instance. IDs are stable
// for the lifetime of that Store only; a reload invalidates them.
type EntryID int

// Store is one immutable load of the entries file. It is read-only
// after construction and safe to share across goroutines; reloading
// replaces the whole Store.
type Store struct {
	entries []Entry
}

// NewStore builds a store from already-parsed entries, in declaration
// order. Mostly useful for tests; LoadStore is the production path.
func NewStore(entries []Entry) *Store {
	return &Store{entries: entries}
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Get returns the entry for an ID obtained from FindMatches.
func (s *Store) Get(id EntryID) *Entry {
	return &s.entries[id]
}

// FindMatches scores every entry against the query, drops non-matches
// and returns the rest ranked best-first. Equal scores rank the
// later-declared entry first: users append new entries at the bottom of
// the file and expect them to win.
func (s *Store) FindMatches(query string) []EntryID {
	type scored struct {
		id    EntryID
		score int
	}

	var matches []scored
	for i := len(s.entries) - 1; i >= 0; i-- {
		if sc := s.entries[i].Score(query); sc > 0 {
			matches = append(matches, scored{id: EntryID(i), score: sc})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})

	ids := make([]EntryID, len(matches))
	for i, m := range matches {
		ids[i] = m.id
	}
	return ids
}

// LoadStore reads and parses the entries file. The load is
// all-or-nothing: the first bad entry aborts the whole build.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading entries file: %w", err)
	}
	return ParseStore(data)
}

// ParseStore parses the entries mapping. Declaration order is
// preserved (FindMatches' tie-break depends on it), which is why this
// decodes through yaml.Node instead of a plain map.
func ParseStore(data []byte) (*Store, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}

	// An empty file decodes to a zero node: an empty store.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &Store{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{Msg: "entries file is not a mapping"}
	}

	entries := make([]Entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return nil, &ParseError{Msg: fmt.Sprintf("line %d: entry names must be strings", keyNode.Line)}
		}

		var raw any
		if err := valNode.Decode(&raw); err != nil {
			return nil, &ParseError{Name: name, Msg: err.Error()}
		}

		entry, err := EntryFromValue(name, raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return &Store{entries: entries}, nil
}
