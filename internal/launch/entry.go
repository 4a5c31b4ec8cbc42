// Package launch holds the launch entry model: parsing entries from the
// user's entries file, scoring them against typed queries, and
// formatting the final launch string.
package launch

import (
	"fmt"

	"github.com/runger/hop/internal/icon"
)

// ActionKind discriminates what triggering an entry does.
type ActionKind int

const (
	// ActionFile opens a path or URL with the OS handler.
	ActionFile ActionKind = iota
	// ActionSystem executes a command.
	ActionSystem
)

// Action is an entry's launch target.
type Action struct {
	Kind   ActionKind
	Target string
}

// KeywordPolicy controls whether and how the query remainder is
// substituted into an entry's name and target.
type KeywordPolicy int

const (
	// KeywordNone disables substitution entirely.
	KeywordNone KeywordPolicy = iota
	// KeywordRaw substitutes the remainder verbatim.
	KeywordRaw
	// KeywordEscaped percent-encodes the remainder before substituting.
	// Selected for URL-backed entries and when escape=true is set.
	KeywordEscaped
)

// Entry is a single parsed launch target. Entries are immutable once
// built; the whole Store is replaced on reload.
type Entry struct {
	Name        string
	Action      Action
	Tags        []string // declaration order, kept for deterministic iteration
	Keyword     string
	KeywordMode KeywordPolicy
	Description string // optional, restricted Markdown (see DescriptionParagraphs)
	IconPath    string // optional explicit icon override

	urlBacked bool
}

// EntryFromValue parses one entry from its name and the generic decoded
// value of the entries mapping. The value must itself be a mapping.
func EntryFromValue(name string, raw any) (Entry, error) {
	tbl, ok := raw.(map[string]any)
	if !ok {
		return Entry{}, &BareKeyError{Name: name}
	}

	location, hasLocation, err := stringField(tbl, name, "location")
	if err != nil {
		return Entry{}, err
	}
	rawURL, hasURL, err := stringField(tbl, name, "url")
	if err != nil {
		return Entry{}, err
	}
	system, hasSystem, err := stringField(tbl, name, "system")
	if err != nil {
		return Entry{}, err
	}

	present := 0
	for _, p := range []bool{hasLocation, hasURL, hasSystem} {
		if p {
			present++
		}
	}
	if present > 1 {
		return Entry{}, &ConflictError{Name: name}
	}

	target := name
	switch {
	case hasLocation:
		target = location
	case hasURL:
		target = rawURL
	case hasSystem:
		target = system
	}

	action := Action{Kind: ActionFile, Target: target}
	if hasSystem {
		action.Kind = ActionSystem
	}

	keyword, hasKeyword, err := stringField(tbl, name, "keyword")
	if err != nil {
		return Entry{}, err
	}
	escape, _, err := boolField(tbl, name, "escape")
	if err != nil {
		return Entry{}, err
	}

	mode := KeywordNone
	if hasKeyword {
		if hasURL || escape {
			mode = KeywordEscaped
		} else {
			mode = KeywordRaw
		}
	} else {
		keyword = ""
	}

	desc, hasDesc, err := stringField(tbl, name, "description")
	if err != nil {
		return Entry{}, err
	}
	if !hasDesc {
		// "desc" is accepted as a shorthand alias.
		desc, _, err = stringField(tbl, name, "desc")
		if err != nil {
			return Entry{}, err
		}
	}

	iconPath, _, err := stringField(tbl, name, "icon")
	if err != nil {
		return Entry{}, err
	}

	tags, err := tagsField(tbl, name)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Name:        name,
		Action:      action,
		Tags:        tags,
		Keyword:     keyword,
		KeywordMode: mode,
		Description: desc,
		IconPath:    iconPath,
		urlBacked:   hasURL,
	}, nil
}

// IconKey returns the equivalence-class key used to memoize this
// entry's icon. Distinct entries frequently share a key (all http URLs,
// all entries pointing into the same directory tree, ...).
func (e *Entry) IconKey() icon.Key {
	if e.IconPath != "" {
		return icon.CustomKey(e.IconPath)
	}
	if e.urlBacked {
		return icon.URLKey(e.Action.Target)
	}
	return icon.FileKey(e.Action.Target)
}

// URLBacked reports whether the entry came from a url field.
func (e *Entry) URLBacked() bool {
	return e.urlBacked
}

func stringField(tbl map[string]any, entry, key string) (string, bool, error) {
	v, ok := tbl[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, &ParseError{Name: entry, Msg: fmt.Sprintf("field %q must be a string", key)}
	}
	return s, true, nil
}

func boolField(tbl map[string]any, entry, key string) (bool, bool, error) {
	v, ok := tbl[key]
	if !ok || v == nil {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, false, &ParseError{Name: entry, Msg: fmt.Sprintf("field %q must be a boolean", key)}
	}
	return b, true, nil
}

func tagsField(tbl map[string]any, entry string) ([]string, error) {
	v, ok := tbl["tags"]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, &ParseError{Name: entry, Msg: `field "tags" must be a list of strings`}
	}
	tags := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, &ParseError{Name: entry, Msg: `field "tags" must be a list of strings`}
		}
		tags = append(tags, s)
	}
	return tags, nil
}
