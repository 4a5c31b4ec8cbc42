package launch

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Launcher is the platform collaborator that actually opens things.
// See internal/platform for the implementation.
type Launcher interface {
	OpenFile(path string) error
	RunCommand(command string) error
}

// substitute replaces every %s in format with param. A literal percent
// sign is written %%: the format is split on %%, each segment gets the
// substitution, and the segments are rejoined with a single %.
func substitute(format, param string) string {
	segs := strings.Split(format, "%%")
	for i, s := range segs {
		segs[i] = strings.ReplaceAll(s, "%s", param)
	}
	return strings.Join(segs, "%")
}

// queryParam extracts the substitution parameter from the query: the
// remainder after the first whitespace rune. With no whitespace the
// literal "%s" is returned, so the placeholder stays visible while the
// user is still typing the keyword.
func queryParam(query string) string {
	i := strings.IndexFunc(query, unicode.IsSpace)
	if i < 0 {
		return "%s"
	}
	_, size := utf8.DecodeRuneInString(query[i:])
	return query[i+size:]
}

// FormatName renders the entry's display name for a query. Entries
// without a keyword show their bare name.
func (e *Entry) FormatName(query string) string {
	if e.KeywordMode == KeywordNone {
		return e.Name
	}
	return substitute(e.Name, queryParam(query))
}

// FormatSelection renders the string handed to the launcher: the action
// target with the query parameter substituted, percent-encoded for
// Escaped entries.
func (e *Entry) FormatSelection(query string) string {
	if e.KeywordMode == KeywordNone {
		return e.Action.Target
	}
	param := queryParam(query)
	if e.KeywordMode == KeywordEscaped {
		param = percentEncode(param)
	}
	return substitute(e.Action.Target, param)
}

// HandleSelection formats the selection and hands it to the launcher.
// Launcher errors propagate unchanged.
func (e *Entry) HandleSelection(l Launcher, query string) error {
	selection := e.FormatSelection(query)
	if e.Action.Kind == ActionSystem {
		return l.RunCommand(selection)
	}
	return l.OpenFile(selection)
}

// percentEncode encodes everything outside [A-Za-z0-9-_.~], with space
// as %20 (QueryEscape produces +, which no URL handler we hand off to
// treats as a space outside query strings).
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
