package launch

import "fmt"

// BareKeyError reports an entry whose value is not a mapping. Entries
// must always be tables; a bare `name: value` line is a config mistake.
type BareKeyError struct {
	Name string
}

func (e *BareKeyError) Error() string {
	return fmt.Sprintf("invalid entry %q: entries must be mappings", e.Name)
}

// ParseError reports an entry field that failed to deserialize.
type ParseError struct {
	Name string // entry name, empty when the whole file is malformed
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Name == "" {
		return "entries: " + e.Msg
	}
	return fmt.Sprintf("entry %q: %s", e.Name, e.Msg)
}

// ConflictError reports an entry declaring more than one launch target.
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("entry %q: only one of location/url/system is allowed", e.Name)
}
