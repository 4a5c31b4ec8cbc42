package icon

import (
	"net/url"
	"path/filepath"
	"strings"
)

// Kind discriminates the icon key variants.
type Kind int

const (
	// KindURL keys URL-backed entries by scheme: every http(s) entry
	// shares one browser icon, every mailto entry one mail icon.
	KindURL Kind = iota
	// KindFile keys filesystem entries by canonical path.
	KindFile
	// KindCustom keys explicit icon overrides by their path.
	KindCustom
)

// Key is the equivalence-class identity an icon is memoized under. It
// is deliberately coarser than entry identity: equality follows the
// variant rule (scheme for URLs, canonical path for files), not the
// raw spelling. Keys are comparable and safe as map keys; build them
// through the constructors so the equivalence is baked into the value.
type Key struct {
	kind  Kind
	value string
}

// URLKey builds a key from a URL-backed entry's target. Only the
// scheme survives: URLKey("http://a.com") == URLKey("http://b.com").
func URLKey(rawURL string) Key {
	scheme := ""
	if u, err := url.Parse(rawURL); err == nil {
		scheme = u.Scheme
	}
	if scheme == "" {
		// Unparseable target; fall back to everything before the colon
		// so the key is still deterministic.
		scheme, _, _ = strings.Cut(rawURL, ":")
	}
	return Key{kind: KindURL, value: strings.ToLower(scheme)}
}

// FileKey builds a key from a filesystem path, canonicalized so that
// different spellings of the same file (relative vs absolute, through
// symlinks) collapse to one key.
func FileKey(path string) Key {
	return Key{kind: KindFile, value: canonicalPath(path)}
}

// CustomKey builds a key for an explicit icon override path.
func CustomKey(path string) Key {
	return Key{kind: KindCustom, value: path}
}

// Kind returns the key's variant.
func (k Key) Kind() Kind { return k.kind }

// Value returns the normalized identity: the scheme for URL keys, the
// canonical path for file keys, the override path for custom keys.
func (k Key) Value() string { return k.value }

func (k Key) String() string {
	switch k.kind {
	case KindURL:
		return "url(" + k.value + ")"
	case KindFile:
		return "file(" + k.value + ")"
	default:
		return "custom(" + k.value + ")"
	}
}

func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	// Target may not exist (yet); the cleaned absolute path is still a
	// stable identity.
	return abs
}
