package platform

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runger/hop/internal/icon"
)

// schemeIcons maps URL schemes to theme icon base names. Unlisted
// schemes fall back to "link".
var schemeIcons = map[string]string{
	"http":   "web",
	"https":  "web",
	"ftp":    "web",
	"mailto": "mail",
	"file":   "file",
	"ssh":    "terminal",
}

// resolver looks icons up in the configured theme directories. Lookups
// never fail observably: anything that goes wrong falls back to the
// default icon, and failing that to the built-in placeholder. That
// contract is what lets the cache layer above run without an error
// path.
type resolver struct {
	settings icon.Settings
	logger   *slog.Logger
	fallback icon.Icon
}

// NewResolver builds the platform resolver for one session. It is the
// factory handed to the icon worker; the worker calls it once when
// settings arrive.
func NewResolver(settings icon.Settings, logger *slog.Logger) icon.Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	r := &resolver{settings: settings, logger: logger}
	r.fallback = r.loadFallback()
	return r
}

func (r *resolver) loadFallback() icon.Icon {
	if r.settings.DefaultIcon != "" {
		if ic, err := loadImage(r.settings.DefaultIcon); err == nil {
			return ic
		} else {
			r.logger.Warn("default icon unreadable, using placeholder",
				"path", r.settings.DefaultIcon, "error", err)
		}
	}
	return icon.Placeholder(r.settings.Size)
}

func (r *resolver) Resolve(key icon.Key) icon.Icon {
	switch key.Kind() {
	case icon.KindCustom:
		return r.customIcon(key.Value())
	case icon.KindURL:
		return r.schemeIcon(key.Value())
	default:
		return r.fileIcon(key.Value())
	}
}

func (r *resolver) customIcon(path string) icon.Icon {
	ic, err := loadImage(path)
	if err != nil {
		r.logger.Warn("custom icon unreadable", "path", path, "error", err)
		return r.fallback
	}
	return ic
}

func (r *resolver) schemeIcon(scheme string) icon.Icon {
	name := schemeIcons[scheme]
	if name == "" {
		name = "link"
	}
	return r.themeIcon(name)
}

func (r *resolver) fileIcon(path string) icon.Icon {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return r.themeIcon("folder")
	}
	if ext := filepath.Ext(path); ext != "" {
		// e.g. file-pdf.png, file-txt.png
		if ic, ok := r.lookupTheme("file-" + ext[1:]); ok {
			return ic
		}
	}
	return r.themeIcon("file")
}

// themeIcon resolves a base name through the theme dirs, falling back
// to the default icon when no theme provides it.
func (r *resolver) themeIcon(name string) icon.Icon {
	if ic, ok := r.lookupTheme(name); ok {
		return ic
	}
	return r.fallback
}

func (r *resolver) lookupTheme(name string) (icon.Icon, bool) {
	for _, dir := range r.settings.ThemeDirs {
		path := filepath.Join(dir, name+".png")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		ic, err := loadImage(path)
		if err != nil {
			r.logger.Warn("theme icon unreadable", "path", path, "error", err)
			continue
		}
		return ic, true
	}
	return icon.Icon{}, false
}
