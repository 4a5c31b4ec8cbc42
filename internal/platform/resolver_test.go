package platform

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/hop/internal/icon"
)

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func meanOf(ic icon.Icon) color.NRGBA {
	r, g, b := ic.MeanColor()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func TestResolver_SchemeIcon(t *testing.T) {
	theme := t.TempDir()
	writePNG(t, filepath.Join(theme, "web.png"), color.NRGBA{R: 0, G: 0, B: 200, A: 255})
	writePNG(t, filepath.Join(theme, "link.png"), color.NRGBA{R: 200, G: 200, B: 0, A: 255})

	r := NewResolver(icon.Settings{Size: 2, ThemeDirs: []string{theme}}, nil)

	got := r.Resolve(icon.URLKey("https://example.com"))
	assert.Equal(t, color.NRGBA{B: 200, A: 0xff}, meanOf(got))

	// Unmapped schemes use the generic link icon.
	got = r.Resolve(icon.URLKey("gopher://example.com"))
	assert.Equal(t, color.NRGBA{R: 200, G: 200, A: 0xff}, meanOf(got))
}

func TestResolver_FileIcons(t *testing.T) {
	theme := t.TempDir()
	writePNG(t, filepath.Join(theme, "folder.png"), color.NRGBA{R: 10, A: 255})
	writePNG(t, filepath.Join(theme, "file.png"), color.NRGBA{G: 20, A: 255})
	writePNG(t, filepath.Join(theme, "file-txt.png"), color.NRGBA{B: 30, A: 255})

	r := NewResolver(icon.Settings{Size: 2, ThemeDirs: []string{theme}}, nil)

	dir := t.TempDir()
	assert.Equal(t, color.NRGBA{R: 10, A: 0xff}, meanOf(r.Resolve(icon.FileKey(dir))))

	got := r.Resolve(icon.FileKey(filepath.Join(dir, "notes.txt")))
	assert.Equal(t, color.NRGBA{B: 30, A: 0xff}, meanOf(got), "extension-specific icon wins")

	got = r.Resolve(icon.FileKey(filepath.Join(dir, "README")))
	assert.Equal(t, color.NRGBA{G: 20, A: 0xff}, meanOf(got), "generic file icon")
}

func TestResolver_CustomIcon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.png")
	writePNG(t, path, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	r := NewResolver(icon.Settings{Size: 2}, nil)

	got := r.Resolve(icon.CustomKey(path))
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}, meanOf(got))
}

func TestResolver_NeverFails(t *testing.T) {
	r := NewResolver(icon.Settings{Size: 4}, nil)

	for _, key := range []icon.Key{
		icon.CustomKey("/does/not/exist.png"),
		icon.URLKey("https://example.com"),
		icon.FileKey("/does/not/exist.txt"),
	} {
		got := r.Resolve(key)
		assert.False(t, got.IsZero(), key.String())
		assert.Equal(t, 4, got.Width, key.String())
	}
}

func TestResolver_DefaultIconFallback(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "default.png")
	writePNG(t, def, color.NRGBA{R: 9, G: 9, B: 9, A: 255})

	r := NewResolver(icon.Settings{Size: 2, DefaultIcon: def}, nil)

	got := r.Resolve(icon.URLKey("https://example.com"))
	assert.Equal(t, color.NRGBA{R: 9, G: 9, B: 9, A: 0xff}, meanOf(got),
		"no theme dirs, default icon serves every lookup")
}

func TestResolver_ThemeDirOrder(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(first, "web.png"), color.NRGBA{R: 100, A: 255})
	writePNG(t, filepath.Join(second, "web.png"), color.NRGBA{G: 100, A: 255})

	r := NewResolver(icon.Settings{Size: 2, ThemeDirs: []string{first, second}}, nil)

	got := r.Resolve(icon.URLKey("http://x"))
	assert.Equal(t, color.NRGBA{R: 100, A: 0xff}, meanOf(got), "earlier dirs win")
}

func TestLoadImage_BadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := loadImage(path)
	assert.Error(t, err)

	_, err = loadImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}
