// Package icon memoizes per-entry icons: equivalence-class keys, a
// single-writer cache, and a background worker that performs the
// (possibly slow) platform lookups off the UI goroutine.
package icon

// Icon is an immutable RGBA8 bitmap. Values are cheap to copy; the
// pixel buffer is shared and must not be mutated after construction.
type Icon struct {
	Width  int
	Height int
	Pix    []byte // 4 bytes per pixel, row-major
}

// New copies pix into a fresh Icon.
func New(width, height int, pix []byte) Icon {
	buf := make([]byte, len(pix))
	copy(buf, pix)
	return Icon{Width: width, Height: height, Pix: buf}
}

// IsZero reports whether the icon holds no image.
func (i Icon) IsZero() bool {
	return i.Width <= 0 || i.Height <= 0 || len(i.Pix) == 0
}

// MeanColor averages the opaque pixels. The picker uses it to tint a
// one-cell swatch, the closest a text terminal gets to the bitmap.
func (i Icon) MeanColor() (r, g, b uint8) {
	var sr, sg, sb, n uint64
	for p := 0; p+3 < len(i.Pix); p += 4 {
		if i.Pix[p+3] == 0 {
			continue
		}
		sr += uint64(i.Pix[p])
		sg += uint64(i.Pix[p+1])
		sb += uint64(i.Pix[p+2])
		n++
	}
	if n == 0 {
		return 0, 0, 0
	}
	return uint8(sr / n), uint8(sg / n), uint8(sb / n)
}

// Placeholder returns the deterministic fallback icon: a solid
// mid-gray square. Resolvers return it whenever a lookup fails, so the
// cache never needs an error state.
func Placeholder(size int) Icon {
	if size <= 0 {
		size = 16
	}
	pix := make([]byte, size*size*4)
	for p := 0; p < len(pix); p += 4 {
		pix[p], pix[p+1], pix[p+2], pix[p+3] = 0x80, 0x80, 0x80, 0xff
	}
	return Icon{Width: size, Height: size, Pix: pix}
}
