package platform

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/runger/hop/internal/icon"
)

// loadImage decodes an image file into an Icon bitmap. PNG, JPEG and
// GIF are supported.
func loadImage(path string) (icon.Icon, error) {
	f, err := os.Open(path)
	if err != nil {
		return icon.Icon{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return icon.Icon{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, 0, w*h*4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pix = append(pix, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}
	return icon.New(w, h, pix), nil
}
