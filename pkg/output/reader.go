package output

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/raster"
)

// Load reads a PNG, BMP or TIFF file back into a raster image, undoing the
// row flip applied when saving. The decoders are registered by format.go.
func Load(path string) (*raster.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	out := raster.New(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			// Straight alpha, the inverse of raster.ToNRGBA
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			out.Set(x, out.Height-1-y, core.NewColor(
				float64(c.R)/255.0,
				float64(c.G)/255.0,
				float64(c.B)/255.0,
				float64(c.A)/255.0,
			))
		}
	}

	return out, nil
}
