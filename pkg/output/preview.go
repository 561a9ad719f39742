package output

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/df07/go-pathtracer/pkg/raster"
)

// Downscale returns an 8-bit copy of img resized to width, keeping the aspect ratio.
// Images already narrower than width are converted without resampling.
func Downscale(img *raster.Image, width int) *image.NRGBA {
	src := img.ToNRGBA()
	if width <= 0 || width >= img.Width {
		return src
	}

	height := max(1, int(math.Round(float64(img.Height)*float64(width)/float64(img.Width))))
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
