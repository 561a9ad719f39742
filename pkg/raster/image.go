package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Image is an in-memory buffer of linear colors stored row-major.
// Row 0 is the bottom of the image plane (v = 0), matching camera coordinates.
type Image struct {
	Width  int
	Height int
	Pixels []core.Color
}

// New creates a black image of the given size
func New(width, height int) *Image {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("raster: invalid image size %dx%d", width, height))
	}
	img := &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
	img.Fill(core.Black)
	return img
}

func (img *Image) index(x, y int) int {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		panic(fmt.Sprintf("raster: pixel (%d,%d) outside %dx%d image", x, y, img.Width, img.Height))
	}
	return y*img.Width + x
}

// At returns the color at (x, y)
func (img *Image) At(x, y int) core.Color {
	return img.Pixels[img.index(x, y)]
}

// Set stores the color at (x, y)
func (img *Image) Set(x, y int, c core.Color) {
	img.Pixels[img.index(x, y)] = c
}

// Fill sets every pixel to c
func (img *Image) Fill(c core.Color) {
	for i := range img.Pixels {
		img.Pixels[i] = c
	}
}

// ToNRGBA converts the buffer to an 8-bit image with the top row first.
// Channels are stored unpremultiplied so translucent colors keep their value.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		row := img.Height - 1 - y
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			out.SetNRGBA(x, row, color.NRGBA{
				R: ToByte(c.X),
				G: ToByte(c.Y),
				B: ToByte(c.Z),
				A: ToByte(c.W),
			})
		}
	}
	return out
}

// ToByte maps a normalized channel value to [0,255]
func ToByte(v float64) uint8 {
	return uint8(math.Round(core.Clamp(v, 0, 1) * 255))
}
