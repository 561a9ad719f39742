package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format encodes an 8-bit image into a file format
type Format interface {
	Name() string
	Extension() string
	Encode(w io.Writer, img image.Image) error
}

// PNG writes lossless compressed PNG files
type PNG struct {
	Compression png.CompressionLevel
}

func (PNG) Name() string      { return "PNG" }
func (PNG) Extension() string { return ".png" }

func (f PNG) Encode(w io.Writer, img image.Image) error {
	encoder := png.Encoder{CompressionLevel: f.Compression}
	return encoder.Encode(w, img)
}

// BMP writes uncompressed bitmaps
type BMP struct{}

func (BMP) Name() string      { return "BMP" }
func (BMP) Extension() string { return ".bmp" }

func (BMP) Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

// TIFF writes TIFF files, deflate compressed unless Uncompressed is set
type TIFF struct {
	Uncompressed bool
}

func (TIFF) Name() string      { return "TIFF" }
func (TIFF) Extension() string { return ".tiff" }

func (f TIFF) Encode(w io.Writer, img image.Image) error {
	options := &tiff.Options{Compression: tiff.Deflate}
	if f.Uncompressed {
		options.Compression = tiff.Uncompressed
	}
	return tiff.Encode(w, img, options)
}

var formatsByName = map[string]Format{
	"png":  PNG{},
	"bmp":  BMP{},
	"tiff": TIFF{},
	"tif":  TIFF{},
}

// FormatByName looks up a format by name ("png", "bmp", "tiff"), case-insensitive
func FormatByName(name string) (Format, error) {
	if f, ok := formatsByName[strings.ToLower(name)]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatForPath picks the format from the file extension
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return FormatByName(ext)
}
