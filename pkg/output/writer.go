package output

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/raster"
)

var (
	ErrMissingInput  = errors.New("output: no image to save")
	ErrInvalidPath   = errors.New("output: invalid output path")
	ErrSave          = errors.New("output: saving image failed")
	ErrUnknownFormat = errors.New("output: unknown image format")
)

// Writer saves rendered images in a single format
type Writer struct {
	format Format
	logger core.Logger
}

// NewWriter creates a writer for the format. A nil logger discards messages.
func NewWriter(format Format, logger core.Logger) *Writer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Writer{format: format, logger: logger}
}

// Format returns the writer's file format
func (w *Writer) Format() Format {
	return w.format
}

// Save converts the linear buffer to 8-bit and writes it to path
func (w *Writer) Save(img *raster.Image, path string) error {
	if img == nil {
		return ErrMissingInput
	}
	return w.SaveImage(img.ToNRGBA(), path)
}

// SaveImage writes an already converted image to path, creating parent directories
func (w *Writer) SaveImage(img image.Image, path string) error {
	if img == nil {
		return ErrMissingInput
	}
	if path == "" || path == "." || filepath.Base(path) == string(filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	start := time.Now()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	if err := w.format.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	w.logger.Printf("Saved %s file %s in %v", w.format.Name(), path, time.Since(start))
	return nil
}

// Save writes img to path in the format implied by the extension
func Save(img *raster.Image, path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	return NewWriter(format, nil).Save(img, path)
}
