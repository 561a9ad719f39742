package setup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var (
	ErrOpen          = errors.New("setup: opening file failed")
	ErrCreate        = errors.New("setup: creating file failed")
	ErrDeserialize   = errors.New("setup: deserialization failed")
	ErrSerialize     = errors.New("setup: serialization failed")
	ErrUnknownFormat = errors.New("setup: unknown file format")
)

// Setup is everything needed for one render: the parameters and the scene
type Setup struct {
	Parameters renderer.Parameters
	Scene      *scene.Scene
}

// Format is a setup file encoding
type Format int

const (
	JSON Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatForPath picks the encoding from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads a setup file, choosing the decoder by extension
func Load(path string) (*Setup, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer file.Close()

	return Decode(file, format)
}

// Save writes the setup to path, creating parent directories as needed
func Save(path string, s *Setup) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreate, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreate, err)
	}

	if err := Encode(file, format, s); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrCreate, err)
	}
	return nil
}

// Decode reads a setup document. Fields missing from the document keep their defaults.
func Decode(r io.Reader, format Format) (*Setup, error) {
	doc := defaultDocument()

	var err error
	switch format {
	case JSON:
		err = json.NewDecoder(r).Decode(&doc)
	case TOML:
		err = toml.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialize, err)
	}

	s, err := doc.toSetup()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeserialize, err)
	}
	return s, nil
}

// Encode writes the setup as a document in the given format
func Encode(w io.Writer, format Format, s *Setup) error {
	doc, err := newDocument(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	switch format {
	case JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(doc)
	case TOML:
		err = toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return nil
}
