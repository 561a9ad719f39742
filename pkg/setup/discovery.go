package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Info describes a setup available to the CLI
type Info struct {
	ID          string // Preset name or file name without extension
	Description string
	Type        string // "builtin" or "file"
	FilePath    string // Path to the setup file (file type only)
	Format      Format // Encoding of the setup file (file type only)
}

// ListPresets returns the built-in setups sorted by name
func ListPresets() []Info {
	var infos []Info
	for _, name := range PresetNames() {
		infos = append(infos, Info{
			ID:          name,
			Description: presets[name].description,
			Type:        "builtin",
		})
	}
	return infos
}

// ListSetupFiles scans dir for JSON and TOML setup files. A missing directory
// yields an empty list.
func ListSetupFiles(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan setup directory: %w", err)
	}

	infos := []Info{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		format, err := FormatForPath(path)
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			ID:       strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Type:     "file",
			FilePath: path,
			Format:   format,
		})
	}

	// Sort by id, then by path so json and toml twins keep a stable order
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].ID != infos[j].ID {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].FilePath < infos[j].FilePath
	})

	return infos, nil
}
