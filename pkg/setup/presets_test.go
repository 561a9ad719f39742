package setup

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	if !slices.IsSorted(names) {
		t.Errorf("Preset names should be sorted: %v", names)
	}
	for _, expected := range []string{"default", "spheres", "metallic", "focus", "velocity", "diffuse", "normals", "benchmark"} {
		if !slices.Contains(names, expected) {
			t.Errorf("Missing preset %q", expected)
		}
	}
}

func TestPreset_BuildsRenderableSetups(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			s, err := Preset(name)
			if err != nil {
				t.Fatalf("Preset failed: %v", err)
			}
			if _, err := renderer.NewRaytracer(s.Scene, s.Parameters, nil); err != nil {
				t.Errorf("Preset should be renderable: %v", err)
			}
		})
	}
}

func TestPreset_DebugModes(t *testing.T) {
	tests := []struct {
		name    string
		mode    renderer.DebugMode
		bounces int
	}{
		{"diffuse", renderer.DebugDiffuse, 32},
		{"normals", renderer.DebugNormals, 1},
		{"spheres", renderer.DebugNone, 16},
	}
	for _, tt := range tests {
		s, _ := Preset(tt.name)
		if s.Parameters.DebugMode != tt.mode || s.Parameters.BounceLimit != tt.bounces {
			t.Errorf("%s: expected mode %v with %d bounces, got %v with %d",
				tt.name, tt.mode, tt.bounces, s.Parameters.DebugMode, s.Parameters.BounceLimit)
		}
	}
}

func TestPreset_ReturnsFreshCopies(t *testing.T) {
	a, _ := Preset("spheres")
	b, _ := Preset("spheres")
	a.Scene.Objects = nil
	a.Parameters.ImageWidth = 1
	if len(b.Scene.Objects) == 0 || b.Parameters.ImageWidth == 1 {
		t.Error("Modifying one preset copy should not affect another")
	}
}

func TestPreset_Unknown(t *testing.T) {
	if _, err := Preset("cornell"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	infos := ListPresets()
	if len(infos) != len(PresetNames()) {
		t.Fatalf("Expected %d presets, got %d", len(PresetNames()), len(infos))
	}
	for _, info := range infos {
		if info.Type != "builtin" || info.Description == "" {
			t.Errorf("Unexpected preset info %+v", info)
		}
	}
}

func TestListSetupFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.toml", "a.json", "notes.txt", "a.toml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0755); err != nil {
		t.Fatal(err)
	}

	infos, err := ListSetupFiles(dir)
	if err != nil {
		t.Fatalf("ListSetupFiles failed: %v", err)
	}

	expected := []struct {
		id     string
		format Format
	}{
		{"a", JSON},
		{"a", TOML},
		{"b", TOML},
	}
	if len(infos) != len(expected) {
		t.Fatalf("Expected %d setup files, got %+v", len(expected), infos)
	}
	for i, e := range expected {
		if infos[i].ID != e.id || infos[i].Format != e.format || infos[i].Type != "file" {
			t.Errorf("Entry %d: expected %s (%v), got %+v", i, e.id, e.format, infos[i])
		}
	}

	missing, err := ListSetupFiles(filepath.Join(dir, "missing"))
	if err != nil || len(missing) != 0 {
		t.Errorf("Missing directory should give an empty list, got %v, %v", missing, err)
	}
}
