package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/user/videocropper/pkg/ports"
)

func TestResolve_ExplicitPrefixes(t *testing.T) {
	cfg := Defaults()
	cfg.NumClass = 2
	cfg.ClassPrefix = []string{"cat", "dog"}

	r, err := cfg.Resolve("video.mp4")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !reflect.DeepEqual(r.Labels, []string{"cat", "dog"}) {
		t.Errorf("expected labels [cat dog], got %v", r.Labels)
	}
	if r.VideoPath != "video.mp4" {
		t.Errorf("expected video path video.mp4, got %s", r.VideoPath)
	}
	if len(r.Colors) != 2 {
		t.Errorf("expected 2 colors, got %d", len(r.Colors))
	}
}

func TestResolve_PrefixCountMismatch(t *testing.T) {
	tests := []struct {
		name     string
		k        int
		prefixes []string
	}{
		{"too few", 3, []string{"a", "b"}},
		{"too many", 1, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.NumClass = tt.k
			cfg.ClassPrefix = tt.prefixes

			_, err := cfg.Resolve("video.mp4")
			if !errors.Is(err, ErrConfig) {
				t.Errorf("expected ErrConfig, got %v", err)
			}
		})
	}
}

func TestResolve_InvalidClassCount(t *testing.T) {
	cfg := Defaults()
	cfg.NumClass = 0

	if _, err := cfg.Resolve("video.mp4"); !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}

func TestResolve_OutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		ext     string
		format  ports.ImageFormat
		wantErr bool
	}{
		{".png", ".png", ports.FormatPNG, false},
		{"jpg", ".jpg", ports.FormatJPEG, false},
		{".JPEG", ".JPEG", ports.FormatJPEG, false},
		{".bmp", ".bmp", ports.FormatBMP, false},
		{".tif", ".tif", ports.FormatTIFF, false},
		{"", ".png", ports.FormatPNG, false},
		{".gifv", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := Defaults()
			cfg.OutputFormat = tt.input

			r, err := cfg.Resolve("video.mp4")
			if tt.wantErr {
				if !errors.Is(err, ErrConfig) {
					t.Errorf("expected ErrConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if r.Extension != tt.ext {
				t.Errorf("expected extension %q, got %q", tt.ext, r.Extension)
			}
			if r.Format != tt.format {
				t.Errorf("expected format %v, got %v", tt.format, r.Format)
			}
		})
	}
}

func TestResolve_SaveDirNormalized(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"./", "./"},
		{"out", "out/"},
		{"out/", "out/"},
		{"", "./"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := Defaults()
			cfg.SavingPath = tt.input

			r, err := cfg.Resolve("video.mp4")
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if r.SaveDir != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, r.SaveDir)
			}
		})
	}
}

func TestDefaultLabels(t *testing.T) {
	tests := []struct {
		k        int
		expected []string
	}{
		{1, []string{"class0_patch"}},
		{3, []string{"class0_patch", "class1_patch", "class2_patch"}},
		{10, []string{
			"class00_patch", "class01_patch", "class02_patch", "class03_patch", "class04_patch",
			"class05_patch", "class06_patch", "class07_patch", "class08_patch", "class09_patch",
		}},
	}

	for _, tt := range tests {
		labels := DefaultLabels(tt.k)
		if !reflect.DeepEqual(labels, tt.expected) {
			t.Errorf("DefaultLabels(%d) = %v, expected %v", tt.k, labels, tt.expected)
		}
	}
}

func TestDefaultLabels_UniqueAndOrdered(t *testing.T) {
	labels := DefaultLabels(120)
	if len(labels) != 120 {
		t.Fatalf("expected 120 labels, got %d", len(labels))
	}

	seen := make(map[string]bool)
	for i, l := range labels {
		if seen[l] {
			t.Errorf("duplicate label %s", l)
		}
		seen[l] = true
		if i > 0 && labels[i-1] >= l {
			t.Errorf("labels not ordered: %s >= %s", labels[i-1], l)
		}
	}
	if labels[7] != "class007_patch" {
		t.Errorf("expected class007_patch, got %s", labels[7])
	}
}

func TestResolve_PaletteWraps(t *testing.T) {
	cfg := Defaults()
	cfg.NumClass = 3
	cfg.Colors = []string{"#ff0000", "#00ff00"}

	r, err := cfg.Resolve("video.mp4")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	red := color.RGBA{R: 255, A: 255}
	if r.Colors[0] != red || r.Colors[2] != red {
		t.Errorf("expected palette to wrap, got %v", r.Colors)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cropper.yaml")
	content := `num_class: 2
class_prefix: [cat, dog]
saving_path: patches
output_format: .jpg
text: true
colors: ["#112233"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.NumClass != 2 {
		t.Errorf("expected num_class 2, got %d", cfg.NumClass)
	}
	if !cfg.Text {
		t.Error("expected text to be enabled")
	}
	if cfg.Backend != "auto" {
		t.Errorf("expected default backend to survive, got %q", cfg.Backend)
	}

	r, err := cfg.Resolve("v.mp4")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if r.SaveDir != "patches/" {
		t.Errorf("expected patches/, got %s", r.SaveDir)
	}
	if r.Colors[1] != (color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 255}) {
		t.Errorf("unexpected color %v", r.Colors[1])
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.Color
	}{
		{"#dcdcdc", color.RGBA{R: 0xdc, G: 0xdc, B: 0xdc, A: 255}},
		{"FF8000", color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 255}},
		{"#abc", color.Black},
		{"", color.Black},
	}

	for _, tt := range tests {
		if got := ParseColor(tt.input); got != tt.expected {
			t.Errorf("ParseColor(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
