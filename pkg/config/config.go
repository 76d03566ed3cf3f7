// Package config provides configuration loading and resolution.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/user/videocropper/pkg/ports"
	"gopkg.in/yaml.v3"
)

// ErrConfig is returned when the command-line and file settings cannot be
// combined into a usable configuration.
var ErrConfig = errors.New("config: invalid configuration")

// Config represents the full configuration for videocropper.
type Config struct {
	// Classes
	NumClass    int      `yaml:"num_class"`
	ClassPrefix []string `yaml:"class_prefix"`
	Colors      []string `yaml:"colors"`

	// Output
	SavingPath   string `yaml:"saving_path"`
	OutputFormat string `yaml:"output_format"`
	Text         bool   `yaml:"text"`

	// Video
	Backend    string `yaml:"backend"`
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Drawing
	StrokeWidth float64 `yaml:"stroke_width"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		NumClass:     1,
		SavingPath:   "./",
		OutputFormat: ".png",
		Backend:      "auto",
		StrokeWidth:  1,
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolved is the validated configuration a cropping session runs with.
type Resolved struct {
	VideoPath   string
	Labels      []string
	Colors      []color.Color
	SaveDir     string
	Extension   string
	Format      ports.ImageFormat
	LogNames    bool
	Backend     string
	FFmpegPath  string
	StrokeWidth float64
}

// Resolve validates the configuration and derives labels, colours and
// the output format. It performs no video I/O.
func (c Config) Resolve(videoPath string) (Resolved, error) {
	if c.NumClass < 1 {
		return Resolved{}, fmt.Errorf("%w: number of classes must be at least 1, got %d", ErrConfig, c.NumClass)
	}

	var labels []string
	if len(c.ClassPrefix) > 0 {
		if len(c.ClassPrefix) != c.NumClass {
			return Resolved{}, fmt.Errorf("%w: number of prefixes given in the input argument (%d) is inconsistent with number of classes (%d) specified",
				ErrConfig, len(c.ClassPrefix), c.NumClass)
		}
		labels = append(labels, c.ClassPrefix...)
	} else {
		labels = DefaultLabels(c.NumClass)
	}

	ext := c.OutputFormat
	if ext == "" {
		ext = ".png"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	format, ok := ports.FormatFromExt(ext)
	if !ok {
		return Resolved{}, fmt.Errorf("%w: unsupported output format %q", ErrConfig, c.OutputFormat)
	}

	palette := DefaultPalette()
	if len(c.Colors) > 0 {
		palette = make([]color.Color, 0, len(c.Colors))
		for _, hex := range c.Colors {
			palette = append(palette, ParseColor(hex))
		}
	}
	colors := make([]color.Color, len(labels))
	for i := range labels {
		colors[i] = palette[i%len(palette)]
	}

	backend := c.Backend
	if backend == "" {
		backend = "auto"
	}

	stroke := c.StrokeWidth
	if stroke <= 0 {
		stroke = 1
	}

	return Resolved{
		VideoPath:   videoPath,
		Labels:      labels,
		Colors:      colors,
		SaveDir:     NormalizeDir(c.SavingPath),
		Extension:   ext,
		Format:      format,
		LogNames:    c.Text,
		Backend:     backend,
		FFmpegPath:  c.FFmpegPath,
		StrokeWidth: stroke,
	}, nil
}

// Describe prints a human-readable summary of the resolved configuration.
func (r Resolved) Describe(log ports.Logger) {
	log.Info("Video file: %s", r.VideoPath)
	log.Info("Cropped patches will be saved to %s", r.SaveDir)
	log.Info("Prefix of different class of patches are: %s", strings.Join(r.Labels, ", "))
	log.Info("Cropped patches will be saved as %s file", r.Extension)
	if r.LogNames {
		log.Info("File names of saved patches will be written to %s", r.SaveDir+"frame_patch_names.txt")
	}
	log.Debug("Video backend: %s", r.Backend)
}

// DefaultLabels generates class00_patch, class01_patch, ... with the index
// zero-padded to the number of digits in k.
func DefaultLabels(k int) []string {
	width := len(strconv.Itoa(k))
	labels := make([]string, k)
	for i := 0; i < k; i++ {
		labels[i] = fmt.Sprintf("class%0*d_patch", width, i)
	}
	return labels
}

// NormalizeDir makes sure dir ends with a path separator so that file
// names can be appended to it directly.
func NormalizeDir(dir string) string {
	if dir == "" {
		return "./"
	}
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir
	}
	return dir + "/"
}

// DefaultPalette returns the per-class outline colours.
func DefaultPalette() []color.Color {
	return []color.Color{
		color.RGBA{R: 0, G: 0, B: 255, A: 255},
		color.RGBA{R: 0, G: 255, B: 0, A: 255},
		color.RGBA{R: 255, G: 0, B: 0, A: 255},
		color.RGBA{R: 0, G: 255, B: 255, A: 255},
		color.RGBA{R: 255, G: 255, B: 0, A: 255},
		color.RGBA{R: 255, G: 0, B: 255, A: 255},
		color.RGBA{R: 0, G: 0, B: 128, A: 255},
		color.RGBA{R: 0, G: 128, B: 0, A: 255},
		color.RGBA{R: 128, G: 0, B: 0, A: 255},
		color.RGBA{R: 0, G: 128, B: 128, A: 255},
		color.RGBA{R: 128, G: 128, B: 0, A: 255},
		color.RGBA{R: 128, G: 0, B: 128, A: 255},
	}
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	r := hexValue(hex[0])<<4 | hexValue(hex[1])
	g := hexValue(hex[2])<<4 | hexValue(hex[3])
	b := hexValue(hex[4])<<4 | hexValue(hex[5])

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
