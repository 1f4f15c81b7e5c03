package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Margin is the blank border around the plotting area, in pixels.
type Margin struct {
	Top    float64 `toml:"top" yaml:"top" json:"top"`
	Right  float64 `toml:"right" yaml:"right" json:"right"`
	Bottom float64 `toml:"bottom" yaml:"bottom" json:"bottom"`
	Left   float64 `toml:"left" yaml:"left" json:"left"`
}

// Config holds the renderer options. Width and Height are in pixels; zero
// means "fit the terminal". None of these fields affect brush logic except
// through the rendered geometry.
type Config struct {
	Width  int    `toml:"width" yaml:"width" json:"width"`
	Height int    `toml:"height" yaml:"height" json:"height"`
	Margin Margin `toml:"margin" yaml:"margin" json:"margin"`

	XLabel     string `toml:"x_label" yaml:"x_label" json:"x_label"`
	YLabel     string `toml:"y_label" yaml:"y_label" json:"y_label"`
	SizeLabel  string `toml:"size_label" yaml:"size_label" json:"size_label"`
	ColorLabel string `toml:"color_label" yaml:"color_label" json:"color_label"`

	// SizeRange is the glyph radius range [min, max] in pixels.
	SizeRange   []float64 `toml:"size_range" yaml:"size_range" json:"size_range"`
	ColorScheme string    `toml:"color_scheme" yaml:"color_scheme" json:"color_scheme"`
	Legend      bool      `toml:"legend" yaml:"legend" json:"legend"`

	// Selection is an optional initial data-space selection x0, y0, x1, y1.
	Selection []float64 `toml:"selection" yaml:"selection" json:"selection"`

	Export Export `toml:"export" yaml:"export" json:"export"`
}

// Export controls the static image written by the export action.
type Export struct {
	Path   string  `toml:"path" yaml:"path" json:"path"`
	Width  float64 `toml:"width" yaml:"width" json:"width"`   // points
	Height float64 `toml:"height" yaml:"height" json:"height"` // points
	// Dim is the opacity of unselected marks in the exported image.
	Dim float64 `toml:"dim" yaml:"dim" json:"dim"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Margin:      Margin{Top: 2, Right: 2, Bottom: 2, Left: 2},
		XLabel:      "x",
		YLabel:      "y",
		SizeLabel:   "size",
		ColorLabel:  "color",
		SizeRange:   []float64{1, 4},
		ColorScheme: "smooth-blue-red",
		Legend:      true,
		Export:      Export{Path: "scatter.svg", Width: 480, Height: 360, Dim: 0.2},
	}
}

// LoadConfig reads path on top of DefaultConfig. The decoder is picked by
// extension: .toml, .yaml/.yml or .json.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config: unsupported file: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", filepath.Base(path), err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first inconsistent option.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.New("config: negative size")
	}
	if len(c.SizeRange) != 2 {
		return errors.New("config: size_range needs two values")
	}
	if c.SizeRange[0] < 0 || c.SizeRange[1] < c.SizeRange[0] {
		return fmt.Errorf("config: bad size_range %v", c.SizeRange)
	}
	if c.Selection != nil && len(c.Selection) != 4 {
		return errors.New("config: selection needs four values")
	}
	if c.Export.Dim < 0 || c.Export.Dim > 1 {
		return fmt.Errorf("config: export dim %v outside [0,1]", c.Export.Dim)
	}
	for _, v := range c.Selection {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("config: selection must be finite")
		}
	}
	return nil
}

// MinSize returns the smallest glyph radius.
func (c Config) MinSize() float64 { return c.SizeRange[0] }

// MaxSize returns the largest glyph radius.
func (c Config) MaxSize() float64 { return c.SizeRange[1] }
