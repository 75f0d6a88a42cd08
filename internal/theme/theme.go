// Package theme holds the styling applied to SVG previews. A theme can be
// loaded from a YAML file; fields left out keep their defaults.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBackground = "#121314"
	DefaultForeground = "#cccccc"
	DefaultBright     = "#ffffff"
	DefaultFontFamily = "monospace"
	DefaultFontSize   = 14
)

type Theme struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Bright     string `yaml:"bright"`
	FontFamily string `yaml:"font_family"`
	FontSize   int    `yaml:"font_size"`
}

func Default() *Theme {
	return &Theme{
		Background: DefaultBackground,
		Foreground: DefaultForeground,
		Bright:     DefaultBright,
		FontFamily: DefaultFontFamily,
		FontSize:   DefaultFontSize,
	}
}

// Load reads a theme file, overlaying it on the defaults.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// CSS renders the stylesheet embedded in the preview document. The class
// names match the spans the renderer produces: fg-15 is bright text.
func (t *Theme) CSS() string {
	return fmt.Sprintf(
		"rect.background { fill: %s; } "+
			"text { fill: %s; font-family: %s; font-size: %dpx; } "+
			"tspan.fg-15 { fill: %s; font-weight: bold; }",
		t.Background, t.Foreground, t.FontFamily, t.FontSize, t.Bright)
}
