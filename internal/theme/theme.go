// Package theme loads styling themes from embedded YAML files and exposes
// them as output.StyleProvider implementations backed by lipgloss styles.
package theme

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"fableshell/internal/output"
)

//go:embed themes/*.yaml
var themeFS embed.FS

// styleConfig is the YAML shape of a single semantic style.
type styleConfig struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Bold       bool   `yaml:"bold"`
	Italic     bool   `yaml:"italic"`
	Underline  bool   `yaml:"underline"`
	Faint      bool   `yaml:"faint"`
}

// themeFile is the YAML shape of a theme file.
type themeFile struct {
	Name   string                 `yaml:"name"`
	Styles map[string]styleConfig `yaml:"styles"`
}

// Theme maps semantic output types to lipgloss styles. It implements
// output.StyleProvider.
type Theme struct {
	name   string
	styles map[output.SemanticType]lipgloss.Style
}

// Name returns the theme's name.
func (t *Theme) Name() string {
	return t.name
}

// GetStyle returns the style for a semantic type, or an empty style for
// semantics the theme does not define.
func (t *Theme) GetStyle(semantic output.SemanticType) output.TextStyle {
	if style, ok := t.styles[semantic]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// IsAvailable reports whether the theme is usable.
func (t *Theme) IsAvailable() bool {
	return t != nil && t.styles != nil
}

// Load returns the named embedded theme.
func Load(name string) (*Theme, error) {
	data, err := themeFS.ReadFile("themes/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return parse(data)
}

// Default returns the default theme. The embedded file is part of the
// build, so failure to parse it is a programming error.
func Default() *Theme {
	t, err := Load("default")
	if err != nil {
		panic(err)
	}
	return t
}

// Names lists the embedded theme names in sorted order.
func Names() []string {
	entries, err := themeFS.ReadDir("themes")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

func parse(data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	t := &Theme{
		name:   file.Name,
		styles: make(map[output.SemanticType]lipgloss.Style, len(file.Styles)),
	}
	for semantic, cfg := range file.Styles {
		style := lipgloss.NewStyle()
		if cfg.Foreground != "" {
			style = style.Foreground(lipgloss.Color(cfg.Foreground))
		}
		if cfg.Background != "" {
			style = style.Background(lipgloss.Color(cfg.Background))
		}
		if cfg.Bold {
			style = style.Bold(true)
		}
		if cfg.Italic {
			style = style.Italic(true)
		}
		if cfg.Underline {
			style = style.Underline(true)
		}
		if cfg.Faint {
			style = style.Faint(true)
		}
		t.styles[output.SemanticType(semantic)] = style
	}
	return t, nil
}
