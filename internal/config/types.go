// Package config holds the gridcol configuration file model.
package config

import (
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/gridcol/internal/formatter"
)

// App holds rendering defaults.
type App struct {
	Locale  string `yaml:"locale"`
	Output  string `yaml:"output"`
	TreeKey string `yaml:"tree-key"`
	RowsKey string `yaml:"rows-key"`
	Indent  string `yaml:"indent"`
	// AutoOrder is a pointer so a user file can turn it off explicitly.
	AutoOrder *bool  `yaml:"auto-order"`
	Catalog   string `yaml:"catalog"`
}

// Theme holds terminal table colors as lipgloss color strings.
type Theme struct {
	HeaderFG  string `yaml:"header-fg"`
	HeaderBG  string `yaml:"header-bg"`
	Order     string `yaml:"order"`
	Value     string `yaml:"value"`
	Separator string `yaml:"separator"`
}

// Config is the merged configuration file.
type Config struct {
	App   App   `yaml:"app"`
	Theme Theme `yaml:"theme"`
}

// AutoOrderEnabled reports whether the order column is auto-created.
func (c Config) AutoOrderEnabled() bool {
	return c.App.AutoOrder == nil || *c.App.AutoOrder
}

// TableColors converts the theme to formatter colors. Empty entries keep
// the formatter defaults.
func (c Config) TableColors() formatter.TableColors {
	var tc formatter.TableColors
	if c.Theme.HeaderFG != "" {
		tc.HeaderFG = lipgloss.Color(c.Theme.HeaderFG)
	}
	if c.Theme.HeaderBG != "" {
		tc.HeaderBG = lipgloss.Color(c.Theme.HeaderBG)
	}
	if c.Theme.Order != "" {
		tc.OrderColor = lipgloss.Color(c.Theme.Order)
	}
	if c.Theme.Value != "" {
		tc.ValueColor = lipgloss.Color(c.Theme.Value)
	}
	if c.Theme.Separator != "" {
		tc.SeparatorColor = lipgloss.Color(c.Theme.Separator)
	}
	return tc
}

// Merge overlays the non-empty fields of override on c.
func (c Config) Merge(override Config) Config {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&c.App.Locale, override.App.Locale)
	setString(&c.App.Output, override.App.Output)
	setString(&c.App.TreeKey, override.App.TreeKey)
	setString(&c.App.RowsKey, override.App.RowsKey)
	setString(&c.App.Indent, override.App.Indent)
	setString(&c.App.Catalog, override.App.Catalog)
	if override.App.AutoOrder != nil {
		v := *override.App.AutoOrder
		c.App.AutoOrder = &v
	}
	setString(&c.Theme.HeaderFG, override.Theme.HeaderFG)
	setString(&c.Theme.HeaderBG, override.Theme.HeaderBG)
	setString(&c.Theme.Order, override.Theme.Order)
	setString(&c.Theme.Value, override.Theme.Value)
	setString(&c.Theme.Separator, override.Theme.Separator)
	return c
}
