// Package config loads and saves the hlist configuration.
//
// The file lives at $XDG_CONFIG_HOME/hlist/config.yaml, falling back to
// ~/.config/hlist/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ayn2op/hlist"
	"github.com/ayn2op/hlist/engine"
	"github.com/ayn2op/hlist/help"
	"github.com/ayn2op/hlist/keybind"
	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// RowHeight is either a fixed number of lines or "auto".
type RowHeight struct {
	Auto  bool
	Lines int
}

func (h RowHeight) MarshalYAML() (any, error) {
	if h.Auto {
		return "auto", nil
	}
	return h.Lines, nil
}

func (h *RowHeight) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("row_height: expected integer or \"auto\", line %d", value.Line)
	}
	if strings.EqualFold(value.Value, "auto") {
		*h = RowHeight{Auto: true}
		return nil
	}
	lines, err := strconv.Atoi(value.Value)
	if err != nil {
		return fmt.Errorf("row_height: expected integer or \"auto\", got %q", value.Value)
	}
	*h = RowHeight{Lines: lines}
	return nil
}

// ListConfig configures the list engine and its primitive.
type ListConfig struct {
	RowHeight          RowHeight `yaml:"row_height"`
	EstimatedRowHeight int       `yaml:"estimated_row_height,omitempty"`
	Overscan           int       `yaml:"overscan"`
	PageSize           int       `yaml:"page_size"` // 0 disables pagination
	Selection          string    `yaml:"selection"` // none, single, multi
	Checkboxes         bool      `yaml:"checkboxes,omitempty"`
	Indent             int       `yaml:"indent,omitempty"`
	Border             string    `yaml:"border,omitempty"`     // none, plain, round, thick, double
	ScrollBar          string    `yaml:"scroll_bar,omitempty"` // minimal, legacy, unicode, none
}

// ThemeConfig overrides colors of hlist.Styles. Values are tcell color names
// or #rrggbb.
type ThemeConfig struct {
	Background string `yaml:"background,omitempty"`
	Cursor     string `yaml:"cursor,omitempty"`
	Selected   string `yaml:"selected,omitempty"`
	Border     string `yaml:"border,omitempty"`
	Text       string `yaml:"text,omitempty"`
	Secondary  string `yaml:"secondary,omitempty"`
	Header     string `yaml:"header,omitempty"`
	Title      string `yaml:"title,omitempty"`
}

// HelpConfig configures the help bar and the full help overlay.
type HelpConfig struct {
	ShortSeparator string `yaml:"short_separator"`
	FullSeparator  string `yaml:"full_separator"`
}

// Config is the top-level configuration.
type Config struct {
	List ListConfig `yaml:"list"`
	// Keys maps action names (see KeyActions) to key names.
	Keys  map[string][]string `yaml:"keys,omitempty"`
	Theme ThemeConfig         `yaml:"theme,omitempty"`
	Help  HelpConfig          `yaml:"help"`
}

// DefaultConfig returns a Config with the defaults of the engine.
func DefaultConfig() Config {
	return Config{
		List: ListConfig{
			RowHeight:          RowHeight{Lines: 1},
			EstimatedRowHeight: 1,
			Overscan:           3,
			Selection:          "single",
			Indent:             2,
			Border:             "round",
			ScrollBar:          "minimal",
		},
		Help: HelpConfig{
			ShortSeparator: " • ",
			FullSeparator:  "    ",
		},
	}
}

// ConfigDir returns the XDG config directory for hlist.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "hlist")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hlist")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	cfg.List.normalize()
	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return errors.New("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// normalize clamps values the same way the engine does.
func (c *ListConfig) normalize() {
	if !c.RowHeight.Auto {
		c.RowHeight.Lines = max(c.RowHeight.Lines, 1)
	}
	c.EstimatedRowHeight = max(c.EstimatedRowHeight, 1)
	c.Overscan = max(c.Overscan, 0)
	c.PageSize = max(c.PageSize, 0)
	c.Indent = max(c.Indent, 0)
	c.Selection = strings.ToLower(c.Selection)
	if _, err := engine.ParseSelectionMode(c.Selection); err != nil {
		c.Selection = "single"
	}
}

// EngineOptions returns the engine options this configuration describes.
func (c ListConfig) EngineOptions() []engine.Option {
	mode, err := engine.ParseSelectionMode(strings.ToLower(c.Selection))
	if err != nil {
		mode = engine.SelectionSingle
	}
	opts := []engine.Option{
		engine.WithOverscan(c.Overscan),
		engine.WithSelectionMode(mode),
		engine.WithCheckboxes(c.Checkboxes),
	}
	if c.RowHeight.Auto {
		opts = append(opts, engine.WithAutoRowHeight(c.EstimatedRowHeight))
	} else {
		opts = append(opts, engine.WithRowHeight(c.RowHeight.Lines))
	}
	if c.PageSize > 0 {
		opts = append(opts, engine.WithPagination(c.PageSize, 1))
	}
	return opts
}

// KeyActions returns the configurable key actions of a TreeList keyed by the
// names used in the keys section.
func KeyActions(km *hlist.TreeListKeyMap) map[string]*keybind.Keybind {
	return map[string]*keybind.Keybind{
		"up":           &km.Up,
		"down":         &km.Down,
		"extend_up":    &km.ExtendUp,
		"extend_down":  &km.ExtendDown,
		"page_up":      &km.PageUp,
		"page_down":    &km.PageDown,
		"home":         &km.Home,
		"end":          &km.End,
		"activate":     &km.Activate,
		"check":        &km.Check,
		"collapse":     &km.Collapse,
		"expand":       &km.Expand,
		"expand_all":   &km.ExpandAll,
		"collapse_all": &km.CollapseAll,
		"prev_page":    &km.PrevPage,
		"next_page":    &km.NextPage,
	}
}

// Apply configures a TreeList. Everything valid is applied; the returned
// error names the key actions, borders, glyph sets and colors that were
// ignored.
func (c Config) Apply(l *hlist.TreeList) error {
	var errs []error

	actions := KeyActions(&l.KeyMap)
	names := make([]string, 0, len(c.Keys))
	for name := range c.Keys {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		kb, ok := actions[name]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown key action %q", name))
			continue
		}
		keys := c.Keys[name]
		kb.SetKeys(keys...)
		kb.SetHelp(strings.Join(kb.Keys(), "/"), kb.Help().Desc)
	}

	l.SetIndent(c.List.Indent)

	switch c.List.Border {
	case "none":
		l.SetBorders(hlist.BordersNone)
	default:
		set, ok := hlist.ParseBorderSet(c.List.Border)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown border %q", c.List.Border))
			set = hlist.BorderSetPlain()
		}
		l.SetBorders(hlist.BordersAll)
		l.SetBorderSet(set)
	}

	switch c.List.ScrollBar {
	case "none":
		l.SetShowScrollBar(false)
	default:
		glyphs, ok := hlist.ParseGlyphSet(c.List.ScrollBar)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown scroll bar glyph set %q", c.List.ScrollBar))
			glyphs = hlist.MinimalGlyphSet()
		}
		l.ScrollBar().SetGlyphSet(glyphs)
	}

	theme := hlist.Styles
	if err := c.Theme.apply(&theme); err != nil {
		errs = append(errs, err)
	}
	base := tcell.StyleDefault.Background(theme.PrimitiveBackgroundColor)
	l.Styles = hlist.NewTreeListStyles(theme)
	l.SetBorderStyle(base.Foreground(theme.BorderColor))
	l.SetTitleStyle(base.Foreground(theme.TitleColor))
	l.SetFooterStyle(base.Foreground(theme.SecondaryTextColor))
	l.SetBackgroundColor(theme.PrimitiveBackgroundColor)
	l.ScrollBar().
		SetThumbStyle(base.Foreground(theme.PrimaryTextColor)).
		SetTrackStyle(base.Foreground(theme.BorderColor).Dim(true)).
		SetArrowStyle(base.Foreground(theme.BorderColor).Dim(true))
	return errors.Join(errs...)
}

// ApplyHelp configures a help primitive with the help separators and the
// theme colors. Invalid colors are reported by Apply and left at their
// defaults here.
func (c Config) ApplyHelp(h *help.Help) {
	theme := hlist.Styles
	_ = c.Theme.apply(&theme)

	key := tcell.StyleDefault.Foreground(theme.SecondaryTextColor)
	desc := tcell.StyleDefault.Foreground(theme.PrimaryTextColor)
	sep := tcell.StyleDefault.Foreground(theme.BorderColor).Dim(true)
	h.SetShortSeparator(c.Help.ShortSeparator).
		SetFullSeparator(c.Help.FullSeparator).
		SetStyles(help.Styles{
			ShortKeyStyle:       key,
			ShortDescStyle:      desc,
			ShortSeparatorStyle: sep,
			FullKeyStyle:        key,
			FullDescStyle:       desc,
			FullSeparatorStyle:  sep,
			EllipsisStyle:       sep,
		})
}

// apply writes the colors set in t into theme.
func (t ThemeConfig) apply(theme *hlist.Theme) error {
	var errs []error
	set := func(name, value string, dst *tcell.Color) {
		if value == "" {
			return
		}
		color := tcell.GetColor(value)
		if color == tcell.ColorDefault && !strings.EqualFold(value, "default") {
			errs = append(errs, fmt.Errorf("unknown %s color %q", name, value))
			return
		}
		*dst = color
	}
	set("background", t.Background, &theme.PrimitiveBackgroundColor)
	set("cursor", t.Cursor, &theme.ContrastBackgroundColor)
	set("selected", t.Selected, &theme.SelectedBackgroundColor)
	set("border", t.Border, &theme.BorderColor)
	set("text", t.Text, &theme.PrimaryTextColor)
	set("secondary", t.Secondary, &theme.SecondaryTextColor)
	set("header", t.Header, &theme.TertiaryTextColor)
	set("title", t.Title, &theme.TitleColor)
	return errors.Join(errs...)
}
