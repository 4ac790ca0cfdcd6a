// Package fixture loads item trees from JSON or YAML files and generates
// synthetic trees for the demo and for benchmarks.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayn2op/hlist/engine"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for files that are neither JSON nor YAML.
var ErrUnknownFormat = errors.New("unknown fixture format")

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Item is the file representation of an engine.Item. An item with children
// is a folder even when folder is not set.
type Item struct {
	ID        string `json:"id" yaml:"id"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
	Secondary string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Icon      string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Folder    bool   `json:"folder,omitempty" yaml:"folder,omitempty"`
	Disabled  bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Children  []Item `json:"children,omitempty" yaml:"children,omitempty"`
}

type Group struct {
	Title  string `json:"title" yaml:"title"`
	Sticky bool   `json:"sticky,omitempty" yaml:"sticky,omitempty"`
	Items  []Item `json:"items" yaml:"items"`
}

// Document is a fixture file. It holds either items or groups; groups win
// when both are present.
type Document struct {
	Items    []Item   `json:"items,omitempty" yaml:"items,omitempty"`
	Groups   []Group  `json:"groups,omitempty" yaml:"groups,omitempty"`
	Expanded []string `json:"expanded,omitempty" yaml:"expanded,omitempty"`
	Selected []string `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// Load reads a fixture file.
func Load(path string) (Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading fixture: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes a fixture document.
func Parse(data []byte, format Format) (Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return doc, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return doc, fmt.Errorf("parsing %s fixture: %w", format, err)
	}
	return doc, nil
}

// Marshal encodes a document in the given format.
func Marshal(doc Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Grouped reports whether the document describes a grouped tree.
func (d Document) Grouped() bool {
	return len(d.Groups) > 0
}

// EngineItems converts the document's items.
func (d Document) EngineItems() []engine.Item {
	return convertItems(d.Items)
}

// EngineGroups converts the document's groups.
func (d Document) EngineGroups() []engine.Group {
	if len(d.Groups) == 0 {
		return nil
	}
	groups := make([]engine.Group, len(d.Groups))
	for i, g := range d.Groups {
		groups[i] = engine.Group{Title: g.Title, Sticky: g.Sticky, Items: convertItems(g.Items)}
	}
	return groups
}

// Options returns the engine options that build the document's tree with
// its initial expansion and selection.
func (d Document) Options() []engine.Option {
	var opts []engine.Option
	if d.Grouped() {
		opts = append(opts, engine.WithGroups(d.EngineGroups()))
	} else {
		opts = append(opts, engine.WithItems(d.EngineItems()))
	}
	if len(d.Expanded) > 0 {
		opts = append(opts, engine.WithExpanded(d.Expanded...))
	}
	if len(d.Selected) > 0 {
		opts = append(opts, engine.WithSelection(engine.NewSelection(d.Selected...)))
	}
	return opts
}

// Replace swaps the engine's data for the document's tree. Expansion and
// selection stay with the engine.
func (d Document) Replace(e *engine.Engine) {
	if d.Grouped() {
		e.SetGroups(d.EngineGroups())
		return
	}
	e.SetItems(d.EngineItems())
}

func convertItems(items []Item) []engine.Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]engine.Item, len(items))
	for i, item := range items {
		out[i] = engine.Item{
			ID:            item.ID,
			Label:         item.Label,
			SecondaryText: item.Secondary,
			Folder:        item.Folder || len(item.Children) > 0,
			Disabled:      item.Disabled,
			Children:      convertItems(item.Children),
		}
		if item.Icon != "" {
			out[i].Icon = item.Icon
		}
	}
	return out
}
