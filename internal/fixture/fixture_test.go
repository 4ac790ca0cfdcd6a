package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ayn2op/hlist/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonDoc = `{
  "items": [
    {"id": "fruits", "label": "Fruits", "children": [
      {"id": "apple", "label": "Apple"},
      {"id": "pear", "label": "Pear", "secondary": "green", "disabled": true}
    ]},
    {"id": "milk", "label": "Milk", "icon": "🥛"}
  ],
  "expanded": ["fruits"],
  "selected": ["milk"]
}`

const yamlDoc = `
groups:
  - title: Recent
    sticky: true
    items:
      - id: a
      - id: b
  - title: Older
    items:
      - id: c
`

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("tree.JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)
	f, err = FormatOf("tree.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatOf("tree.toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadJSON(t *testing.T) {
	doc, err := Load(write(t, "tree.json", jsonDoc))
	require.NoError(t, err)
	assert.False(t, doc.Grouped())

	e := engine.New(doc.Options()...)
	var ids []string
	for _, row := range e.Rows() {
		ids = append(ids, row.ID)
	}
	assert.Equal(t, []string{"fruits", "apple", "pear", "milk"}, ids)
	assert.True(t, e.IsSelected("milk"))

	pear, _ := e.Row(2)
	assert.True(t, pear.Disabled)
	assert.Equal(t, "green", e.Node(pear).SecondaryText)
	milk, _ := e.Row(3)
	assert.Equal(t, "🥛", e.Node(milk).Icon)
	fruits, _ := e.Row(0)
	assert.True(t, fruits.Folder, "items with children are folders")
}

func TestLoadYAMLGroups(t *testing.T) {
	doc, err := Load(write(t, "tree.yaml", yamlDoc))
	require.NoError(t, err)
	require.True(t, doc.Grouped())

	groups := doc.EngineGroups()
	require.Len(t, groups, 2)
	assert.True(t, groups[0].Sticky)
	assert.Equal(t, "Older", groups[1].Title)

	e := engine.New(doc.Options()...)
	assert.Equal(t, 5, e.Len(), "two headers and three items")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(write(t, "tree.txt", "items: []"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "reading fixture")

	_, err = Load(write(t, "tree.json", "{"))
	assert.ErrorContains(t, err, "parsing json fixture")

	_, err = Parse(nil, Format("toml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestMarshalRoundTrip(t *testing.T) {
	doc := Document{
		Items:    []Item{{ID: "a", Children: []Item{{ID: "a.0", Label: "zero"}}}, {ID: "b", Disabled: true}},
		Expanded: []string{"a"},
	}
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(doc, format)
			require.NoError(t, err)
			got, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}
}

func TestReplace(t *testing.T) {
	doc, err := Parse([]byte(jsonDoc), FormatJSON)
	require.NoError(t, err)
	e := engine.New(doc.Options()...)
	require.Equal(t, 4, e.Len())

	doc.Items = doc.Items[1:]
	doc.Replace(e)
	assert.Equal(t, 1, e.Len())
	assert.False(t, e.Expansion().Has("fruits"), "stale expansion is pruned")
	assert.True(t, e.IsSelected("milk"))

	grouped, err := Parse([]byte(yamlDoc), FormatYAML)
	require.NoError(t, err)
	grouped.Replace(e)
	assert.Equal(t, 5, e.Len())
}
