package resource

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	dir = "assets"
)

//go:embed assets/*.toml
var assets embed.FS

// Table is the process-wide set of templates. It is read-only once loaded.
type Table struct {
	templates map[string]*Template
}

func LoadEmbedded() (*Table, error) {
	return Load(assets, dir)
}

// Load decodes every .toml file in dir. Template names must be unique across files.
func Load(fsys fs.FS, dir string) (*Table, error) {
	t := &Table{
		templates: make(map[string]*Template),
	}

	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		if f.IsDir() || path.Ext(strings.ToLower(f.Name())) != ".toml" {
			continue
		}

		// fs paths always use forward slashes.
		contents, err := fs.ReadFile(fsys, path.Join(dir, f.Name()))
		if err != nil {
			return nil, err
		}
		template, err := Parse(contents)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name(), err)
		}
		if _, ok := t.templates[template.Name]; ok {
			return nil, fmt.Errorf("duplicate template: %s", template.Name)
		}
		t.templates[template.Name] = template
	}
	return t, nil
}

// Parse decodes a single template document.
func Parse(contents []byte) (*Template, error) {
	var raw rawTemplate
	if err := toml.Unmarshal(contents, &raw); err != nil {
		return nil, err
	}
	return raw.build()
}

// NewTable wraps already built templates, mostly for tests.
func NewTable(templates ...*Template) *Table {
	t := &Table{
		templates: make(map[string]*Template, len(templates)),
	}
	for _, template := range templates {
		t.templates[template.Name] = template
	}
	return t
}

func (t *Table) Template(name string) (*Template, bool) {
	template, ok := t.templates[name]
	return template, ok
}

func (t *Table) MustTemplate(name string) *Template {
	template, ok := t.templates[name]
	if !ok {
		panic(fmt.Sprintf("invalid template name: %s", name))
	}
	return template
}

func (t *Table) Names() []string {
	names := make([]string, 0, len(t.templates))
	for name := range t.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
