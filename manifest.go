package hashpages

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Manifest is the TOML description of an application's pages:
//
//	app = "Demo"
//	default = "#home"
//
//	[[page]]
//	id = "home"
//	title = "Home"
//	route = "#home"
//	html = "<h1>Home</h1>"
type Manifest struct {
	App     string         `toml:"app"`
	Default string         `toml:"default"`
	Pages   []ManifestPage `toml:"page"`
}

// ManifestPage is one declarative page entry in a [Manifest].
type ManifestPage struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
	Route string `toml:"route"`
	HTML  string `toml:"html"`
}

// LoadManifest reads and validates a TOML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("hashpages: reading manifest %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("hashpages: manifest %s: %w", path, err)
	}
	return &m, nil
}

// ParseManifest parses a TOML manifest from data.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("hashpages: parsing manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("hashpages: manifest: %w", err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Default == "" {
		return fmt.Errorf("default route is required")
	}
	if len(m.Pages) == 0 {
		return fmt.Errorf("at least one page is required")
	}
	for i, p := range m.Pages {
		if p.ID == "" {
			return fmt.Errorf("page %d has no id", i)
		}
		if p.Route == "" {
			return fmt.Errorf("page %q has no route", p.ID)
		}
	}
	return nil
}

// Registry builds a [Registry] of [StaticPage] entries from the manifest.
// Duplicate routes surface the same construction error as [NewRegistry].
func (m *Manifest) Registry() (*Registry, error) {
	pages := make([]Page, 0, len(m.Pages))
	for _, p := range m.Pages {
		pages = append(pages, StaticPage{
			PageID:    p.ID,
			PageTitle: p.Title,
			PageRoute: p.Route,
			HTML:      p.HTML,
		})
	}
	return NewRegistry(m.Default, pages...)
}
