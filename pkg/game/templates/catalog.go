// Package templates describes room templates (the static content a room is
// built from) and instantiates encounter content for placed rooms.
package templates

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownTemplate is returned for template names missing from the catalogue
var ErrUnknownTemplate = errors.New("unknown room template")

// Template is one room layout and the hostile occupants it spawns
type Template struct {
	Name    string `yaml:"name"`
	Enemies int    `yaml:"enemies"`
}

// Catalog lists the templates a dungeon is built from
type Catalog struct {
	Start Template   `yaml:"start"`
	Boss  Template   `yaml:"boss"`
	Rooms []Template `yaml:"rooms"`
}

// DefaultCatalog returns the built-in template set
func DefaultCatalog() Catalog {
	return Catalog{
		Start: Template{Name: "start", Enemies: 0},
		Boss:  Template{Name: "boss", Enemies: 1},
		Rooms: []Template{
			{Name: "crossfire", Enemies: 3},
			{Name: "gnat_swarm", Enemies: 5},
			{Name: "lancer_pair", Enemies: 2},
			{Name: "crusher_hall", Enemies: 2},
			{Name: "bomber_den", Enemies: 3},
			{Name: "rocket_nest", Enemies: 4},
		},
	}
}

// ParseCatalog reads a catalogue from YAML
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse templates: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// LoadCatalog reads a catalogue file. An empty path yields the defaults.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read templates: %w", err)
	}
	return ParseCatalog(data)
}

// Validate checks that the catalogue can furnish a dungeon
func (c Catalog) Validate() error {
	if c.Start.Name == "" || c.Boss.Name == "" {
		return errors.New("templates: start and boss templates need names")
	}
	if len(c.Rooms) == 0 {
		return errors.New("templates: at least one regular room template is required")
	}
	seen := make(map[string]bool)
	for _, t := range c.All() {
		if t.Name == "" {
			return errors.New("templates: template without a name")
		}
		if t.Enemies < 0 {
			return fmt.Errorf("templates: %q has a negative enemy count", t.Name)
		}
		if seen[t.Name] {
			return fmt.Errorf("templates: duplicate template %q", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

// All returns every template, start and boss first
func (c Catalog) All() []Template {
	all := make([]Template, 0, len(c.Rooms)+2)
	all = append(all, c.Start, c.Boss)
	return append(all, c.Rooms...)
}

// Lookup finds a template by name
func (c Catalog) Lookup(name string) (Template, bool) {
	for _, t := range c.All() {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// StartTemplate returns the start room template name
func (c Catalog) StartTemplate() string {
	return c.Start.Name
}

// BossTemplate returns the boss room template name
func (c Catalog) BossTemplate() string {
	return c.Boss.Name
}

// RandomTemplate picks a regular room template uniformly
func (c Catalog) RandomTemplate(rng *rand.Rand) string {
	return c.Rooms[rng.Intn(len(c.Rooms))].Name
}
