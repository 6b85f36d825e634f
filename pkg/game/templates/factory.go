package templates

import (
	"fmt"

	"roomcrawl/pkg/engine/pool"
	"roomcrawl/pkg/engine/world"
)

// BaseEnemyHealth is the health of one hostile occupant before run scaling
const BaseEnemyHealth = 10.0

// Content is the encounter instantiated for one room
type Content struct {
	Template    string
	Coord       world.Coordinate
	Enemies     int
	Remaining   int
	EnemyHealth float64
	Active      bool
}

// Factory instantiates room content from a catalogue and tracks it per coordinate.
// Content objects are recycled through a pool when the dungeon is regenerated.
type Factory struct {
	// HealthMultiplier scales enemy health of newly instantiated content
	HealthMultiplier float64

	catalog  Catalog
	pool     *pool.Pool[*Content]
	contents map[world.Coordinate]*Content
	order    []world.Coordinate
}

// NewFactory creates a factory for the given catalogue
func NewFactory(c Catalog) *Factory {
	f := &Factory{
		catalog:  c,
		pool:     pool.New[*Content](),
		contents: make(map[world.Coordinate]*Content),
	}
	for _, t := range c.All() {
		name := t.Name
		f.pool.Register(name, pool.Prototype[*Content]{
			New: func() *Content { return &Content{Template: name} },
			OnPut: func(ct *Content) {
				*ct = Content{Template: name}
			},
		})
	}
	return f
}

// Catalog returns the catalogue the factory builds from
func (f *Factory) Catalog() Catalog {
	return f.catalog
}

// Instantiate builds the content of the room at c from the named template
func (f *Factory) Instantiate(c world.Coordinate, template string) error {
	t, ok := f.catalog.Lookup(template)
	if !ok {
		return fmt.Errorf("instantiate %v: %w: %q", c, ErrUnknownTemplate, template)
	}
	if _, taken := f.contents[c]; taken {
		return fmt.Errorf("instantiate %v: %w", c, world.ErrOccupied)
	}
	ct, err := f.pool.Get(template)
	if err != nil {
		return err
	}
	ct.Coord = c
	ct.Enemies = t.Enemies
	ct.Remaining = t.Enemies
	ct.EnemyHealth = BaseEnemyHealth * (1 + f.HealthMultiplier)
	ct.Active = false

	f.contents[c] = ct
	f.order = append(f.order, c)
	return nil
}

// Content returns the content instantiated at c
func (f *Factory) Content(c world.Coordinate) (*Content, bool) {
	ct, ok := f.contents[c]
	return ct, ok
}

// Len returns the number of instantiated rooms
func (f *Factory) Len() int {
	return len(f.order)
}

// Activate enables the encounter at c
func (f *Factory) Activate(c world.Coordinate) {
	if ct, ok := f.contents[c]; ok {
		ct.Active = true
	}
}

// Deactivate disables the encounter at c
func (f *Factory) Deactivate(c world.Coordinate) {
	if ct, ok := f.contents[c]; ok {
		ct.Active = false
	}
}

// Remaining returns the number of hostile occupants left at c
func (f *Factory) Remaining(c world.Coordinate) int {
	if ct, ok := f.contents[c]; ok {
		return ct.Remaining
	}
	return 0
}

// Defeat removes one hostile occupant from the active encounter at c.
// It returns the number left and false if nothing could be defeated.
func (f *Factory) Defeat(c world.Coordinate) (int, bool) {
	ct, ok := f.contents[c]
	if !ok || !ct.Active || ct.Remaining == 0 {
		return f.Remaining(c), false
	}
	ct.Remaining--
	return ct.Remaining, true
}

// Reset hands all content back to the pool, ready for a new dungeon
func (f *Factory) Reset() {
	for _, c := range f.order {
		ct := f.contents[c]
		// Every instantiated template is registered, so Put cannot fail
		_ = f.pool.Put(ct.Template, ct)
		delete(f.contents, c)
	}
	f.order = f.order[:0]
}

// Pooled returns how many content objects of a template wait for reuse
func (f *Factory) Pooled(template string) int {
	return f.pool.Free(template)
}
