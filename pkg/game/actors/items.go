package actors

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"roomcrawl/pkg/engine/world"
)

// ItemCategory groups items for the weapon roll
type ItemCategory int

// Item categories
const (
	StatUpgrade ItemCategory = iota
	Weapon
	Consumable
)

// DefaultWeaponChance is the chance that an item choice offers weapons
const DefaultWeaponChance = 0.1

// Item is one pickup that can be offered after a room is cleared
type Item struct {
	Name     string
	Category ItemCategory
	Weight   float64 // higher is more common
}

// DefaultItems is the built-in item pool
var DefaultItems = []Item{
	{Name: "Vital Core", Category: StatUpgrade, Weight: 1},
	{Name: "Heart Plating", Category: StatUpgrade, Weight: 1},
	{Name: "Ammo Drum", Category: StatUpgrade, Weight: 1},
	{Name: "Sharpened Rounds", Category: StatUpgrade, Weight: 0.8},
	{Name: "Hair Trigger", Category: StatUpgrade, Weight: 0.8},
	{Name: "Light Boots", Category: StatUpgrade, Weight: 1},
	{Name: "Dash Coil", Category: StatUpgrade, Weight: 0.6},
	{Name: "Med Kit", Category: Consumable, Weight: 0.5},
	{Name: "Rocket Launcher", Category: Weapon, Weight: 1},
	{Name: "Sword", Category: Weapon, Weight: 1},
	{Name: "Lazer", Category: Weapon, Weight: 0.7},
}

// Choice is the pair of items offered in one room
type Choice struct {
	Left, Right Item
}

// ItemChoices offers one pair of items per cleared room
type ItemChoices struct {
	Items        []Item
	WeaponChance float64
	Owned        mapset.Set[string]

	rng     *rand.Rand
	choices map[world.Coordinate]Choice
	order   []world.Coordinate
}

// NewItemChoices creates a spawner over the default item pool
func NewItemChoices(rng *rand.Rand) *ItemChoices {
	return &ItemChoices{
		Items:        DefaultItems,
		WeaponChance: DefaultWeaponChance,
		Owned:        mapset.New[string](),
		rng:          rng,
		choices:      make(map[world.Coordinate]Choice),
	}
}

// SpawnItemChoice offers two different items in room c. A room gets at most one choice.
func (s *ItemChoices) SpawnItemChoice(c world.Coordinate) {
	if _, ok := s.choices[c]; ok {
		return
	}
	left, ok := s.pick("")
	if !ok {
		return
	}
	right, ok := s.pick(left.Name)
	if !ok {
		return
	}
	s.choices[c] = Choice{Left: left, Right: right}
	s.order = append(s.order, c)
}

// Choice returns the items offered in room c
func (s *ItemChoices) Choice(c world.Coordinate) (Choice, bool) {
	ch, ok := s.choices[c]
	return ch, ok
}

// Take picks one side of the choice in room c; the other item disappears
func (s *ItemChoices) Take(c world.Coordinate, left bool) (Item, bool) {
	ch, ok := s.choices[c]
	if !ok {
		return Item{}, false
	}
	delete(s.choices, c)
	item := ch.Right
	if left {
		item = ch.Left
	}
	if item.Category == Weapon {
		s.Owned.Put(item.Name)
	}
	return item, true
}

// Spawned returns the rooms with an open choice, oldest first
func (s *ItemChoices) Spawned() []world.Coordinate {
	out := make([]world.Coordinate, 0, len(s.choices))
	for _, c := range s.order {
		if _, ok := s.choices[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops every open choice, keeping owned weapons
func (s *ItemChoices) Reset() {
	s.choices = make(map[world.Coordinate]Choice)
	s.order = nil
}

// pick draws one item by weight, skipping exclude and owned weapons.
// Falls back to non-weapons when the weapon roll leaves nothing.
func (s *ItemChoices) pick(exclude string) (Item, bool) {
	rollWeapon := s.rng.Float64() < s.WeaponChance

	available := s.filter(exclude, func(it Item) bool {
		return (it.Category == Weapon) == rollWeapon
	})
	if len(available) == 0 {
		available = s.filter(exclude, func(it Item) bool {
			return it.Category != Weapon
		})
	}
	if len(available) == 0 {
		return Item{}, false
	}

	total := 0.0
	for _, it := range available {
		total += it.Weight
	}
	roll := s.rng.Float64() * total
	acc := 0.0
	for _, it := range available {
		acc += it.Weight
		if roll <= acc {
			return it, true
		}
	}
	return available[len(available)-1], true
}

func (s *ItemChoices) filter(exclude string, keep func(Item) bool) []Item {
	var out []Item
	for _, it := range s.Items {
		if it.Name == exclude {
			continue
		}
		if it.Category == Weapon && s.Owned.Has(it.Name) {
			continue
		}
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
