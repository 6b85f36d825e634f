package gameplay

import (
	"testing"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/config"
	"roomcrawl/pkg/game/state"
)

type fakePlayer struct {
	pos      world.Vec2
	locked   bool
	healed   float64
	heals    int
	teleport world.Vec2
}

func (p *fakePlayer) LockInput() { p.locked = true }
func (p *fakePlayer) UnlockInput() { p.locked = false }
func (p *fakePlayer) TeleportRelative(dx, dy float64) {
	p.teleport = p.teleport.Add(dx, dy)
	p.pos = p.pos.Add(dx, dy)
}
func (p *fakePlayer) Heal(amount float64) {
	p.healed += amount
	p.heals++
}
func (p *fakePlayer) Position() world.Vec2 { return p.pos }
func (p *fakePlayer) PlaceAt(v world.Vec2) { p.pos = v }
func (p *fakePlayer) Move(dx, dy float64) {
	if !p.locked {
		p.pos = p.pos.Add(dx, dy)
	}
}

type fakeCamera struct {
	pans      []world.Direction
	done      bool
	cancelled int
	snapped   world.Coordinate
}

func (c *fakeCamera) BeginPan(dir world.Direction) {
	c.pans = append(c.pans, dir)
	c.done = false
}
func (c *fakeCamera) TransitionComplete() bool { return c.done }
func (c *fakeCamera) CancelPan() { c.cancelled++ }
func (c *fakeCamera) SnapTo(co world.Coordinate) { c.snapped = co }

type fakeItems struct {
	spawned []world.Coordinate
}

func (f *fakeItems) SpawnItemChoice(c world.Coordinate) {
	f.spawned = append(f.spawned, c)
}

type fakeContent struct {
	remaining map[world.Coordinate]int
	active    map[world.Coordinate]bool
}

func newFakeContent() *fakeContent {
	return &fakeContent{
		remaining: make(map[world.Coordinate]int),
		active:    make(map[world.Coordinate]bool),
	}
}

func (f *fakeContent) Activate(c world.Coordinate) { f.active[c] = true }
func (f *fakeContent) Deactivate(c world.Coordinate) { f.active[c] = false }
func (f *fakeContent) Remaining(c world.Coordinate) int { return f.remaining[c] }
func (f *fakeContent) Defeat(c world.Coordinate) (int, bool) {
	if !f.active[c] || f.remaining[c] == 0 {
		return f.remaining[c], false
	}
	f.remaining[c]--
	return f.remaining[c], true
}

// fixture is a three room corridor: start (0,0), fight room (1,0), boss (2,0)
type fixture struct {
	grid    *world.Grid
	start   *world.Room
	fight   *world.Room
	boss    *world.Room
	game    *state.Game
	player  *fakePlayer
	camera  *fakeCamera
	items   *fakeItems
	content *fakeContent
	rooms   *Rooms
	coord   *Coordinator
	bossHit int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		grid:    world.NewGrid(),
		player:  &fakePlayer{},
		camera:  &fakeCamera{},
		items:   &fakeItems{},
		content: newFakeContent(),
	}
	var err error
	if f.start, err = f.grid.Place(world.Lattice(0, 0), world.Placement{Template: "start", StartRoom: true}); err != nil {
		t.Fatal(err)
	}
	if f.fight, err = f.grid.Place(world.Lattice(1, 0), world.Placement{Template: "crossfire"}); err != nil {
		t.Fatal(err)
	}
	if f.boss, err = f.grid.Place(world.Lattice(2, 0), world.Placement{Template: "boss", BossRoom: true}); err != nil {
		t.Fatal(err)
	}
	f.grid.Freeze()
	f.content.remaining[f.fight.Coord] = 2
	f.content.remaining[f.boss.Coord] = 1

	f.game = state.NewGame(state.NewRunState(config.Default().Progress))
	f.game.Grid = f.grid
	f.rooms = &Rooms{
		Game:          f.game,
		Player:        f.player,
		Items:         f.items,
		Content:       f.content,
		HealAmount:    30,
		OnBossCleared: func() { f.bossHit++ },
	}
	f.coord = NewCoordinator(f.grid, f.rooms, f.player, f.camera, 10, 5)
	return f
}

// activeCount returns the number of rooms marked active
func activeCount(g *world.Grid) int {
	n := 0
	g.ForEachRoom(func(r *world.Room) {
		if r.Active {
			n++
		}
	})
	return n
}
