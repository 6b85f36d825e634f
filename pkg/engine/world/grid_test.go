package world

import (
	"errors"
	"testing"
)

// placeAll places plain rooms at the given lattice cells, failing the test on any error.
func placeAll(t *testing.T, g *Grid, cells ...[2]int) {
	t.Helper()
	for _, c := range cells {
		if _, err := g.Place(Lattice(c[0], c[1]), Placement{}); err != nil {
			t.Fatalf("Place(%v) error: %v", c, err)
		}
	}
}

func TestStep_MovesOneRoom(t *testing.T) {
	origin := Coordinate{}
	cases := map[Direction]Coordinate{
		Up:    {0, RoomSize},
		Down:  {0, -RoomSize},
		Left:  {-RoomSize, 0},
		Right: {RoomSize, 0},
	}
	for dir, want := range cases {
		if got := Step(origin, dir); got != want {
			t.Errorf("Step(origin, %v) = %v, want %v", dir, got, want)
		}
	}
}

func TestDirection_OppositeRoundTrip(t *testing.T) {
	for _, dir := range AllDirections() {
		if dir.Opposite().Opposite() != dir {
			t.Errorf("%v.Opposite().Opposite() = %v", dir, dir.Opposite().Opposite())
		}
		if Step(Step(Coordinate{}, dir), dir.Opposite()) != (Coordinate{}) {
			t.Errorf("stepping %v then back does not return to origin", dir)
		}
	}
}

func TestPlace_TryGetRoundTrip(t *testing.T) {
	g := NewGrid()
	c := Lattice(2, -3)
	r, err := g.Place(c, Placement{Template: "arena"})
	if err != nil {
		t.Fatalf("Place error: %v", err)
	}
	got, ok := g.TryGet(c)
	if !ok || got != r {
		t.Fatalf("TryGet(%v) = %v, %v; want placed room", c, got, ok)
	}
	if got.Coord != c {
		t.Errorf("room.Coord = %v, want %v", got.Coord, c)
	}
	if got.Template != "arena" {
		t.Errorf("room.Template = %q, want %q", got.Template, "arena")
	}
}

func TestPlace_RejectsOccupied(t *testing.T) {
	g := NewGrid()
	first, _ := g.Place(Lattice(0, 0), Placement{Template: "a"})
	_, err := g.Place(Lattice(0, 0), Placement{Template: "b"})
	if !errors.Is(err, ErrOccupied) {
		t.Fatalf("second Place error = %v, want ErrOccupied", err)
	}
	if got, _ := g.TryGet(Lattice(0, 0)); got != first || got.Template != "a" {
		t.Error("occupied coordinate was overwritten")
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestPlace_RejectsStartAndBoss(t *testing.T) {
	g := NewGrid()
	_, err := g.Place(Lattice(0, 0), Placement{StartRoom: true, BossRoom: true})
	if !errors.Is(err, ErrConflictingFlags) {
		t.Errorf("Place error = %v, want ErrConflictingFlags", err)
	}
}

func TestPlace_RejectsUnaligned(t *testing.T) {
	g := NewGrid()
	_, err := g.Place(Coordinate{X: 10, Y: 0}, Placement{})
	if !errors.Is(err, ErrUnaligned) {
		t.Errorf("Place error = %v, want ErrUnaligned", err)
	}
}

func TestPlace_FrozenGrid(t *testing.T) {
	g := NewGrid()
	g.Freeze()
	if _, err := g.Place(Lattice(0, 0), Placement{}); !errors.Is(err, ErrFrozen) {
		t.Errorf("Place on frozen grid error = %v, want ErrFrozen", err)
	}
}

func TestPlace_LinksNeighborsSymmetrically(t *testing.T) {
	g := NewGrid()
	placeAll(t, g, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1})

	origin, _ := g.TryGet(Lattice(0, 0))
	right, _ := g.TryGet(Lattice(1, 0))
	up, _ := g.TryGet(Lattice(0, 1))

	if origin.Door(Right) != Closed || right.Door(Left) != Closed {
		t.Errorf("origin/right shared doors = %v/%v, want Closed/Closed", origin.Door(Right), right.Door(Left))
	}
	if origin.Door(Up) != Closed || up.Door(Down) != Closed {
		t.Errorf("origin/up shared doors = %v/%v, want Closed/Closed", origin.Door(Up), up.Door(Down))
	}
	if origin.Door(Left) != Disabled || origin.Door(Down) != Disabled {
		t.Error("doors without neighbors must stay Disabled")
	}
	// (1,0) and (0,1) are diagonal: no link
	if right.Door(Up) != Disabled {
		t.Errorf("right.Door(Up) = %v, want Disabled", right.Door(Up))
	}
	if g.Neighbor(origin, Right) != right || g.Neighbor(right, Left) != origin {
		t.Error("Neighbor lookup does not resolve linked rooms")
	}
	if msg := g.CheckDoors(); msg != "" {
		t.Error(msg)
	}
}

func TestPlace_LinkKeepsOpenDoorOpen(t *testing.T) {
	g := NewGrid()
	placeAll(t, g, [2]int{0, 0}, [2]int{1, 0})
	origin, _ := g.TryGet(Lattice(0, 0))
	origin.OpenDoor(Right)
	// Placing another neighbor must not reset existing links
	placeAll(t, g, [2]int{0, 1})
	if origin.Door(Right) != Open {
		t.Errorf("origin.Door(Right) = %v, want Open", origin.Door(Right))
	}
}

func TestIsSurrounded(t *testing.T) {
	g := NewGrid()
	placeAll(t, g, [2]int{0, 1}, [2]int{0, -1}, [2]int{-1, 0})
	if g.IsSurrounded(Lattice(0, 0)) {
		t.Error("IsSurrounded with three neighbors = true, want false")
	}
	placeAll(t, g, [2]int{1, 0})
	if !g.IsSurrounded(Lattice(0, 0)) {
		t.Error("IsSurrounded with four neighbors = false, want true")
	}
}

func TestOccupiedSides(t *testing.T) {
	g := NewGrid()
	placeAll(t, g, [2]int{0, 1}, [2]int{1, 0}, [2]int{5, 5})
	sides := g.OccupiedSides(Lattice(0, 0))
	if sides.Size() != 2 || !sides.Has(Up) || !sides.Has(Right) {
		t.Errorf("OccupiedSides(origin) has %d sides, want Up and Right", sides.Size())
	}
	if g.OccupiedSides(Lattice(-5, -5)).Size() != 0 {
		t.Error("isolated coordinate reports occupied sides")
	}
}

func TestWouldSurround(t *testing.T) {
	g := NewGrid()
	placeAll(t, g, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, -1}, [2]int{-1, 0})

	if !g.WouldSurround(Lattice(0, 0), Right) {
		t.Error("WouldSurround(center, Right) = false, want true (only right is free)")
	}
	if g.WouldSurround(Lattice(0, 0), Up) {
		t.Error("WouldSurround(center, Up) = true, want false (right still free)")
	}
	// Empty coordinates are never surrounded
	if g.WouldSurround(Lattice(5, 5), Up) {
		t.Error("WouldSurround(empty, Up) = true, want false")
	}
}

func TestGrid_ValidateAndSpecialRooms(t *testing.T) {
	g := NewGrid()
	if msg := g.Validate(); msg == "" {
		t.Error("Validate on empty grid = \"\", want error")
	}
	start, _ := g.Place(Lattice(0, 0), Placement{StartRoom: true})
	boss, _ := g.Place(Lattice(1, 0), Placement{BossRoom: true})
	if g.StartRoom() != start || g.BossRoom() != boss {
		t.Fatal("StartRoom/BossRoom not recorded")
	}
	if msg := g.Validate(); msg != "" {
		t.Errorf("Validate() = %q, want \"\"", msg)
	}
}

func TestGrid_Bounds(t *testing.T) {
	g := NewGrid()
	placeAll(t, g, [2]int{-2, 1}, [2]int{3, -1}, [2]int{0, 4})
	minI, minJ, maxI, maxJ := g.Bounds()
	if minI != -2 || minJ != -1 || maxI != 3 || maxJ != 4 {
		t.Errorf("Bounds() = %d,%d,%d,%d; want -2,-1,3,4", minI, minJ, maxI, maxJ)
	}
}

func TestRoomAt_SnapsToContainingRoom(t *testing.T) {
	half := float64(RoomSize) / 2
	cases := []struct {
		v    Vec2
		want Coordinate
	}{
		{Vec2{0, 0}, Lattice(0, 0)},
		{Vec2{half - 0.1, 0}, Lattice(0, 0)},
		{Vec2{half + 0.1, 0}, Lattice(1, 0)},
		{Vec2{-half - 0.1, 0}, Lattice(-1, 0)},
		{Vec2{0, -RoomSize}, Lattice(0, -1)},
	}
	for _, tc := range cases {
		if got := RoomAt(tc.v); got != tc.want {
			t.Errorf("RoomAt(%v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}
