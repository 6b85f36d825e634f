package world

import "testing"

func TestDoor_DisabledIgnoresToggles(t *testing.T) {
	g := NewGrid()
	r, _ := g.Place(Lattice(0, 0), Placement{})
	r.OpenDoor(Up)
	r.OpenAllDoors()
	if r.Door(Up) != Disabled {
		t.Errorf("Door(Up) = %v after open on a room without neighbors, want Disabled", r.Door(Up))
	}
	r.CloseAllDoors()
	if r.DoorCount() != 0 {
		t.Errorf("DoorCount() = %d, want 0", r.DoorCount())
	}
}

func TestDoor_OpenCloseEnabled(t *testing.T) {
	g := NewGrid()
	r, _ := g.Place(Lattice(0, 0), Placement{})
	g.Place(Lattice(1, 0), Placement{})

	r.OpenAllDoors()
	if r.Door(Right) != Open {
		t.Errorf("Door(Right) = %v, want Open", r.Door(Right))
	}
	if r.Door(Left) != Disabled {
		t.Errorf("Door(Left) = %v, want Disabled", r.Door(Left))
	}
	r.CloseDoor(Right)
	if r.Door(Right) != Closed {
		t.Errorf("Door(Right) = %v, want Closed", r.Door(Right))
	}
}

func TestDoor_InvalidDirection(t *testing.T) {
	r := &Room{}
	if r.Door(Direction(9)) != Disabled {
		t.Error("Door(invalid) should report Disabled")
	}
	var nilRoom *Room
	if nilRoom.HasDoor(Up) {
		t.Error("nil room must not have doors")
	}
}

func TestMarkCleared_OneWay(t *testing.T) {
	r := &Room{}
	if !r.MarkCleared() {
		t.Error("first MarkCleared() = false, want true")
	}
	if r.MarkCleared() {
		t.Error("second MarkCleared() = true, want false")
	}
	if !r.Cleared {
		t.Error("Cleared = false after MarkCleared")
	}
}

func TestRaycast_ClosedDoorBlocks(t *testing.T) {
	g := NewGrid()
	g.Place(Lattice(0, 0), Placement{})
	g.Place(Lattice(1, 0), Placement{})
	oracle := DoorOracle{Grid: g}

	hit, ok := oracle.Raycast(Vec2{X: 20, Y: 0}, Right, 20)
	if !ok {
		t.Fatal("Raycast reaching the edge returned no hit")
	}
	if hit.Distance != 12 {
		t.Errorf("hit.Distance = %v, want 12", hit.Distance)
	}
	if hit.State != Closed || !hit.Blocking {
		t.Errorf("hit = %+v, want closed blocking door", hit)
	}
}

func TestRaycast_OpenDoorPasses(t *testing.T) {
	g := NewGrid()
	r, _ := g.Place(Lattice(0, 0), Placement{})
	g.Place(Lattice(0, 1), Placement{})
	r.OpenDoor(Up)

	hit, ok := DoorOracle{Grid: g}.Raycast(Vec2{}, Up, 40)
	if !ok {
		t.Fatal("Raycast returned no hit")
	}
	if hit.Blocking || hit.Side != Up || hit.Room != r {
		t.Errorf("hit = %+v, want non-blocking Up edge of origin room", hit)
	}
}

func TestRaycast_WallAndShortRay(t *testing.T) {
	g := NewGrid()
	g.Place(Lattice(0, 0), Placement{})
	oracle := DoorOracle{Grid: g}

	if _, ok := oracle.Raycast(Vec2{}, Left, 5); ok {
		t.Error("short ray inside the room should not hit anything")
	}
	hit, ok := oracle.Raycast(Vec2{}, Left, 100)
	if !ok || hit.State != Disabled || !hit.Blocking {
		t.Errorf("Raycast into a wall = %+v, %v; want blocking disabled edge", hit, ok)
	}
	hit, ok = oracle.Raycast(Vec2{X: 500, Y: 500}, Up, 1)
	if !ok || !hit.Blocking || hit.Room != nil {
		t.Errorf("Raycast from outside = %+v, %v; want immediate block", hit, ok)
	}
}
