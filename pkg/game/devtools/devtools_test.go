package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/config"
	"roomcrawl/pkg/game/state"
)

// lShape builds start (0,0), (1,0), boss (1,1)
func lShape(t *testing.T) *world.Grid {
	t.Helper()
	g := world.NewGrid()
	for _, p := range []struct {
		i, j int
		pl   world.Placement
	}{
		{0, 0, world.Placement{StartRoom: true}},
		{1, 0, world.Placement{Template: "crossfire"}},
		{1, 1, world.Placement{BossRoom: true}},
	} {
		if _, err := g.Place(world.Lattice(p.i, p.j), p.pl); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestReachable(t *testing.T) {
	g := lShape(t)
	seen := Reachable(g, world.Lattice(0, 0))
	if seen.Size() != 3 {
		t.Errorf("Reachable size = %d, want 3", seen.Size())
	}
	if Reachable(g, world.Lattice(9, 9)).Size() != 0 {
		t.Error("Reachable from an empty coordinate found rooms")
	}
}

func TestCheck_CleanGrid(t *testing.T) {
	if problems := Check(lShape(t)); len(problems) != 0 {
		t.Errorf("Check() = %v, want none", problems)
	}
}

func TestCheck_ReportsSurroundedAndDisconnected(t *testing.T) {
	g := world.NewGrid()
	g.Place(world.Lattice(0, 0), world.Placement{StartRoom: true})
	for _, c := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		g.Place(world.Lattice(c[0], c[1]), world.Placement{})
	}
	g.Place(world.Lattice(5, 5), world.Placement{BossRoom: true})

	problems := Check(g)
	joined := strings.Join(problems, "\n")
	if !strings.Contains(joined, "surrounded") {
		t.Errorf("Check() = %v, want a surrounded room", problems)
	}
	if !strings.Contains(joined, "unreachable") {
		t.Errorf("Check() = %v, want an unreachable boss", problems)
	}
}

func TestMapLines(t *testing.T) {
	g := lShape(t)
	start, _ := g.TryGet(world.Lattice(0, 0))
	start.Active = true
	start.OpenAllDoors()

	got := MapLines(g)
	want := []string{
		"  B",
		"  |",
		"@=o",
	}
	if len(got) != len(want) {
		t.Fatalf("MapLines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDumpMapToFile(t *testing.T) {
	game := state.NewGame(state.NewRunState(config.Default().Progress))
	game.Grid = lShape(t)
	game.Seed = 42

	path, err := DumpMapToFile(game, t.TempDir())
	if err != nil {
		t.Fatalf("DumpMapToFile error: %v", err)
	}
	if filepath.Base(path) != "map.txt" {
		t.Errorf("path = %q, want map.txt", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"level_seed: 42", "room: 1,0 template=crossfire", "--- Map (up is +Y) ---"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("dump missing %q", want)
		}
	}
	if bytes.Contains(data, []byte("--- Problems ---")) {
		t.Error("clean grid reported problems")
	}
}

func TestWriteMap_NoGrid(t *testing.T) {
	game := state.NewGame(state.NewRunState(config.Default().Progress))
	if err := WriteMap(&bytes.Buffer{}, game); err == nil {
		t.Error("WriteMap without grid succeeded")
	}
}
