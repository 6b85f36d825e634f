package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// RoomSymbol returns the single-character symbol for a room
func RoomSymbol(r *world.Room) rune {
	switch {
	case r == nil:
		return ' '
	case r.Active:
		return '@'
	case r.IsStartRoom:
		return 'S'
	case r.IsBossRoom:
		return 'B'
	case r.Cleared:
		return 'x'
	default:
		return 'o'
	}
}

// doorSymbol returns the connector drawn between two rooms
func doorSymbol(ds world.DoorState, horizontal bool) rune {
	switch ds {
	case world.Open:
		if horizontal {
			return '='
		}
		return ':'
	case world.Closed:
		if horizontal {
			return '-'
		}
		return '|'
	default:
		return ' '
	}
}

// MapLines renders the grid as text, top row first. Rooms sit on even
// columns and rows; the characters between them show the door from the
// room on the left (or below).
func MapLines(g *world.Grid) []string {
	if g == nil || g.Len() == 0 {
		return nil
	}
	minI, minJ, maxI, maxJ := g.Bounds()
	width := (maxI-minI)*2 + 1

	var lines []string
	for j := maxJ; j >= minJ; j-- {
		var rooms, doors strings.Builder
		for i := minI; i <= maxI; i++ {
			r, _ := g.TryGet(world.Lattice(i, j))
			rooms.WriteRune(RoomSymbol(r))
			if i < maxI {
				rooms.WriteRune(doorSymbol(r.Door(world.Right), true))
			}
			if j > minJ {
				doors.WriteRune(doorSymbol(r.Door(world.Down), false))
				if i < maxI {
					doors.WriteRune(' ')
				}
			}
		}
		lines = append(lines, padRight(rooms.String(), width))
		if j > minJ {
			lines = append(lines, padRight(doors.String(), width))
		}
	}
	return lines
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// WriteMap writes a debug dump of the current level: metadata, legend,
// the map and one line per room.
func WriteMap(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}

	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "run_id: %s\n", g.Run.RunID)
	fmt.Fprintf(w, "level: %d\n", g.Run.Level)
	fmt.Fprintf(w, "level_seed: %d\n", g.Seed)
	fmt.Fprintf(w, "rooms: %d\n", g.Grid.Len())
	fmt.Fprintf(w, "room_size: %d\n", world.RoomSize)
	if start := g.Grid.StartRoom(); start != nil {
		fmt.Fprintf(w, "start: %v\n", start.Coord)
	}
	if boss := g.Grid.BossRoom(); boss != nil {
		fmt.Fprintf(w, "boss: %v\n", boss.Coord)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "@ active  S start  B boss  x cleared  o uncleared")
	fmt.Fprintln(w, "= : open door  - | closed door")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Map (up is +Y) ---")
	for _, line := range MapLines(g.Grid) {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Rooms ---")
	g.Grid.ForEachRoom(func(r *world.Room) {
		i, j := r.Coord.LatticeIndex()
		doors := r.Doors()
		fmt.Fprintf(w, "room: %d,%d template=%s cleared=%t active=%t doors=up:%v down:%v left:%v right:%v\n",
			i, j, r.Template, r.Cleared, r.Active, doors[world.Up], doors[world.Down], doors[world.Left], doors[world.Right])
	})

	if problems := Check(g.Grid); len(problems) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "--- Problems ---")
		for _, p := range problems {
			fmt.Fprintln(w, p)
		}
	}
	return nil
}

// DumpMapToFile writes the map dump to map.txt in dir and returns its absolute path
func DumpMapToFile(g *state.Game, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMap(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
