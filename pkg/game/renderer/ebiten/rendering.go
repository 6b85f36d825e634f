package ebiten

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"roomcrawl/pkg/engine/world"
)

// toScreen converts a world position to screen pixels, centered on the camera.
// World Y grows up, screen Y grows down.
func (e *EbitenRenderer) toScreen(v world.Vec2) (float32, float32) {
	cam := e.session.Camera.Pos
	x := float64(screenWidth)/2 + (v.X-cam.X)*pixelsPerUnit
	y := float64(screenHeight-panelHeight)/2 - (v.Y-cam.Y)*pixelsPerUnit
	return float32(x), float32(y)
}

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := e.session.Game
	if g.Grid == nil {
		return
	}
	g.Grid.ForEachRoom(func(r *world.Room) {
		e.drawRoom(screen, r)
	})
	e.drawItems(screen)
	e.drawPlayer(screen)
	e.drawPanel(screen)
}

func roomColor(r *world.Room) color.Color {
	switch {
	case r.Active:
		return colorRoomActive
	case r.IsBossRoom:
		return colorRoomBoss
	case r.IsStartRoom:
		return colorRoomStart
	case r.Cleared:
		return colorRoomCleared
	default:
		return colorRoom
	}
}

func (e *EbitenRenderer) drawRoom(screen *ebiten.Image, r *world.Room) {
	half := float64(world.RoomSize) / 2
	center := r.Coord.Center()
	x, y := e.toScreen(center.Add(-half, half))
	size := float32(world.RoomSize * pixelsPerUnit)

	vector.DrawFilledRect(screen, x, y, size, size, colorWall, false)
	vector.DrawFilledRect(screen, x+wallThickness, y+wallThickness, size-2*wallThickness, size-2*wallThickness, roomColor(r), false)

	for _, dir := range world.AllDirections() {
		if !r.HasDoor(dir) {
			continue
		}
		e.drawDoor(screen, r, dir)
	}

	if remaining := e.session.Content.Remaining(r.Coord); remaining > 0 && !r.Cleared {
		e.drawEnemies(screen, center, remaining)
	}
}

func (e *EbitenRenderer) drawDoor(screen *ebiten.Image, r *world.Room, dir world.Direction) {
	clr := colorDoorClosed
	if r.Door(dir) == world.Open {
		clr = colorDoorOpen
	}

	half := float64(world.RoomSize) / 2
	dx, dy := dir.Delta()
	edge := r.Coord.Center().Add(float64(dx)*half, float64(dy)*half)
	x, y := e.toScreen(edge)
	length := float32(doorWidth * pixelsPerUnit)

	if dir.IsHorizontal() {
		vector.DrawFilledRect(screen, x-doorThickness/2, y-length/2, doorThickness, length, clr, false)
		return
	}
	vector.DrawFilledRect(screen, x-length/2, y-doorThickness/2, length, doorThickness, clr, false)
}

// drawEnemies draws one marker per hostile occupant in a row across the room center
func (e *EbitenRenderer) drawEnemies(screen *ebiten.Image, center world.Vec2, count int) {
	spacing := float64(enemySize * 2)
	start := center.Add(-spacing*float64(count-1)/2, 0)
	size := float32(enemySize * pixelsPerUnit)
	for i := 0; i < count; i++ {
		x, y := e.toScreen(start.Add(spacing*float64(i), 0))
		vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, colorEnemy, false)
	}
}

func (e *EbitenRenderer) drawItems(screen *ebiten.Image) {
	size := float32(enemySize * pixelsPerUnit)
	for _, c := range e.session.Items.Spawned() {
		center := c.Center()
		for _, offset := range []float64{-12, 12} {
			x, y := e.toScreen(center.Add(offset, -16))
			vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, colorItem, false)
		}
	}
}

func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image) {
	x, y := e.toScreen(e.session.Player.Position())
	size := float32(playerSize * pixelsPerUnit)
	vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, colorPlayer, false)
}

func (e *EbitenRenderer) drawPanel(screen *ebiten.Image) {
	top := float32(screenHeight - panelHeight)
	vector.DrawFilledRect(screen, 0, top, screenWidth, panelHeight, colorPanel, false)

	s := e.session
	run := s.Game.Run
	status := gotext.Get("Level %d  HP %.0f/%.0f  Rooms %d", run.Level, s.Player.Health, s.Player.MaxHealth, s.Game.Grid.Len())
	if s.Dead() {
		status += "  " + gotext.Get("DEAD - press R")
	} else if s.SceneChangePending() {
		status += "  " + gotext.Get("Descending...")
	}
	if room := s.ActiveRoom(); room != nil {
		if ct, ok := s.Content.Content(room.Coord); ok && ct.Remaining > 0 {
			status += "\n" + gotext.Get("Enemies %d/%d  %.0f HP each", ct.Remaining, ct.Enemies, ct.EnemyHealth)
		}
		if choice, ok := s.Items.Choice(room.Coord); ok {
			status += "\n" + gotext.Get("Q: %s   E: %s", choice.Left.Name, choice.Right.Name)
		}
	}

	var b strings.Builder
	b.WriteString(status)
	b.WriteString("\n")
	for _, msg := range s.Game.Messages {
		fmt.Fprintln(&b, msg)
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 4, int(top)+2)
}
