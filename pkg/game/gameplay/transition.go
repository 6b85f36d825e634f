package gameplay

import (
	"context"
	"errors"
	"log"

	"github.com/looplab/fsm"

	"roomcrawl/pkg/engine/world"
)

var (
	// ErrTransitionBusy is returned when a transition is requested while another runs
	ErrTransitionBusy = errors.New("transition already in progress")
	// ErrAlreadyActive is returned when the destination is the active room
	ErrAlreadyActive = errors.New("destination room is already active")
	// ErrNoNeighbor is returned when no room lies behind the entry side
	ErrNoNeighbor = errors.New("no room behind the entry door")
	// ErrNotFromActiveRoom is returned when the room being left is not the active room
	ErrNotFromActiveRoom = errors.New("transition must leave the active room")
	// ErrDoorNotOpen is returned when the door being crossed is not open
	ErrDoorNotOpen = errors.New("door is not open")
	// ErrTransitionTimeout is returned by Tick when the camera never arrived
	ErrTransitionTimeout = errors.New("room transition timed out")
)

// Phase of the transition coordinator
type Phase string

// Transition phases
const (
	PhaseIdle      Phase = "idle"
	PhaseRequested Phase = "requested"
	PhaseRunning   Phase = "running"
	PhaseComplete  Phase = "complete"
)

// Transition events
const (
	eventRequest = "request"
	eventBegin   = "begin"
	eventArrive  = "arrive"
	eventSettle  = "settle"
	eventAbort   = "abort"
)

// Coordinator moves the player from one room to the next: it locks input,
// pans the camera, swaps the active room and toggles doors on both sides.
// Only one transition runs at a time and exactly one room is active.
type Coordinator struct {
	Grid   *world.Grid
	Rooms  *Rooms
	Player Player
	Camera Camera

	// PushDistance is how far the player is moved past the shared edge
	PushDistance float64
	// Timeout is how long to wait for the camera, in seconds
	Timeout float64

	fsm *fsm.FSM

	dest    *world.Room
	prev    *world.Room
	entry   world.Direction
	elapsed float64
	touched bool
}

// NewCoordinator creates an idle coordinator
func NewCoordinator(grid *world.Grid, rooms *Rooms, player Player, camera Camera, pushDistance, timeout float64) *Coordinator {
	return &Coordinator{
		Grid:         grid,
		Rooms:        rooms,
		Player:       player,
		Camera:       camera,
		PushDistance: pushDistance,
		Timeout:      timeout,
		fsm: fsm.NewFSM(
			string(PhaseIdle),
			fsm.Events{
				{Name: eventRequest, Src: []string{string(PhaseIdle)}, Dst: string(PhaseRequested)},
				{Name: eventBegin, Src: []string{string(PhaseRequested)}, Dst: string(PhaseRunning)},
				{Name: eventArrive, Src: []string{string(PhaseRunning)}, Dst: string(PhaseComplete)},
				{Name: eventSettle, Src: []string{string(PhaseComplete)}, Dst: string(PhaseIdle)},
				{Name: eventAbort, Src: []string{string(PhaseRequested), string(PhaseRunning)}, Dst: string(PhaseIdle)},
			},
			fsm.Callbacks{},
		),
	}
}

// Phase returns the current phase
func (c *Coordinator) Phase() Phase {
	return Phase(c.fsm.Current())
}

// Busy reports whether a transition is in progress
func (c *Coordinator) Busy() bool {
	return c.Phase() != PhaseIdle
}

// Destination returns the room being entered, or nil when idle
func (c *Coordinator) Destination() *world.Room {
	return c.dest
}

// Reset makes start the only active room, at the beginning of a level
func (c *Coordinator) Reset(start *world.Room) {
	c.fsm.SetState(string(PhaseIdle))
	c.clear()

	c.Grid.ForEachRoom(func(r *world.Room) {
		r.Active = false
	})
	start.Active = true

	c.Camera.SnapTo(start.Coord)
	c.Player.PlaceAt(start.Coord.Center())
	c.Rooms.EnterStartRoom(start)
}

// Request asks to move the player into dest, coming in through its entry side.
// The room behind entry is the one being left: it must be the active room and
// its door toward dest must be open.
func (c *Coordinator) Request(dest *world.Room, entry world.Direction) error {
	if c.Busy() {
		return ErrTransitionBusy
	}
	if dest == nil || !entry.IsValid() {
		return ErrNoNeighbor
	}
	if dest.Active {
		return ErrAlreadyActive
	}
	prev := c.Grid.Neighbor(dest, entry)
	if prev == nil {
		return ErrNoNeighbor
	}
	if !prev.Active {
		return ErrNotFromActiveRoom
	}
	if prev.Door(entry.Opposite()) != world.Open {
		return ErrDoorNotOpen
	}

	if err := c.fsm.Event(context.Background(), eventRequest); err != nil {
		return err
	}
	c.dest = dest
	c.prev = prev
	c.entry = entry
	return nil
}

// Tick advances the transition by dt seconds. It returns ErrTransitionTimeout
// when the camera failed to arrive in time; the transition is completed anyway.
func (c *Coordinator) Tick(dt float64) error {
	switch c.Phase() {
	case PhaseRequested:
		return c.begin()
	case PhaseRunning:
		c.elapsed += dt
		timedOut := false
		if !c.Camera.TransitionComplete() {
			if c.elapsed < c.Timeout {
				return nil
			}
			log.Printf("Room transition to %v timed out after %.2fs, forcing completion", c.dest.Coord, c.elapsed)
			timedOut = true
		}
		if err := c.fsm.Event(context.Background(), eventArrive); err != nil {
			return err
		}
		if err := c.complete(); err != nil {
			return err
		}
		if timedOut {
			return ErrTransitionTimeout
		}
	case PhaseComplete:
		return c.complete()
	}
	return nil
}

// Abort cancels a pending or running transition. The previous room stays
// active, the camera returns to it, the push into the destination is undone
// and every door of the destination is closed again.
func (c *Coordinator) Abort() bool {
	if err := c.fsm.Event(context.Background(), eventAbort); err != nil {
		return false
	}

	c.Camera.CancelPan()
	c.Camera.SnapTo(c.prev.Coord)
	if c.touched {
		dx, dy := c.entry.Opposite().Delta()
		c.Player.TeleportRelative(-float64(dx)*c.PushDistance, -float64(dy)*c.PushDistance)
		c.dest.CloseAllDoors()
	}
	c.Player.UnlockInput()
	c.clear()
	return true
}

func (c *Coordinator) begin() error {
	c.Player.LockInput()
	c.Rooms.StartEnterRoom(c.dest, c.entry)
	c.touched = true

	travel := c.entry.Opposite()
	c.Camera.BeginPan(travel)
	dx, dy := travel.Delta()
	c.Player.TeleportRelative(float64(dx)*c.PushDistance, float64(dy)*c.PushDistance)

	c.elapsed = 0
	return c.fsm.Event(context.Background(), eventBegin)
}

func (c *Coordinator) complete() error {
	c.Rooms.EndEnterRoom(c.dest, c.entry)
	c.Player.UnlockInput()
	c.dest.Active = true
	c.Rooms.DeactivateRoom(c.prev)

	c.clear()
	return c.fsm.Event(context.Background(), eventSettle)
}

func (c *Coordinator) clear() {
	c.dest = nil
	c.prev = nil
	c.elapsed = 0
	c.touched = false
}
