package actors

import (
	"math"

	"roomcrawl/pkg/engine/world"
)

// CameraStatus is the pan state of the camera
type CameraStatus int

// Camera states
const (
	CameraIdle CameraStatus = iota
	CameraPanning
	CameraArrived
)

// arriveEpsilon is how close the camera must get before it snaps onto its target
const arriveEpsilon = 0.1

// Camera pans between room centers at a fixed speed
type Camera struct {
	Pos    world.Vec2
	Speed  float64 // world units per second
	origin world.Vec2
	target world.Vec2
	status CameraStatus
}

// NewCamera creates a camera centered on room c
func NewCamera(speed float64, c world.Coordinate) *Camera {
	cam := &Camera{Speed: speed}
	cam.SnapTo(c)
	return cam
}

// Status returns the pan state
func (c *Camera) Status() CameraStatus {
	return c.status
}

// BeginPan starts moving one room in dir from the current target
func (c *Camera) BeginPan(dir world.Direction) {
	dx, dy := dir.Delta()
	c.origin = c.target
	c.target = c.target.Add(float64(dx*world.RoomSize), float64(dy*world.RoomSize))
	c.status = CameraPanning
}

// TransitionComplete reports whether the last pan reached its target
func (c *Camera) TransitionComplete() bool {
	return c.status == CameraArrived
}

// CancelPan stops the pan and puts the camera back on the room it started from
func (c *Camera) CancelPan() {
	c.Pos = c.origin
	c.target = c.origin
	c.status = CameraIdle
}

// SnapTo centers the camera on room r immediately
func (c *Camera) SnapTo(r world.Coordinate) {
	c.Pos = r.Center()
	c.origin = c.Pos
	c.target = c.Pos
	c.status = CameraIdle
}

// Update advances the pan by dt seconds
func (c *Camera) Update(dt float64) {
	if c.status != CameraPanning {
		return
	}

	dx := c.target.X - c.Pos.X
	dy := c.target.Y - c.Pos.Y
	dist := math.Hypot(dx, dy)
	step := c.Speed * dt

	if dist-step < arriveEpsilon {
		c.Pos = c.target
		c.origin = c.target
		c.status = CameraArrived
		return
	}
	c.Pos = c.Pos.Add(dx/dist*step, dy/dist*step)
}
