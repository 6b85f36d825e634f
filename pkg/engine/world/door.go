package world

// DoorState is the state of one of a room's four doors
type DoorState int

// Door states. The zero value is Disabled: a freshly created room has no
// neighbors, so none of its doors lead anywhere.
const (
	// Disabled doors have no neighbor behind them and ignore open/close requests
	Disabled DoorState = iota
	// Closed doors block the player
	Closed
	// Open doors let the player cross into the neighboring room
	Open
)

// String returns the string representation of a door state
func (s DoorState) String() string {
	switch s {
	case Disabled:
		return "Disabled"
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	default:
		return "Unknown"
	}
}

// Door returns the state of the door on the given side of the room
func (r *Room) Door(dir Direction) DoorState {
	if r == nil || !dir.IsValid() {
		return Disabled
	}
	return r.doors[dir]
}

// HasDoor returns true if a neighbor sits behind the door in dir
func (r *Room) HasDoor(dir Direction) bool {
	return r.Door(dir) != Disabled
}

// enableDoor links the door in dir to a neighbor. An already enabled door keeps its state.
func (r *Room) enableDoor(dir Direction) {
	if r.doors[dir] == Disabled {
		r.doors[dir] = Closed
	}
}

// OpenDoor opens the door in dir. Disabled doors are left untouched.
func (r *Room) OpenDoor(dir Direction) {
	if r.HasDoor(dir) {
		r.doors[dir] = Open
	}
}

// CloseDoor closes the door in dir. Disabled doors are left untouched.
func (r *Room) CloseDoor(dir Direction) {
	if r.HasDoor(dir) {
		r.doors[dir] = Closed
	}
}

// OpenAllDoors opens every enabled door
func (r *Room) OpenAllDoors() {
	for _, dir := range AllDirections() {
		r.OpenDoor(dir)
	}
}

// CloseAllDoors closes every enabled door
func (r *Room) CloseAllDoors() {
	for _, dir := range AllDirections() {
		r.CloseDoor(dir)
	}
}

// DoorCount returns how many enabled doors the room has
func (r *Room) DoorCount() int {
	n := 0
	for _, dir := range AllDirections() {
		if r.HasDoor(dir) {
			n++
		}
	}
	return n
}
