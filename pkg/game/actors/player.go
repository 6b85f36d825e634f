// Package actors holds the headless player, the room-to-room camera and the
// item choice spawner that the gameplay session drives.
package actors

import (
	"roomcrawl/pkg/engine/world"
)

// Player is the player agent: a position, health and an input lock
type Player struct {
	Pos       world.Vec2
	Health    float64
	MaxHealth float64
	Speed     float64 // world units per second

	locked bool
}

// NewPlayer creates a player at full health in the middle of the origin room
func NewPlayer(maxHealth, speed float64) *Player {
	return &Player{
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Speed:     speed,
	}
}

// LockInput stops the player from moving until UnlockInput
func (p *Player) LockInput() {
	p.locked = true
}

// UnlockInput lets the player move again
func (p *Player) UnlockInput() {
	p.locked = false
}

// InputLocked reports whether movement input is ignored
func (p *Player) InputLocked() bool {
	return p.locked
}

// TeleportRelative shifts the player regardless of the input lock
func (p *Player) TeleportRelative(dx, dy float64) {
	p.Pos = p.Pos.Add(dx, dy)
}

// Heal restores health up to MaxHealth
func (p *Player) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	p.Health = min(p.Health+amount, p.MaxHealth)
}

// Damage removes health and reports whether the player died
func (p *Player) Damage(amount float64) bool {
	if amount > 0 {
		p.Health = max(p.Health-amount, 0)
	}
	return p.Health == 0
}

// Alive reports whether the player has health left
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Position returns the player position
func (p *Player) Position() world.Vec2 {
	return p.Pos
}

// PlaceAt moves the player to v
func (p *Player) PlaceAt(v world.Vec2) {
	p.Pos = v
}

// Move shifts the player by (dx, dy). Ignored while input is locked.
func (p *Player) Move(dx, dy float64) {
	if p.locked {
		return
	}
	p.Pos = p.Pos.Add(dx, dy)
}
