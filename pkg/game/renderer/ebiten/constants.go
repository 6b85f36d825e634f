// Package ebiten provides an Ebiten-based 2D viewer for a running session.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground  = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorRoom        = color.RGBA{60, 60, 80, 255}    // Uncleared room floor
	colorRoomCleared = color.RGBA{40, 80, 40, 255}    // Cleared room floor
	colorRoomActive  = color.RGBA{90, 90, 130, 255}   // Room the player is in
	colorRoomStart   = color.RGBA{50, 70, 120, 255}   // Start room floor
	colorRoomBoss    = color.RGBA{110, 35, 35, 255}   // Boss room floor
	colorWall        = color.RGBA{180, 180, 200, 255} // Room outline
	colorDoorOpen    = color.RGBA{0, 220, 0, 255}     // Bright green
	colorDoorClosed  = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorPlayer      = color.RGBA{0, 255, 0, 255}     // Bright green
	colorEnemy       = color.RGBA{255, 80, 80, 255}   // Bright red
	colorItem        = color.RGBA{220, 170, 255, 255} // Bright purple
	colorPanel       = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Layout
const (
	screenWidth  = 480
	screenHeight = 360
	// pixelsPerUnit scales world units to screen pixels
	pixelsPerUnit = 3.0
	wallThickness = 2
	doorWidth     = 16 // world units
	doorThickness = 4  // pixels
	playerSize    = 6  // world units
	enemySize     = 4  // world units
	panelHeight   = 96
)
