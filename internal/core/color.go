package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette. Piece colors follow the usual guideline hues.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorYellow
	ColorMagenta
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
	ColorWhite
	ColorGray
	ColorDim
	ColorBrightWhite
	ColorBrightYellow
)
