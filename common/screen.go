package common

// Logical screen size. The game always lays out at this resolution and lets
// the window scale it.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
