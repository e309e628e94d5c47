// Package canvas defines the drawing vocabulary of the 128x64 monochrome
// display and two implementations of it: a Recorder that buffers commands in
// emission order and a Bitmap that rasterizes them.
package canvas

// Display dimensions in pixels.
const (
	Width  = 128
	Height = 64
)

// Color is the paint color of subsequent draw calls.
// Black sets (inks) pixels, White clears them.
type Color uint8

const (
	ColorWhite Color = iota
	ColorBlack
)

// Inverse returns the other color.
func (c Color) Inverse() Color {
	if c == ColorBlack {
		return ColorWhite
	}
	return ColorBlack
}

// String returns a human-readable name for the color.
func (c Color) String() string {
	if c == ColorBlack {
		return "Black"
	}
	return "White"
}

// Canvas is the fixed set of primitives the game draws with.
// Calls must be applied in the order they are made.
type Canvas interface {
	// DrawBox fills a w x h rectangle with its top-left corner at (x, y).
	DrawBox(x, y, w, h int)
	// DrawDisc fills a circle of radius r centered on (x, y).
	DrawDisc(x, y, r int)
	// DrawDot sets a single pixel.
	DrawDot(x, y int)
	// DrawFrame outlines a w x h rectangle.
	DrawFrame(x, y, w, h int)
	// DrawIcon blits a sprite with its top-left corner at (x, y).
	DrawIcon(x, y int, icon Icon)
	// DrawStr draws text left to right with its baseline at y.
	DrawStr(x, y int, s string)
	// InvertColor swaps the paint color.
	InvertColor()
	// SetColor sets the paint color.
	SetColor(c Color)
	// SetBitmapMode selects transparent (alpha) or solid icon blitting.
	SetBitmapMode(alpha bool)
}
