package canvas

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Bitmap is a 1-bit framebuffer that rasterizes Canvas calls.
// It also implements draw.Image so it can be used with image/draw, the
// x/image font drawer and image encoders. Inked pixels read back as black.
type Bitmap struct {
	pix   [Width * Height]bool
	color Color
	alpha bool
	face  font.Face
}

// NewBitmap creates a cleared bitmap painting in black with solid icons.
func NewBitmap() *Bitmap {
	b := &Bitmap{face: Face4x7}
	b.Reset()
	return b
}

// Reset clears every pixel and restores the default paint state.
func (b *Bitmap) Reset() {
	clear(b.pix[:])
	b.color = ColorBlack
	b.alpha = false
}

// Pixel reports whether the pixel at (x, y) is inked.
// Out-of-bounds coordinates are never inked.
func (b *Bitmap) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return b.pix[y*Width+x]
}

// Count returns the number of inked pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, p := range b.pix {
		if p {
			n++
		}
	}
	return n
}

// plot paints one pixel in color c. Out-of-bounds coordinates are clipped.
func (b *Bitmap) plot(x, y int, c Color) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	b.pix[y*Width+x] = c == ColorBlack
}

func (b *Bitmap) DrawBox(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			b.plot(px, py, b.color)
		}
	}
}

func (b *Bitmap) DrawDisc(x, y, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				b.plot(x+dx, y+dy, b.color)
			}
		}
	}
}

func (b *Bitmap) DrawDot(x, y int) {
	b.plot(x, y, b.color)
}

func (b *Bitmap) DrawFrame(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for px := x; px < x+w; px++ {
		b.plot(px, y, b.color)
		b.plot(px, y+h-1, b.color)
	}
	for py := y; py < y+h; py++ {
		b.plot(x, py, b.color)
		b.plot(x+w-1, py, b.color)
	}
}

// DrawIcon blits a sprite. In alpha mode only set sprite pixels are painted;
// in solid mode unset pixels are painted with the inverse color.
func (b *Bitmap) DrawIcon(x, y int, icon Icon) {
	s := SpriteOf(icon)
	for sy := range s.H {
		for sx := range s.W {
			switch {
			case s.Bit(sx, sy):
				b.plot(x+sx, y+sy, b.color)
			case !b.alpha:
				b.plot(x+sx, y+sy, b.color.Inverse())
			}
		}
	}
}

// DrawStr renders the first line of s with its baseline at y.
func (b *Bitmap) DrawStr(x, y int, s string) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	src := image.White
	if b.color == ColorBlack {
		src = image.Black
	}
	d := font.Drawer{
		Dst:  b,
		Src:  src,
		Face: b.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (b *Bitmap) InvertColor() {
	b.color = b.color.Inverse()
}

func (b *Bitmap) SetColor(c Color) {
	b.color = c
}

func (b *Bitmap) SetBitmapMode(alpha bool) {
	b.alpha = alpha
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	if b.Pixel(x, y) {
		return color.Black
	}
	return color.White
}

// Set implements draw.Image. Dark colors ink the pixel, light colors clear it.
func (b *Bitmap) Set(x, y int, c color.Color) {
	g := color.GrayModel.Convert(c).(color.Gray)
	if g.Y < 0x80 {
		b.plot(x, y, ColorBlack)
	} else {
		b.plot(x, y, ColorWhite)
	}
}

// Half-block glyphs indexed by (top inked, bottom inked).
var halfBlocks = [2][2]rune{
	{' ', '▄'},
	{'▀', '█'},
}

// Rows renders the bitmap as Height/2 lines of half-block characters,
// two pixel rows per terminal line. Inked pixels are drawn as blocks.
func (b *Bitmap) Rows() []string {
	rows := make([]string, 0, Height/2)
	var sb strings.Builder
	for y := 0; y < Height; y += 2 {
		sb.Reset()
		sb.Grow(Width * 3)
		for x := range Width {
			top, bottom := 0, 0
			if b.Pixel(x, y) {
				top = 1
			}
			if b.Pixel(x, y+1) {
				bottom = 1
			}
			sb.WriteRune(halfBlocks[top][bottom])
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// String converts the bitmap to a renderable string.
func (b *Bitmap) String() string {
	return strings.Join(b.Rows(), "\n")
}

var _ Canvas = (*Bitmap)(nil)
