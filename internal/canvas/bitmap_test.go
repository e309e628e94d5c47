package canvas

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestBitmapBoxAndInvert(t *testing.T) {
	b := NewBitmap()
	b.DrawBox(0, 0, Width, Height)
	if got := b.Count(); got != Width*Height {
		t.Fatalf("Count() after full box = %d, want %d", got, Width*Height)
	}

	b.InvertColor()
	b.DrawBox(10, 10, 4, 2)
	if got := b.Count(); got != Width*Height-8 {
		t.Errorf("Count() after white box = %d, want %d", got, Width*Height-8)
	}
	if b.Pixel(10, 10) || b.Pixel(13, 11) {
		t.Error("white box should clear its pixels")
	}
	if !b.Pixel(14, 10) {
		t.Error("pixel outside white box should stay inked")
	}
}

func TestBitmapDotClipping(t *testing.T) {
	b := NewBitmap()
	b.DrawDot(-1, 0)
	b.DrawDot(Width, 0)
	b.DrawDot(0, Height)
	if b.Count() != 0 {
		t.Errorf("off-screen dots should be clipped, Count() = %d", b.Count())
	}
	b.DrawDot(127, 63)
	if !b.Pixel(127, 63) {
		t.Error("corner dot not drawn")
	}
}

func TestBitmapFrame(t *testing.T) {
	b := NewBitmap()
	b.DrawFrame(0, 0, 4, 3)
	// Perimeter of a 4x3 rectangle.
	if got := b.Count(); got != 10 {
		t.Errorf("Count() = %d, want 10", got)
	}
	if b.Pixel(1, 1) {
		t.Error("frame interior should be empty")
	}
}

func TestBitmapDisc(t *testing.T) {
	b := NewBitmap()
	b.DrawDisc(20, 20, 2)
	tests := []struct {
		x, y int
		want bool
	}{
		{20, 20, true},
		{22, 20, true},
		{20, 18, true},
		{22, 22, false},
		{23, 20, false},
	}
	for _, tt := range tests {
		if got := b.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBitmapIconModes(t *testing.T) {
	s := SpriteOf(IconShot)

	solid := NewBitmap()
	solid.DrawBox(0, 0, Width, Height)
	solid.SetBitmapMode(false)
	solid.DrawIcon(0, 0, IconShot)

	alpha := NewBitmap()
	alpha.DrawBox(0, 0, Width, Height)
	alpha.SetBitmapMode(true)
	alpha.DrawIcon(0, 0, IconShot)

	for y := range s.H {
		for x := range s.W {
			if solid.Pixel(x, y) != s.Bit(x, y) {
				t.Errorf("solid (%d,%d) = %v, want %v", x, y, solid.Pixel(x, y), s.Bit(x, y))
			}
			if !alpha.Pixel(x, y) {
				t.Errorf("alpha mode should leave background at (%d,%d)", x, y)
			}
		}
	}
}

func TestBitmapDrawStr(t *testing.T) {
	b := NewBitmap()
	b.DrawStr(2, 12, "Paused")
	if b.Count() == 0 {
		t.Fatal("text should ink pixels")
	}
	// Six glyphs of advance 5 from x=2; rows from ascent to descent around y=12.
	box := image.Rect(2, 12-7, 2+6*5, 12+2)
	for y := range Height {
		for x := range Width {
			if b.Pixel(x, y) && !image.Pt(x, y).In(box) {
				t.Fatalf("unexpected ink at (%d,%d) outside %v", x, y, box)
			}
		}
	}
}

func TestBitmapDrawStrStopsAtNewline(t *testing.T) {
	a, b := NewBitmap(), NewBitmap()
	a.DrawStr(0, 10, "Paused")
	b.DrawStr(0, 10, "Paused\nBack -> Quit")
	if a.pix != b.pix {
		t.Error("text after a newline should not be drawn")
	}
}

func TestFace4x7Glyph(t *testing.T) {
	b := NewBitmap()
	b.DrawStr(0, 7, "0")

	want := []string{
		".##.",
		"#..#",
		"#.##",
		"##.#",
		"#..#",
		"#..#",
		".##.",
	}
	for y, row := range want {
		for x, c := range row {
			if got := b.Pixel(x, y); got != (c == '#') {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, c == '#')
			}
		}
	}
	if b.Count() != 16 {
		t.Errorf("Count() = %d, want 16", b.Count())
	}
}

func TestFace4x7Advance(t *testing.T) {
	b := NewBitmap()
	b.DrawStr(0, 7, "||")
	// '|' is the second column of its cell
	if !b.Pixel(1, 0) || !b.Pixel(6, 0) {
		t.Error("second glyph should start one advance to the right")
	}
	if b.Count() != 14 {
		t.Errorf("Count() = %d, want 14", b.Count())
	}
}

func TestBitmapImplementsImage(t *testing.T) {
	b := NewBitmap()
	var img image.Image = b
	if img.Bounds() != image.Rect(0, 0, Width, Height) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	b.Set(5, 5, color.Black)
	if !b.Pixel(5, 5) {
		t.Error("Set(black) should ink")
	}
	if g := color.GrayModel.Convert(img.At(5, 5)).(color.Gray); g.Y != 0 {
		t.Errorf("At() = %v, want black", g)
	}
	b.Set(5, 5, color.White)
	if b.Pixel(5, 5) {
		t.Error("Set(white) should clear")
	}
}

func TestBitmapRows(t *testing.T) {
	b := NewBitmap()
	b.DrawDot(0, 0)
	b.DrawDot(1, 1)
	b.DrawDot(2, 0)
	b.DrawDot(2, 1)

	rows := b.Rows()
	if len(rows) != Height/2 {
		t.Fatalf("len(rows) = %d, want %d", len(rows), Height/2)
	}
	first := []rune(rows[0])
	if len(first) != Width {
		t.Fatalf("row width = %d, want %d", len(first), Width)
	}
	if string(first[:4]) != "▀▄█ " {
		t.Errorf("row prefix = %q", string(first[:4]))
	}
	if strings.Count(b.String(), "\n") != Height/2-1 {
		t.Error("String() should join rows with newlines")
	}
}

func TestSpriteDimensions(t *testing.T) {
	for i := IconBadFill; i < iconCount; i++ {
		s := SpriteOf(i)
		if s.W == 0 || s.H == 0 {
			t.Errorf("%v: empty sprite", i)
			continue
		}
		for y, row := range s.rows {
			if len(row) != s.W {
				t.Errorf("%v: row %d has width %d, want %d", i, y, len(row), s.W)
			}
		}
	}
	if s := SpriteOf(Icon(-1)); s.W != 0 {
		t.Error("unknown icon should yield empty sprite")
	}
}
