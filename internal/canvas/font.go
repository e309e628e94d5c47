package canvas

import (
	"image"

	"golang.org/x/image/font/basicfont"
)

// Glyph cell of the small HUD font. Glyphs are 4 pixels wide with one column
// of spacing, 7 pixels above the baseline and 2 below, close to the handheld's
// secondary font so text fits the 128x64 layout.
const (
	glyphWidth   = 4
	glyphAdvance = 5
	glyphAscent  = 7
	glyphDescent = 2
	glyphRows    = glyphAscent + glyphDescent
)

// glyphs holds printable ASCII from ' ' to '~'. Each glyph is nine rows of
// four bits, top row in the most significant nibble, leftmost pixel in the
// nibble's high bit.
var glyphs = [...]uint64{
	0x000000000, // ' '
	0x444440400, // '!'
	0xAA0000000, // '"'
	0x05F5F5000, // '#'
	0x47861E200, // '$'
	0x912489000, // '%'
	0x4AA4B9700, // '&'
	0x440000000, // '''
	0x244444200, // '('
	0x422222400, // ')'
	0x0A4E4A000, // '*'
	0x044E44000, // '+'
	0x000004480, // ','
	0x000E00000, // '-'
	0x000000400, // '.'
	0x112488000, // '/'
	0x69BD99600, // '0'
	0x4C4444E00, // '1'
	0x691248F00, // '2'
	0xE11611E00, // '3'
	0x26AAF2200, // '4'
	0xF8E119600, // '5'
	0x688E99600, // '6'
	0xF12244400, // '7'
	0x699699600, // '8'
	0x699711600, // '9'
	0x004004000, // ':'
	0x004004480, // ';'
	0x024842000, // '<'
	0x00E0E0000, // '='
	0x084248000, // '>'
	0x691240400, // '?'
	0x69BBB8600, // '@'
	0x699F99900, // 'A'
	0xE99E99E00, // 'B'
	0x698889600, // 'C'
	0xE99999E00, // 'D'
	0xF88E88F00, // 'E'
	0xF88E88800, // 'F'
	0x698B99700, // 'G'
	0x999F99900, // 'H'
	0xE44444E00, // 'I'
	0x311119600, // 'J'
	0x99ACA9900, // 'K'
	0x888888F00, // 'L'
	0x9FF999900, // 'M'
	0x9DDBB9900, // 'N'
	0x699999600, // 'O'
	0xE99E88800, // 'P'
	0x6999B9610, // 'Q'
	0xE99EA9900, // 'R'
	0x788611E00, // 'S'
	0xE44444400, // 'T'
	0x999999600, // 'U'
	0x999996600, // 'V'
	0x9999FF900, // 'W'
	0x996669900, // 'X'
	0xAAA444400, // 'Y'
	0xF12488F00, // 'Z'
	0x644444600, // '['
	0x884211000, // '\'
	0x622222600, // ']'
	0x4A0000000, // '^'
	0x000000F00, // '_'
	0x840000000, // '`'
	0x006179700, // 'a'
	0x88E999E00, // 'b'
	0x006888600, // 'c'
	0x117999700, // 'd'
	0x0069F8600, // 'e'
	0x254E44400, // 'f'
	0x007999716, // 'g'
	0x88E999900, // 'h'
	0x40C444E00, // 'i'
	0x2062222A4, // 'j'
	0x889ACA900, // 'k'
	0xC44444E00, // 'l'
	0x00EB99900, // 'm'
	0x00E999900, // 'n'
	0x006999600, // 'o'
	0x00E999E88, // 'p'
	0x007999711, // 'q'
	0x00BC88800, // 'r'
	0x007861E00, // 's'
	0x44E444200, // 't'
	0x009999700, // 'u'
	0x009996600, // 'v'
	0x0099BF900, // 'w'
	0x009666900, // 'x'
	0x009999716, // 'y'
	0x00F248F00, // 'z'
	0x244844200, // '{'
	0x444444400, // '|'
	0x422122400, // '}'
	0x005A00000, // '~'
}

// Face4x7 is the font used by Bitmap.DrawStr.
var Face4x7 = newGlyphFace()

func newGlyphFace() *basicfont.Face {
	mask := image.NewAlpha(image.Rect(0, 0, glyphWidth, len(glyphs)*glyphRows))
	for i, g := range glyphs {
		for row := range glyphRows {
			bits := g >> (4 * (glyphRows - 1 - row)) & 0xF
			for col := range glyphWidth {
				if bits&(0x8>>col) != 0 {
					mask.Pix[mask.PixOffset(col, i*glyphRows+row)] = 0xff
				}
			}
		}
	}

	return &basicfont.Face{
		Advance: glyphAdvance,
		Width:   glyphWidth,
		Height:  glyphRows,
		Ascent:  glyphAscent,
		Descent: glyphDescent,
		Mask:    mask,
		Ranges: []basicfont.Range{
			{Low: ' ', High: '~' + 1, Offset: 0},
		},
	}
}
