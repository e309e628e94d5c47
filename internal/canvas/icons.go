package canvas

// Icon is one of the sprites the game can draw.
type Icon int

const (
	IconBadFill Icon = iota
	IconBadLaugh0
	IconBadLaugh1
	IconBad0
	IconBad1
	IconShot
	IconSpaceShip
	IconBadPew
	IconHeart

	iconCount
)

// String returns the sprite name.
func (i Icon) String() string {
	switch i {
	case IconBadFill:
		return "BadFill"
	case IconBadLaugh0:
		return "BadLaugh0"
	case IconBadLaugh1:
		return "BadLaugh1"
	case IconBad0:
		return "Bad0"
	case IconBad1:
		return "Bad1"
	case IconShot:
		return "Shot"
	case IconSpaceShip:
		return "SpaceShip"
	case IconBadPew:
		return "BadPew"
	case IconHeart:
		return "Heart"
	default:
		return "Unknown"
	}
}

// Sprite is a 1-bit image; '#' marks a set pixel.
type Sprite struct {
	W, H int
	rows []string
}

// Bit reports whether the sprite pixel at (x, y) is set.
func (s Sprite) Bit(x, y int) bool {
	if y < 0 || y >= len(s.rows) || x < 0 || x >= len(s.rows[y]) {
		return false
	}
	return s.rows[y][x] == '#'
}

func sprite(rows ...string) Sprite {
	return Sprite{W: len(rows[0]), H: len(rows), rows: rows}
}

// SpriteOf returns the pixel data for an icon.
// Unknown icons yield an empty sprite.
func SpriteOf(i Icon) Sprite {
	if i < 0 || i >= iconCount {
		return Sprite{}
	}
	return sprites[i]
}

var sprites = [iconCount]Sprite{
	IconBadFill: sprite(
		".....######.....",
		"...##########...",
		"..############..",
		".##############.",
		".##############.",
		"################",
		"################",
		"################",
		"################",
		"################",
		"################",
		"################",
		".##############.",
		".##############.",
		"..###.####.###..",
		"...#...##...#...",
	),
	IconBad0: sprite(
		".....######.....",
		"...##########...",
		"..############..",
		".##############.",
		".##...####...##.",
		"###...####...###",
		"###..#####..####",
		"###..#####..####",
		"################",
		"################",
		"#####......#####",
		"################",
		".##############.",
		".##############.",
		"..###.####.###..",
		"...#...##...#...",
	),
	IconBad1: sprite(
		".....######.....",
		"...##########...",
		"..############..",
		".##############.",
		".##...####...##.",
		"###...####...###",
		"####..#####..###",
		"####..#####..###",
		"################",
		"################",
		"#####......#####",
		"################",
		".##############.",
		".##############.",
		"..###.####.###..",
		"...#...##...#...",
	),
	IconBadLaugh0: sprite(
		".....######.....",
		"...##########...",
		"..############..",
		".##############.",
		".###.######.###.",
		"###.#.####.#.###",
		"################",
		"################",
		"####.#.#.#.#####",
		"####........####",
		"####........####",
		"####........####",
		".##############.",
		".##############.",
		"..###.####.###..",
		"...#...##...#...",
	),
	IconBadLaugh1: sprite(
		".....######.....",
		"...##########...",
		"..############..",
		".##############.",
		".###.######.###.",
		"###.#.####.#.###",
		"################",
		"################",
		"################",
		"####.#.#.#.#####",
		"####........####",
		"####........####",
		".##############.",
		".##############.",
		"..###.####.###..",
		"...#...##...#...",
	),
	IconShot: sprite(
		"........",
		"........",
		".....##.",
		"########",
		"########",
		".....##.",
		"........",
		"........",
	),
	IconSpaceShip: sprite(
		"##......",
		".###....",
		".#####..",
		"########",
		"########",
		".#####..",
		".###....",
		"##......",
	),
	// Only the top-left 8x8 is inked; the hitbox is 8x8.
	IconBadPew: sprite(
		"..####..........",
		".#....#.........",
		"#..##..#........",
		"#.#..#.#........",
		"#.#..#.#........",
		"#..##..#........",
		".#....#.........",
		"..####..........",
		"................",
		"................",
		"................",
		"................",
		"................",
		"................",
		"................",
		"................",
	),
	IconHeart: sprite(
		".##.##..",
		"#######.",
		"#######.",
		"#######.",
		".#####..",
		"..###...",
		"...#....",
		"........",
	),
}
