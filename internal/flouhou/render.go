package flouhou

import (
	"fmt"

	"github.com/vovakirdan/flouhou/internal/canvas"
)

// star is one background dot scrolling left at its own speed.
type star struct {
	speed  float64
	offset int
	period int
	y      int
}

var stars = [...]star{
	{1.6, 23, 141, 13},
	{0.5, 2, 130, 20},
	{1.0, 40, 129, 26},
	{0.76, 210, 155, 46},
	{0.45, 428, 200, 40},
	{1.0, 220, 152, 54},
}

// x returns the star's column at the given tick. Stars re-enter from the
// right edge once they have scrolled past the left one.
func (st star) x(ticks uint32) int {
	return -int(st.speed*float64(ticks)+float64(st.offset))%st.period + ScreenWidth
}

// Render draws one frame of s onto c. Commands are issued in painter's order.
// A paused frame holds only the pause box.
func Render(s *State, c canvas.Canvas) {
	if s.Paused {
		drawPauseScreen(c)
		return
	}
	c.SetBitmapMode(true)
	c.DrawBox(0, 0, ScreenWidth, ScreenHeight)
	c.InvertColor()
	drawStars(c, s.Ticks)

	for i := range s.Pews.Len() {
		pew := s.Pews.At(i)
		drawOutlinedIcon(c, int(pew.X), int(pew.Y), canvas.IconShot)
	}
	c.InvertColor()

	if s.Player.Alive() {
		c.InvertColor()
		// Drawn a second time one screen up so wrapping looks seamless
		if s.Player.InvincibilityFramesLeft%2 == 0 {
			x, y := int(s.Player.X), int(s.Player.Y)
			drawOutlinedIcon(c, x, y, canvas.IconSpaceShip)
			drawOutlinedIcon(c, x, y-ScreenHeight, canvas.IconSpaceShip)
		}
		c.InvertColor()
	} else {
		drawPlayerDeath(c, s.Player)
	}

	drawEnemy(c, s)

	for i := range s.EnemyPews.Len() {
		epew := s.EnemyPews.At(i)
		drawOutlinedIcon(c, int(epew.X), int(epew.Y), canvas.IconBadPew)
	}

	drawOutlinedStr(c, 80, 10, fmt.Sprintf("hits: %d", s.Enemy.HitsTaken))

	c.InvertColor()
	for i := range s.Player.LivesLeft {
		drawOutlinedIcon(c, 8*i+2, 2, canvas.IconHeart)
	}
	c.InvertColor()
}

func drawStars(c canvas.Canvas, ticks uint32) {
	for _, st := range stars {
		c.DrawDot(st.x(ticks), st.y)
	}
}

// drawOutlinedIcon draws icon with a one pixel border in the inverse color.
func drawOutlinedIcon(c canvas.Canvas, x, y int, icon canvas.Icon) {
	c.InvertColor()
	c.DrawIcon(x-1, y, icon)
	c.DrawIcon(x+1, y, icon)
	c.DrawIcon(x, y-1, icon)
	c.DrawIcon(x, y+1, icon)
	c.InvertColor()
	c.DrawIcon(x, y, icon)
}

// drawOutlinedStr draws s in the inverse color over a border in the current one.
func drawOutlinedStr(c canvas.Canvas, x, y int, s string) {
	c.DrawStr(x-1, y, s)
	c.DrawStr(x+1, y, s)
	c.DrawStr(x, y-1, s)
	c.DrawStr(x, y+1, s)
	c.InvertColor()
	c.DrawStr(x, y, s)
	c.InvertColor()
}

// drawEnemy draws the enemy body, flickering while it is immune to hits.
func drawEnemy(c canvas.Canvas, s *State) {
	pos := EnemyPosition(s.Ticks)
	x, y := int(pos.X), int(pos.Y)
	flicker := s.Enemy.HitCooldownTicksLeft%2 == 0
	if flicker {
		c.InvertColor()
	}
	c.DrawIcon(x-1, y, canvas.IconBadFill)
	c.DrawIcon(x, y+1, canvas.IconBadFill)
	c.DrawIcon(x, y-1, canvas.IconBadFill)
	c.DrawIcon(x+1, y, canvas.IconBadFill)
	c.InvertColor()
	c.DrawIcon(x, y, enemyFace(s))
	c.InvertColor()
	if flicker {
		c.InvertColor()
	}
}

// enemyFace picks the animation frame. The enemy laughs while the player is dying.
func enemyFace(s *State) canvas.Icon {
	if !s.Player.Alive() {
		if s.Ticks%16 > 8 {
			return canvas.IconBadLaugh0
		}
		return canvas.IconBadLaugh1
	}
	if s.Ticks%48 > 24 {
		return canvas.IconBad0
	}
	return canvas.IconBad1
}

// drawPlayerDeath draws the explosion for the first few dying ticks.
func drawPlayerDeath(c canvas.Canvas, p Player) {
	cx, cy := int(p.X+3), int(p.Y+4)
	c.SetColor(canvas.ColorWhite)
	switch p.TicksSinceDeath {
	case 0:
		c.DrawDisc(cx, cy, 8)
	case 1:
		c.DrawDisc(cx, cy, 12)
	case 2:
		c.DrawDisc(cx, cy, 14)
		c.SetColor(canvas.ColorBlack)
		c.DrawDisc(cx, cy, 8)
	case 3:
		c.DrawDisc(cx, cy, 15)
		c.SetColor(canvas.ColorBlack)
		c.DrawDisc(cx, cy, 13)
	case 4:
		c.DrawDisc(cx, cy, 16)
		c.SetColor(canvas.ColorBlack)
		c.DrawDisc(cx, cy, 15)
	}
	c.SetColor(canvas.ColorBlack)
}

func drawPauseScreen(c canvas.Canvas) {
	c.SetColor(canvas.ColorWhite)
	c.DrawBox(24, 14, ScreenWidth-2*24, 72-2*16)
	c.SetColor(canvas.ColorBlack)
	c.DrawFrame(25, 15, 126-2*24, 70-2*16)
	c.DrawStr(48, 26, "Paused")
	c.DrawStr(30, 39, "Back  -> Quit")
	c.DrawStr(28, 48, "Shoot -> Resume")
}
