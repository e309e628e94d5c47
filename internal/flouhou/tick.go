package flouhou

import (
	"math"

	"github.com/vovakirdan/flouhou/internal/core"
)

// Tick advances the game by one step given the input held during this tick
// and the input held during the previous one.
func (s *State) Tick(cur, prev core.Snapshot) {
	// Paused: only quit and resume are handled
	if s.Paused {
		if core.JustPressed(cur, prev, core.ButtonBack) {
			s.ShouldQuit = true
		}
		if cur.Shoot {
			s.Paused = false
		}
		return
	}

	// Pausing takes effect from the next tick
	if cur.Back {
		s.Paused = true
	}

	if s.Player.Alive() {
		s.steerPlayer(cur)
	}

	s.advancePews()

	enemyPos := EnemyPosition(s.Ticks)
	s.hitEnemy(enemyPos)
	s.advanceEnemyPews()

	if s.Player.Alive() {
		s.hitPlayer(enemyPos)
		s.enemyShoot(enemyPos)
	} else {
		s.Player.TicksSinceDeath++
		if s.Player.TicksSinceDeath >= PlayerDeathLength {
			s.Reset()
			return
		}
	}

	s.movePlayer()
	s.Ticks++
}

// steerPlayer applies directional impulses and fires a pew when allowed.
func (s *State) steerPlayer(in core.Snapshot) {
	p := &s.Player
	if in.Up {
		p.VSpeed -= MovementSpeed
	}
	if in.Down {
		p.VSpeed += MovementSpeed
	}
	if in.Left {
		p.HSpeed -= MovementSpeed
	}
	if in.Right {
		p.HSpeed += MovementSpeed
	}

	if in.Shoot && p.ShootCooldownLeft == 0 {
		s.Pews.Add(Pew{X: p.X, Y: p.Y})
		p.ShootCooldownLeft = ShootCooldown
	}
	if p.ShootCooldownLeft > 0 {
		p.ShootCooldownLeft--
	}
}

// advancePews moves player pews right and drops the ones past the screen edge.
func (s *State) advancePews() {
	for i := s.Pews.Len() - 1; i >= 0; i-- {
		pew := s.Pews.Ref(i)
		pew.X += PewSpeed
		if pew.X > ScreenWidth {
			s.Pews.Remove(i)
		}
	}
}

// hitEnemy consumes at most one pew overlapping the enemy.
func (s *State) hitEnemy(enemyPos Position) {
	if s.Enemy.HitCooldownTicksLeft > 0 {
		s.Enemy.HitCooldownTicksLeft--
		return
	}

	box := enemyHitbox(enemyPos)
	for i := s.Pews.Len() - 1; i >= 0; i-- {
		if !s.Pews.At(i).hitbox().Intersects(box) {
			continue
		}
		s.Pews.Remove(i)
		s.Enemy.HitCooldownTicksLeft = EnemyHitCooldown
		s.Enemy.HitsTaken++
		return
	}
}

// advanceEnemyPews moves enemy pews and drops the ones fully off screen.
func (s *State) advanceEnemyPews() {
	for i := s.EnemyPews.Len() - 1; i >= 0; i-- {
		epew := s.EnemyPews.Ref(i)
		epew.X += epew.HSpeed
		epew.Y += epew.VSpeed
		if !epew.hitbox().Intersects(screenRect) {
			s.EnemyPews.Remove(i)
		}
	}
}

// hitPlayer costs the player a life on contact with an enemy pew or the enemy.
func (s *State) hitPlayer(enemyPos Position) {
	p := &s.Player
	if p.InvincibilityFramesLeft > 0 {
		p.InvincibilityFramesLeft--
		return
	}

	box := p.hitbox()
	hit := false
	for i := range s.EnemyPews.Len() {
		if s.EnemyPews.At(i).hitbox().Intersects(box) {
			hit = true
			break
		}
	}
	if !hit {
		hit = box.Intersects(enemyHitbox(enemyPos))
	}

	if hit {
		p.LivesLeft--
		p.InvincibilityFramesLeft = PlayerInvincibilityFrames
	}
}

// enemyShoot fires a pew aimed at the player once the cooldown runs out.
func (s *State) enemyShoot(enemyPos Position) {
	e := &s.Enemy
	if e.ShootCooldownLeft > 0 {
		e.ShootCooldownLeft--
		return
	}

	e.ShootCooldownLeft = EnemyShootCooldown(e.HitsTaken)
	speed := EnemyPewSpeed(e.HitsTaken)
	h, v := aim(enemyPos, Position{X: s.Player.X, Y: s.Player.Y}, speed)
	s.EnemyPews.Add(EnemyPew{
		X:      enemyPos.X,
		Y:      enemyPos.Y,
		HSpeed: h,
		VSpeed: v,
	})
}

// aim returns a velocity of the given speed pointing from one position to
// another. Coincident positions aim straight down.
func aim(from, to Position, speed float64) (h, v float64) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		return 0, speed
	}
	return speed * dx / mag, speed * dy / mag
}

// movePlayer integrates velocity, damps it, wraps y and clamps x.
func (s *State) movePlayer() {
	p := &s.Player
	p.X += p.HSpeed
	p.Y += p.VSpeed
	p.HSpeed *= PlayerSpeedRetention
	p.VSpeed *= PlayerSpeedRetention

	p.Y = wrap(p.Y, ScreenHeight)

	if x := core.ClampF(p.X, 0, ScreenWidth-PlayerWidth); x != p.X {
		p.X = x
		p.HSpeed = 0
	}
}

// wrap maps v into [0, n).
func wrap(v, n float64) float64 {
	v = math.Mod(v, n)
	if v < 0 {
		v += n
	}
	if v >= n {
		v = 0
	}
	return v
}
