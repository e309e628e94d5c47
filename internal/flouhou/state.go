// Package flouhou implements the simulation of a small 128x64 arcade shooter.
// A player ship trades shots with a single enemy whose position is a pure
// function of the tick counter. The package is deterministic and performs no
// I/O or synchronization; hosts serialize calls to Tick and Render.
package flouhou

import (
	"fmt"

	"github.com/vovakirdan/flouhou/internal/core"
)

// Screen dimensions
const (
	ScreenWidth  = 128
	ScreenHeight = 64
)

// Player constants
const (
	PlayerWidth               = 8
	PlayerHeight              = 8
	PlayerInvincibilityFrames = 32   // Frames of immunity after a hit
	PlayerDeathLength         = 64   // Dying ticks before the game restarts
	PlayerSpeedRetention      = 0.95 // Velocity kept per tick
	PlayerStartX              = 30
	PlayerStartY              = 30
	PlayerStartLives          = 3
	MovementSpeed             = 0.5 // Velocity impulse per held direction
	ShootCooldown             = 8   // Ticks between player shots
	PewWidth                  = 8
	PewHeight                 = 8
	PewSpeed                  = 4 // Pixels per tick, rightward only
	PewCapacity               = 32
)

// Enemy constants
const (
	EnemyWidth                   = 16
	EnemyHeight                  = 16
	EnemyHitCooldown             = 16   // Ticks the enemy ignores shots after a hit
	EnemyBaseShootCooldown       = 24   // Shoot cooldown with zero hits taken
	EnemyCooldownRetentionPerHit = 0.98 // Cooldown and pew speed scale by this per hit
	EnemyPewWidth                = 8
	EnemyPewHeight               = 8
	EnemyPewCapacity             = 64
)

// Position is a point in screen space.
type Position struct {
	X, Y float64
}

// Player is the ship controlled by the user.
type Player struct {
	X, Y                    float64
	HSpeed, VSpeed          float64
	ShootCooldownLeft       int
	InvincibilityFramesLeft int // 0 means vulnerable
	LivesLeft               int // 0 means dying
	TicksSinceDeath         int
}

// Alive reports whether the player still has lives.
func (p Player) Alive() bool {
	return p.LivesLeft > 0
}

// Enemy holds the enemy's counters. Its position is derived from the tick
// counter with EnemyPosition and never stored.
type Enemy struct {
	HitCooldownTicksLeft int
	ShootCooldownLeft    int
	HitsTaken            int
}

// Pew is a player projectile.
type Pew struct {
	X, Y float64
}

// EnemyPew is an enemy projectile with a velocity fixed at spawn time.
type EnemyPew struct {
	X, Y           float64
	HSpeed, VSpeed float64
}

// State is the complete game state.
type State struct {
	Ticks      uint32
	Pews       *core.List[Pew]
	EnemyPews  *core.List[EnemyPew]
	Player     Player
	Enemy      Enemy
	Paused     bool
	ShouldQuit bool // Latched; the host loop should stop
}

// New returns the initial game state.
func New() *State {
	return &State{
		Pews:      core.NewList[Pew](PewCapacity),
		EnemyPews: core.NewList[EnemyPew](EnemyPewCapacity),
		Player: Player{
			X:         PlayerStartX,
			Y:         PlayerStartY,
			LivesLeft: PlayerStartLives,
		},
		Enemy: Enemy{
			ShootCooldownLeft: EnemyShootCooldown(0),
		},
	}
}

// Reset reinitializes every field, including hits and ticks.
func (s *State) Reset() {
	*s = *New()
}

// Dropped returns the number of projectiles rejected because a list was full.
func (s *State) Dropped() int {
	return s.Pews.Dropped() + s.EnemyPews.Dropped()
}

func (p Player) hitbox() core.Rect {
	return core.RectF(p.X, p.Y, PlayerWidth, PlayerHeight)
}

func (p Pew) hitbox() core.Rect {
	return core.RectF(p.X, p.Y, PewWidth, PewHeight)
}

func (p EnemyPew) hitbox() core.Rect {
	return core.RectF(p.X, p.Y, EnemyPewWidth, EnemyPewHeight)
}

func enemyHitbox(pos Position) core.Rect {
	return core.RectF(pos.X, pos.Y, EnemyWidth, EnemyHeight)
}

var screenRect = core.NewRect(0, 0, ScreenWidth, ScreenHeight)

// Summary returns a one-line description of the state.
func (s *State) Summary() string {
	return fmt.Sprintf("tick=%d lives=%d hits=%d pews=%d enemy_pews=%d paused=%t",
		s.Ticks, s.Player.LivesLeft, s.Enemy.HitsTaken, s.Pews.Len(), s.EnemyPews.Len(), s.Paused)
}
