package flouhou

import "math"

// Remap linearly maps v from [srcMin, srcMax] to [dstMin, dstMax].
func Remap(srcMin, srcMax, dstMin, dstMax, v float64) float64 {
	return (v-srcMin)/(srcMax-srcMin)*(dstMax-dstMin) + dstMin
}

// EnemyPosition returns the enemy's top-left corner at the given tick.
// Two sinusoids with incommensurate frequencies keep it inside the right
// half of the screen.
func EnemyPosition(ticks uint32) Position {
	t := float64(ticks)
	return Position{
		X: Remap(-1, 1, ScreenWidth/2, ScreenWidth-EnemyWidth, math.Sin(0.1*t)),
		Y: Remap(-1, 1, 0, ScreenHeight-EnemyHeight, math.Sin(0.075982851*t)),
	}
}

// EnemyShootCooldown returns the ticks between enemy shots after the given
// number of hits. It is non-increasing in hits.
func EnemyShootCooldown(hits int) int {
	return int(EnemyBaseShootCooldown * math.Pow(EnemyCooldownRetentionPerHit, float64(hits)))
}

// EnemyPewSpeed returns the speed of enemy projectiles after the given number
// of hits. It is non-decreasing in hits and has no upper bound.
func EnemyPewSpeed(hits int) float64 {
	return math.Pow(1/EnemyCooldownRetentionPerHit, float64(hits))
}
