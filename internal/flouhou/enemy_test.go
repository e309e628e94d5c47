package flouhou

import (
	"math"
	"testing"
)

func TestRemap(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"low end", -1, 64},
		{"high end", 1, 112},
		{"middle", 0, 88},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remap(-1, 1, 64, 112, tt.v); got != tt.want {
				t.Errorf("Remap(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestEnemyPositionIsPure(t *testing.T) {
	for _, ticks := range []uint32{0, 1, 17, 1000, 123456, math.MaxUint32} {
		a := EnemyPosition(ticks)
		b := EnemyPosition(ticks)
		if math.Float64bits(a.X) != math.Float64bits(b.X) || math.Float64bits(a.Y) != math.Float64bits(b.Y) {
			t.Errorf("EnemyPosition(%d) not stable: %v vs %v", ticks, a, b)
		}
	}
}

func TestEnemyPositionBounds(t *testing.T) {
	for ticks := uint32(0); ticks < 5000; ticks++ {
		p := EnemyPosition(ticks)
		if p.X < ScreenWidth/2 || p.X > ScreenWidth-EnemyWidth {
			t.Fatalf("tick %d: x = %v out of range", ticks, p.X)
		}
		if p.Y < 0 || p.Y > ScreenHeight-EnemyHeight {
			t.Fatalf("tick %d: y = %v out of range", ticks, p.Y)
		}
	}
}

func TestEnemyPositionAtZero(t *testing.T) {
	p := EnemyPosition(0)
	if p.X != 88 || p.Y != 24 {
		t.Errorf("EnemyPosition(0) = %v, want {88 24}", p)
	}
}

func TestEnemyShootCooldown(t *testing.T) {
	if got := EnemyShootCooldown(0); got != 24 {
		t.Errorf("EnemyShootCooldown(0) = %d, want 24", got)
	}
	if got := EnemyShootCooldown(1); got != 23 {
		t.Errorf("EnemyShootCooldown(1) = %d, want 23", got)
	}
	prev := EnemyShootCooldown(0)
	for hits := 1; hits <= 500; hits++ {
		got := EnemyShootCooldown(hits)
		if got > prev {
			t.Fatalf("cooldown increased at %d hits: %d > %d", hits, got, prev)
		}
		prev = got
	}
}

func TestEnemyPewSpeed(t *testing.T) {
	if got := EnemyPewSpeed(0); got != 1 {
		t.Errorf("EnemyPewSpeed(0) = %v, want 1", got)
	}
	prev := EnemyPewSpeed(0)
	for hits := 1; hits <= 500; hits++ {
		got := EnemyPewSpeed(hits)
		if got < prev {
			t.Fatalf("speed decreased at %d hits: %v < %v", hits, got, prev)
		}
		prev = got
	}
}
