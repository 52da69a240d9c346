package defender

import (
	"github.com/vovakirdan/tui-defender/internal/core"
)

// Projectile is a kinematic shot. Player shots are horizontal beams,
// opponent shots are aimed once at spawn time.
// Lifetime and bounds are enforced by the Game, not by the projectile.
type Projectile struct {
	Rect       core.Rect
	Velocity   core.Vec2
	Spawn      core.Vec2
	Age        float64
	Lifetime   float64
	Horizontal bool
	Direction  float64 // +1 right, -1 left; beams only
}

// NewBeam creates a horizontal projectile travelling in direction (sign only).
func NewBeam(spawn core.Vec2, direction, speed, size, lifetime float64) Projectile {
	dir := 1.0
	if direction < 0 {
		dir = -1.0
	}
	return Projectile{
		Rect:       core.NewRect(spawn.X, spawn.Y, size, size),
		Velocity:   core.Vec2{X: dir * speed},
		Spawn:      spawn,
		Lifetime:   lifetime,
		Horizontal: true,
		Direction:  dir,
	}
}

// NewAimed creates a projectile heading from spawn to target at the given speed.
// A target on top of the spawn point yields a zero velocity.
func NewAimed(spawn, target core.Vec2, speed, size, lifetime float64) Projectile {
	p := Projectile{
		Rect:     core.NewRect(spawn.X, spawn.Y, size, size),
		Spawn:    spawn,
		Lifetime: lifetime,
	}
	d := target.Sub(spawn)
	if dist := d.Len(); dist > 0.001 {
		p.Velocity = d.Scale(speed / dist)
	}
	return p
}

// Update integrates position and accumulates age.
func (p *Projectile) Update(dt float64) {
	p.Age += dt
	p.Rect.X += p.Velocity.X * dt
	p.Rect.Y += p.Velocity.Y * dt
}

// Expired reports whether the projectile outlived its lifetime.
func (p *Projectile) Expired() bool {
	return p.Age >= p.Lifetime
}

// outside reports whether the hitbox left the world by more than margin.
func (p *Projectile) outside(worldW, worldH, margin float64) bool {
	b := p.Rect
	return b.Right() < -margin || b.X > worldW+margin ||
		b.Bottom() < -margin || b.Y > worldH+margin
}
