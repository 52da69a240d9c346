package defender

import (
	"github.com/vovakirdan/tui-defender/internal/core"
)

// Particle is a cosmetic, decaying square. Gameplay never reads it except
// to prune it.
type Particle struct {
	Pos         core.Vec2 // centre
	Velocity    core.Vec2
	Color       core.RGB
	Alpha       uint8
	Size        float64
	Age         float64
	Lifetime    float64
	InitialSize float64
	GrowRate    float64
	FadeRate    float64
}

// NewParticle creates a particle centred on pos.
func NewParticle(pos, vel core.Vec2, c core.RGB, initialSize, lifetime, growRate, fadeRate float64) Particle {
	return Particle{
		Pos:         pos,
		Velocity:    vel,
		Color:       c,
		Alpha:       alphaFor(0, lifetime, fadeRate),
		Size:        initialSize,
		Lifetime:    lifetime,
		InitialSize: initialSize,
		GrowRate:    growRate,
		FadeRate:    fadeRate,
	}
}

// Update moves the particle, grows it around its centre and fades it out.
func (p *Particle) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Velocity.Scale(dt))
	p.Age += dt
	p.Size = p.InitialSize + p.Age*p.GrowRate
	p.Alpha = alphaFor(p.Age, p.Lifetime, p.FadeRate)
}

// IsAlive reports whether the particle is still young and visible.
func (p *Particle) IsAlive() bool {
	return p.Age < p.Lifetime && p.Alpha > 0
}

// Rect returns the particle square centred on its position.
func (p *Particle) Rect() core.Rect {
	return core.NewRect(p.Pos.X-p.Size/2, p.Pos.Y-p.Size/2, p.Size, p.Size)
}

func alphaFor(age, lifetime, fadeRate float64) uint8 {
	if lifetime <= 0 {
		return 0
	}
	a := (lifetime - age) / lifetime * 255 * fadeRate
	return uint8(core.ClampF(a, 0, 255))
}

// Emitter receives particles spawned by entities. The Game implements it by
// appending to its own collection with its configured grow and fade rates.
type Emitter interface {
	Emit(pos, vel core.Vec2, c core.RGB, initialSize, lifetime float64)
}
