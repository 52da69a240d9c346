package defender

import (
	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
)

// Facing is the horizontal direction the ship points to.
type Facing int

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Player is the controlled ship. Movement comes from the Game via MoveBy;
// the player itself only shoots and emits engine particles.
type Player struct {
	Rect        core.Rect
	Facing      Facing
	Health      int
	MaxHealth   int
	Projectiles []Projectile

	normalSpeed float64
	boostMul    float64
	boosting    bool
	shotSpeed   float64
	shootHeld   bool // previous step's shoot state, for edge triggering

	shots  config.ProjectileConfig
	trail  config.ParticleConfig
	sounds SoundPlayer
}

// NewPlayer creates a ship with its top-left corner at (x, y).
func NewPlayer(x, y float64, cfg config.DefenderConfig, sounds SoundPlayer) *Player {
	if sounds == nil {
		sounds = Silent{}
	}
	pc := cfg.Player
	return &Player{
		Rect:        core.NewRect(x, y, pc.Width, pc.Height),
		Facing:      FacingRight,
		Health:      pc.MaxHealth,
		MaxHealth:   pc.MaxHealth,
		normalSpeed: pc.Speed,
		boostMul:    pc.BoostMultiplier,
		shotSpeed:   pc.ShotSpeed,
		shots:       cfg.Projectile,
		trail:       cfg.Particles,
		sounds:      sounds,
	}
}

// MoveBy translates the ship. Callers resolve boundary clamps.
func (p *Player) MoveBy(dx, dy float64) {
	p.Rect.X += dx
	p.Rect.Y += dy
}

// SetPosition places the ship's top-left corner.
func (p *Player) SetPosition(x, y float64) {
	p.Rect.X, p.Rect.Y = x, y
}

// SetSpeedBoost toggles between normal and boosted speed.
func (p *Player) SetSpeedBoost(active bool) {
	p.boosting = active
}

// Boosting reports whether the speed boost is active.
func (p *Player) Boosting() bool {
	return p.boosting
}

// Speed returns the current effective speed in pixels per second.
func (p *Player) Speed() float64 {
	if p.boosting {
		return p.normalSpeed * p.boostMul
	}
	return p.normalSpeed
}

// FrontCenter is where shots leave the ship.
func (p *Player) FrontCenter() core.Vec2 {
	y := p.Rect.Y + p.Rect.H/2
	if p.Facing == FacingLeft {
		return core.Vec2{X: p.Rect.X, Y: y}
	}
	return core.Vec2{X: p.Rect.Right(), Y: y}
}

// RearCenter is where engine particles leave the ship.
func (p *Player) RearCenter() core.Vec2 {
	y := p.Rect.Y + p.Rect.H/2
	if p.Facing == FacingLeft {
		return core.Vec2{X: p.Rect.Right(), Y: y}
	}
	return core.Vec2{X: p.Rect.X, Y: y}
}

// Shoot fires one beam from the front centre and requests the shot sound.
func (p *Player) Shoot() {
	beam := NewBeam(p.FrontCenter(), float64(p.Facing), p.shotSpeed, p.shots.BeamSize, p.shots.Lifetime)
	p.Projectiles = append(p.Projectiles, beam)
	p.sounds.Play(SoundPlayerShoot)
}

// HandleShoot fires on the rising edge of pressed and reports whether it did.
func (p *Player) HandleShoot(pressed bool) bool {
	fired := pressed && !p.shootHeld
	if fired {
		p.Shoot()
	}
	p.shootHeld = pressed
	return fired
}

// Update emits the engine trail: a thin stream every step plus a dense
// burst while boosting.
func (p *Player) Update(_ float64, rng *RNG, emit Emitter) {
	p.emitTrail(p.trail.Trail, rng, emit)
	if p.boosting {
		p.emitTrail(p.trail.BoostTrail, rng, emit)
	}
}

func (p *Player) emitTrail(tc config.TrailConfig, rng *RNG, emit Emitter) {
	rear := p.RearCenter()
	back := -float64(p.Facing) * tc.Speed
	for i := 0; i < tc.Count; i++ {
		pos := core.Vec2{
			X: rear.X + rng.Range(-tc.SpreadX/2, tc.SpreadX/2),
			Y: rear.Y + rng.Range(-tc.SpreadY/2, tc.SpreadY/2),
		}
		vel := core.Vec2{
			X: back + rng.Range(-tc.Jitter/2, tc.Jitter/2),
			Y: rng.Range(-tc.Jitter/2, tc.Jitter/2),
		}
		c := core.RGB{R: 255, G: uint8(rng.Between(tc.Green)), B: uint8(rng.Intn(50))}
		emit.Emit(pos, vel, c, p.trail.InitialSize, p.trail.Lifetime)
	}
}

// TakeDamage lowers health, floored at zero.
func (p *Player) TakeDamage(n int) {
	p.Health -= n
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal restores full health.
func (p *Player) Heal() {
	p.Health = p.MaxHealth
}

// IsAlive reports whether the ship has health left.
func (p *Player) IsAlive() bool {
	return p.Health > 0
}
