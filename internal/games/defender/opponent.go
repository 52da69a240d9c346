package defender

import (
	"math"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/registry"
)

// Opponent kinds, also used as render keys.
const (
	KindBasic      = "basic"
	KindAggressive = "aggressive"
	KindSniper     = "sniper"
)

// Opponent is the contract shared by every enemy variant.
type Opponent interface {
	Kind() string
	Bounds() core.Rect
	Health() int
	ScoreValue() int
	// DamagesWorldOnImpact reports whether touching the ground costs world health.
	DamagesWorldOnImpact() bool
	// Projectiles exposes the opponent's shots. The Game advances and prunes them.
	Projectiles() *[]Projectile

	Update(dt float64, ctx UpdateContext)
	Explode(rng *RNG, emit Emitter)
	TakeDamage(n int)
	IsAlive() bool
	IsOnScreen(cameraX, screenW float64) bool
}

// UpdateContext is the read-only view of the world an opponent acts on.
type UpdateContext struct {
	PlayerCenter core.Vec2
	CameraX      float64
	ScreenW      float64
	RNG          *RNG
	Shots        config.ProjectileConfig
}

// OpponentFactory builds an opponent with its top-left corner at (x, y).
type OpponentFactory func(x, y float64, cfg config.OpponentsConfig, rng *RNG) Opponent

var variants = registry.New[OpponentFactory]()

func init() {
	variants.Register(KindBasic, func(x, y float64, cfg config.OpponentsConfig, _ *RNG) Opponent {
		return NewBasic(x, y, cfg.Basic)
	})
	variants.Register(KindAggressive, func(x, y float64, cfg config.OpponentsConfig, _ *RNG) Opponent {
		return NewAggressive(x, y, cfg.Aggressive)
	})
	variants.Register(KindSniper, func(x, y float64, cfg config.OpponentsConfig, rng *RNG) Opponent {
		return NewSniper(x, y, cfg.Sniper, rng)
	})
}

// Variants returns the registered opponent kinds in spawn-pick order.
func Variants() []string {
	return variants.List()
}

// NewOpponent builds a registered variant by kind.
func NewOpponent(kind string, x, y float64, cfg config.OpponentsConfig, rng *RNG) (Opponent, error) {
	f, err := variants.Get(kind)
	if err != nil {
		return nil, err
	}
	return f(x, y, cfg, rng), nil
}

// opponentBase carries the state and behaviour every variant shares.
type opponentBase struct {
	rect         core.Rect
	kind         string
	health       int
	score        int
	damagesWorld bool
	projectiles  []Projectile
	explosion    config.ExplosionConfig
}

func newOpponentBase(kind string, x, y float64, cfg config.OpponentConfig) opponentBase {
	return opponentBase{
		rect:         core.NewRect(x, y, cfg.Width, cfg.Height),
		kind:         kind,
		health:       cfg.Health,
		score:        cfg.Score,
		damagesWorld: cfg.DamagesWorldOnImpact,
		explosion:    cfg.Explosion,
	}
}

func (b *opponentBase) Kind() string { return b.kind }
func (b *opponentBase) Bounds() core.Rect { return b.rect }
func (b *opponentBase) Health() int { return b.health }
func (b *opponentBase) ScoreValue() int { return b.score }
func (b *opponentBase) DamagesWorldOnImpact() bool { return b.damagesWorld }
func (b *opponentBase) Projectiles() *[]Projectile { return &b.projectiles }
func (b *opponentBase) IsAlive() bool { return b.health > 0 }

func (b *opponentBase) TakeDamage(n int) {
	b.health -= n
	if b.health < 0 {
		b.health = 0
	}
}

// IsOnScreen tests the horizontal centre only; the world is never taller
// than the viewport.
func (b *opponentBase) IsOnScreen(cameraX, screenW float64) bool {
	cx := b.rect.Center().X
	return cx >= cameraX && cx <= cameraX+screenW
}

// Explode emits a radial particle burst from the centre.
func (b *opponentBase) Explode(rng *RNG, emit Emitter) {
	e := b.explosion
	if e.Count <= 0 {
		return
	}
	center := b.rect.Center()
	for i := 0; i < e.Count; i++ {
		angle := float64(i)/float64(e.Count)*2*math.Pi + rng.Float64()*e.AngleJitter
		speed := rng.Range(e.SpeedMin, e.SpeedMax)
		vel := core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		c := core.RGB{
			R: uint8(rng.Between(e.Red)),
			G: uint8(rng.Between(e.Green)),
			B: uint8(rng.Between(e.Blue)),
		}
		emit.Emit(center, vel, c, e.InitialSize, e.Lifetime)
	}
}

// fire appends an aimed shot from the centre towards target.
func (b *opponentBase) fire(target core.Vec2, speed float64, shots config.ProjectileConfig) {
	b.projectiles = append(b.projectiles, NewAimed(b.rect.Center(), target, speed, shots.AimedSize, shots.Lifetime))
}

// Basic falls straight down, swaying around its spawn x. It never fires
// and is the variant that costs world health on impact.
type Basic struct {
	opponentBase
	startX    float64
	angle     float64
	speed     float64
	amplitude float64
	frequency float64
}

// NewBasic creates a basic opponent.
func NewBasic(x, y float64, cfg config.OpponentConfig) *Basic {
	return &Basic{
		opponentBase: newOpponentBase(KindBasic, x, y, cfg),
		startX:       x,
		speed:        cfg.Speed,
		amplitude:    cfg.Amplitude,
		frequency:    cfg.Frequency,
	}
}

// Update implements Opponent.
func (o *Basic) Update(dt float64, _ UpdateContext) {
	o.angle += o.frequency * dt
	o.rect.Y += o.speed * dt
	o.rect.X = o.startX + math.Sin(o.angle)*o.amplitude
}

// Aggressive chases a noisy point near the player and shoots at it.
type Aggressive struct {
	opponentBase
	speed        float64
	aimNoise     float64
	fireInterval float64
	fireTimer    float64
	shotSpeed    float64
}

// NewAggressive creates an aggressive opponent.
func NewAggressive(x, y float64, cfg config.OpponentConfig) *Aggressive {
	return &Aggressive{
		opponentBase: newOpponentBase(KindAggressive, x, y, cfg),
		speed:        cfg.Speed,
		aimNoise:     cfg.AimNoise,
		fireInterval: cfg.FireInterval,
		shotSpeed:    cfg.ShotSpeed,
	}
}

// Update implements Opponent.
func (o *Aggressive) Update(dt float64, ctx UpdateContext) {
	target := ctx.PlayerCenter
	target.X += ctx.RNG.Float64()*o.aimNoise - o.aimNoise/2

	c := o.rect.Center()
	if dx := target.X - c.X; math.Abs(dx) > 1 {
		o.rect.X += math.Copysign(o.speed*dt, dx)
	}
	if dy := target.Y - c.Y; math.Abs(dy) > 1 {
		o.rect.Y += math.Copysign(o.speed*dt, dy)
	}

	o.fireTimer += dt
	if o.fireTimer >= o.fireInterval && o.IsOnScreen(ctx.CameraX, ctx.ScreenW) {
		o.fireTimer = 0
		o.fire(target, o.shotSpeed, ctx.Shots)
	}
}

// Sniper drifts down slowly and fires fast shots at the player's exact centre.
type Sniper struct {
	opponentBase
	startX       float64
	angle        float64
	phase        float64
	speed        float64
	amplitude    float64
	frequency    float64
	fireInterval float64
	fireTimer    float64
	shotSpeed    float64
}

// NewSniper creates a sniper with a random oscillation phase.
func NewSniper(x, y float64, cfg config.OpponentConfig, rng *RNG) *Sniper {
	return &Sniper{
		opponentBase: newOpponentBase(KindSniper, x, y, cfg),
		startX:       x,
		phase:        rng.Range(0, 2*math.Pi),
		speed:        cfg.Speed,
		amplitude:    cfg.Amplitude,
		frequency:    cfg.Frequency,
		fireInterval: cfg.FireInterval,
		shotSpeed:    cfg.ShotSpeed,
	}
}

// Update implements Opponent.
func (o *Sniper) Update(dt float64, ctx UpdateContext) {
	o.angle += o.frequency * dt
	o.rect.Y += o.speed * dt
	o.rect.X = o.startX + math.Sin(o.angle+o.phase)*o.amplitude

	o.fireTimer += dt
	if o.fireTimer >= o.fireInterval && o.IsOnScreen(ctx.CameraX, ctx.ScreenW) {
		o.fireTimer = 0
		o.fire(ctx.PlayerCenter, o.shotSpeed, ctx.Shots)
	}
}
