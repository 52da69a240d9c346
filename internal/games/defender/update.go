package defender

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-defender/internal/core"
)

// Update advances the simulation by one fixed step. It does nothing outside
// PLAYING. A step that ends the run returns right after the transition.
func (g *Game) Update(dt float64, in core.InputFrame) {
	if g.mode != ModePlaying || g.player == nil {
		return
	}
	g.stats.Ticks++
	g.stats.Elapsed += time.Duration(dt * float64(time.Second))

	// 1. Player, its shots and boundary clamps
	g.updatePlayer(dt, in)

	// 2. Opponents, their shots and ground impacts
	if g.updateOpponents(dt) {
		return
	}

	// 3. Particles
	g.updateParticles(dt)

	// 4. Health items
	g.updateHealthItems(dt)

	// 5. Spawn timers
	g.updateSpawns(dt)

	// 6. Collisions
	if g.checkCollisions() {
		return
	}

	// 7. Camera
	g.updateCamera()
}

func (g *Game) updatePlayer(dt float64, in core.InputFrame) {
	p := g.player

	p.SetSpeedBoost(in.Has(core.ActionBoost))
	step := p.Speed() * dt

	var dx, dy float64
	if in.Has(core.ActionLeft) {
		dx -= step
		p.Facing = FacingLeft
	}
	if in.Has(core.ActionRight) {
		dx += step
		p.Facing = FacingRight
	}
	if in.Has(core.ActionUp) {
		dy -= step
	}
	if in.Has(core.ActionDown) {
		dy += step
	}
	p.MoveBy(dx, dy)
	g.clampPlayer()

	if p.HandleShoot(in.Has(core.ActionShoot)) {
		g.stats.ShotsFired++
	}

	p.Update(dt, g.rng, g)

	// Player shots leave on lifetime or when far outside the world
	kept := p.Projectiles[:0]
	for _, s := range p.Projectiles {
		s.Update(dt)
		if s.Expired() || s.outside(g.worldW, g.worldH, g.cfg.World.PruneMargin) {
			continue
		}
		kept = append(kept, s)
	}
	p.Projectiles = kept
}

// clampPlayer keeps the ship inside the world, below the HUD and above the
// ground under its centre.
func (g *Game) clampPlayer() {
	r := &g.player.Rect
	hud := g.cfg.World.HUDHeight

	r.X = core.ClampF(r.X, 0, math.Max(0, g.worldW-r.W))
	r.Y = core.ClampF(r.Y, hud, math.Max(hud, g.worldH-r.H))

	ground := g.landscape.GroundYAt(r.Center().X)
	if r.Bottom() > ground {
		r.Y = math.Max(ground-r.H, hud)
	}
}

// updateOpponents moves every opponent and resolves ground impacts. It
// reports whether the run ended.
func (g *Game) updateOpponents(dt float64) bool {
	ctx := UpdateContext{
		PlayerCenter: g.player.Rect.Center(),
		CameraX:      g.cameraX,
		ScreenW:      g.screenW,
		RNG:          g.rng,
		Shots:        g.cfg.Projectile,
	}

	n := 0
	for _, o := range g.opponents {
		if o == nil || !o.IsAlive() {
			continue
		}
		o.Update(dt, ctx)
		g.updateOpponentShots(o, dt)

		c := o.Bounds().Center()
		if c.Y >= g.landscape.GroundYAt(c.X) || c.Y >= g.worldH {
			o.Explode(g.rng, g)
			g.sounds.Play(SoundOpponentExplode)
			if o.DamagesWorldOnImpact() && g.worldHealth > 0 {
				g.worldHealth--
			}
			continue
		}
		g.opponents[n] = o
		n++
	}
	clear(g.opponents[n:])
	g.opponents = g.opponents[:n]

	if g.worldHealth <= 0 {
		g.worldHealth = 0
		g.enterGameOver()
		return true
	}
	return false
}

// updateOpponentShots advances one opponent's shots and prunes those that
// expired, left the world or crossed the ground under them.
func (g *Game) updateOpponentShots(o Opponent, dt float64) {
	shots := o.Projectiles()
	kept := (*shots)[:0]
	for _, s := range *shots {
		s.Update(dt)
		if s.Expired() || s.outside(g.worldW, g.worldH, g.cfg.World.PruneMargin) {
			continue
		}
		if s.Rect.Bottom() >= g.landscape.GroundYAt(s.Rect.Center().X) {
			continue
		}
		kept = append(kept, s)
	}
	*shots = kept
}

func (g *Game) updateParticles(dt float64) {
	kept := g.particles[:0]
	for _, p := range g.particles {
		p.Update(dt)
		if p.IsAlive() {
			kept = append(kept, p)
		}
	}
	g.particles = kept
}

func (g *Game) updateHealthItems(dt float64) {
	n := 0
	for _, h := range g.healthItems {
		if h == nil {
			continue
		}
		h.Update(dt)
		if !h.IsBlinking() {
			ground := g.landscape.GroundYAt(h.Rect.Center().X)
			if h.Rect.Bottom() >= ground {
				h.Rect.Y = ground - h.Rect.H
				h.StartBlinking()
			}
		}
		if !h.IsAlive() {
			continue
		}
		g.healthItems[n] = h
		n++
	}
	clear(g.healthItems[n:])
	g.healthItems = g.healthItems[:n]
}

// updateCamera follows the player horizontally.
func (g *Game) updateCamera() {
	if g.player == nil {
		return
	}
	target := g.player.Rect.Center().X - g.screenW/2
	g.cameraX = core.ClampF(target, 0, g.MaxCameraX())
}
