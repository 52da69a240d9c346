package defender

// checkCollisions resolves one frame of contacts in fixed order and reports
// whether the player died. Player death skips everything after it.
func (g *Game) checkCollisions() bool {
	g.resolvePlayerShots()
	g.removeDeadOpponents()

	if g.resolveBodyContact() {
		return true
	}
	g.removeDeadOpponents()

	if g.resolveOpponentShots() {
		return true
	}

	g.resolveHealthItems()
	return false
}

// resolvePlayerShots lets each player shot damage the first eligible
// opponent it overlaps. A shot is consumed by any hit.
func (g *Game) resolvePlayerShots() {
	shots := g.player.Projectiles
	kept := shots[:0]
	for _, s := range shots {
		if g.shotHitsOpponent(s) {
			continue
		}
		kept = append(kept, s)
	}
	g.player.Projectiles = kept
}

func (g *Game) shotHitsOpponent(s Projectile) bool {
	// Beams stop at the ground; anything past the clip point is hidden.
	clipX := 0.0
	if s.Horizontal {
		clipX = g.landscape.BeamEndX(s.Spawn, s.Direction, g.worldW)
	}

	for _, o := range g.opponents {
		if o == nil || !o.IsAlive() {
			continue
		}
		b := o.Bounds()
		if s.Horizontal {
			if s.Direction > 0 && b.X > clipX {
				continue
			}
			if s.Direction < 0 && b.Right() < clipX {
				continue
			}
		}
		if !b.Intersects(s.Rect) {
			continue
		}
		o.TakeDamage(1)
		if !o.IsAlive() {
			g.killOpponent(o)
		}
		return true
	}
	return false
}

// resolveBodyContact damages the player for every opponent it touches;
// the opponent is destroyed.
func (g *Game) resolveBodyContact() bool {
	pr := g.player.Rect
	for _, o := range g.opponents {
		if o == nil || !o.IsAlive() || !pr.Intersects(o.Bounds()) {
			continue
		}
		g.player.TakeDamage(1)
		o.TakeDamage(o.Health())
		g.killOpponent(o)
		if !g.player.IsAlive() {
			g.enterGameOver()
			return true
		}
	}
	return false
}

// resolveOpponentShots removes every opponent shot touching the player and
// applies its damage.
func (g *Game) resolveOpponentShots() bool {
	pr := g.player.Rect
	for _, o := range g.opponents {
		if o == nil || !o.IsAlive() {
			continue
		}
		shots := o.Projectiles()
		kept := (*shots)[:0]
		dead := false
		for _, s := range *shots {
			if dead || !pr.Intersects(s.Rect) {
				kept = append(kept, s)
				continue
			}
			g.player.TakeDamage(1)
			dead = !g.player.IsAlive()
		}
		*shots = kept
		if dead {
			g.enterGameOver()
			return true
		}
	}
	return false
}

// resolveHealthItems applies and removes every pickup the player touches.
// Blinking items can no longer be collected.
func (g *Game) resolveHealthItems() {
	pr := g.player.Rect
	n := 0
	for _, h := range g.healthItems {
		if h == nil {
			continue
		}
		if h.IsAlive() && !h.IsBlinking() && pr.Intersects(h.Rect) {
			g.applyHealthItem(h)
			continue
		}
		g.healthItems[n] = h
		n++
	}
	clear(g.healthItems[n:])
	g.healthItems = g.healthItems[:n]
}

func (g *Game) applyHealthItem(h *HealthItem) {
	switch h.Kind {
	case HealthPlayer:
		g.player.Heal()
	case HealthWorld:
		g.worldHealth = g.cfg.World.MaxHealth
	}
}

// killOpponent awards the score, counts the kill and blows the opponent up.
func (g *Game) killOpponent(o Opponent) {
	g.score += o.ScoreValue()
	g.stats.Kills[o.Kind()]++
	o.Explode(g.rng, g)
	g.sounds.Play(SoundOpponentExplode)
}

func (g *Game) removeDeadOpponents() {
	n := 0
	for _, o := range g.opponents {
		if o == nil || !o.IsAlive() {
			continue
		}
		g.opponents[n] = o
		n++
	}
	clear(g.opponents[n:])
	g.opponents = g.opponents[:n]
}
