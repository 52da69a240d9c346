package defender

// updateSpawns runs the three independent spawn timers.
func (g *Game) updateSpawns(dt float64) {
	wc := g.cfg.World

	g.spawnTimer += dt
	interval := g.difficulty.SpawnInterval(wc.SpawnInterval, g.score, g.stats.Ticks)
	if interval > 0 && g.spawnTimer >= interval {
		g.spawnTimer = 0
		g.spawnOpponent()
	}

	g.playerHealthTimer += dt
	if wc.PlayerHealthInterval > 0 && g.playerHealthTimer >= wc.PlayerHealthInterval {
		g.playerHealthTimer = 0
		g.spawnHealthItem(HealthPlayer)
	}

	g.worldHealthTimer += dt
	if wc.WorldHealthInterval > 0 && g.worldHealthTimer >= wc.WorldHealthInterval {
		g.worldHealthTimer = 0
		g.spawnHealthItem(HealthWorld)
	}
}

// spawnOpponent adds a uniformly chosen variant above the world at a
// random x.
func (g *Game) spawnOpponent() {
	kinds := Variants()
	if len(kinds) == 0 {
		return
	}
	kind := kinds[g.rng.Intn(len(kinds))]
	x := float64(g.rng.Intn(int(g.worldW) - 50))
	o, err := NewOpponent(kind, x, g.cfg.Opponents.SpawnY, g.cfg.Opponents, g.rng)
	if err != nil {
		return
	}
	g.opponents = append(g.opponents, o)
}

// AddOpponent inserts an opponent directly, bypassing the spawn timer.
func (g *Game) AddOpponent(o Opponent) {
	if o != nil {
		g.opponents = append(g.opponents, o)
	}
}

func (g *Game) spawnHealthItem(kind HealthItemKind) {
	hc := g.cfg.HealthItems
	x := float64(g.rng.Intn(int(g.worldW - hc.Width)))
	g.healthItems = append(g.healthItems, NewHealthItem(kind, x, 0, hc, g.rng))
}

// AddHealthItem inserts a pickup directly, bypassing its timer.
func (g *Game) AddHealthItem(h *HealthItem) {
	if h != nil {
		g.healthItems = append(g.healthItems, h)
	}
}
