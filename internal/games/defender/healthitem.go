package defender

import (
	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
)

// HealthItemKind selects what a pickup restores.
type HealthItemKind int

const (
	HealthPlayer HealthItemKind = iota // restores the player to full health
	HealthWorld                        // restores the world to full health
)

// String returns the render key of the kind.
func (k HealthItemKind) String() string {
	if k == HealthWorld {
		return "health_world"
	}
	return "health_player"
}

// HealthItem is a falling pickup. Some items stop mid-air at a resting
// height; the rest fall until the Game reports ground contact, which starts
// a blink sequence ending in removal.
type HealthItem struct {
	Rect core.Rect
	Kind HealthItemKind

	fallSpeed  float64
	blinkPhase float64
	maxBlinks  int

	rests   bool
	restY   float64
	stopped bool

	blinking   bool
	blinkTimer float64
	blinkCount int // completed phases, two per blink
}

// NewHealthItem creates a pickup at (x, y). With probability cfg.RestChance it
// picks a resting height in [RestMinY, RestMaxY).
func NewHealthItem(kind HealthItemKind, x, y float64, cfg config.HealthItemConfig, rng *RNG) *HealthItem {
	h := &HealthItem{
		Rect:       core.NewRect(x, y, cfg.Width, cfg.Height),
		Kind:       kind,
		fallSpeed:  cfg.FallSpeed,
		blinkPhase: cfg.BlinkPhase,
		maxBlinks:  cfg.MaxBlinks,
	}
	if rng.Float64() < cfg.RestChance {
		h.rests = true
		h.restY = rng.Range(cfg.RestMinY, cfg.RestMaxY)
	}
	return h
}

// Update falls or advances the blink sequence.
func (h *HealthItem) Update(dt float64) {
	if h.blinking {
		h.blinkTimer += dt
		if h.blinkTimer >= h.blinkPhase {
			h.blinkTimer = 0
			h.blinkCount++
		}
		return
	}
	if h.stopped {
		return
	}
	if h.rests && h.Rect.Y >= h.restY {
		h.stopped = true
		return
	}
	h.Rect.Y += h.fallSpeed * dt
}

// StartBlinking begins the expiry sequence. Repeated calls are ignored.
func (h *HealthItem) StartBlinking() {
	if h.blinking {
		return
	}
	h.blinking = true
	h.blinkTimer = 0
	h.blinkCount = 0
}

// IsBlinking reports whether the expiry sequence has started.
func (h *HealthItem) IsBlinking() bool {
	return h.blinking
}

// IsResting reports whether the item stopped at its resting height.
func (h *HealthItem) IsResting() bool {
	return h.stopped
}

// IsAlive reports whether the blink sequence has not yet completed.
func (h *HealthItem) IsAlive() bool {
	return h.blinkCount < h.maxBlinks*2
}

// BlinkAlpha returns 255 or 0 for the renderer; always 255 before blinking.
func (h *HealthItem) BlinkAlpha() uint8 {
	if !h.blinking || h.blinkPhase <= 0 {
		return 255
	}
	if int(h.blinkTimer/(h.blinkPhase/2))%2 == 0 {
		return 255
	}
	return 0
}
