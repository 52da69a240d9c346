package defender

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/tui-defender/internal/core"
)

// MenuCommand is what a menu button does.
type MenuCommand int

const (
	CommandNone MenuCommand = iota
	CommandPlay
	CommandHowToPlay
	CommandExit
)

// Button is a clickable menu entry in screen pixels.
type Button struct {
	Label   string
	Command MenuCommand
	Rect    core.Rect
}

// Menu button layout.
const (
	ButtonWidth  = 200
	ButtonHeight = 50
	ButtonGap    = 20
	CloseSize    = 20
	CloseMargin  = 10
)

// MenuButtons lays the three menu buttons out vertically around the
// screen centre.
func MenuButtons(screenW, screenH float64) []Button {
	labels := []struct {
		label string
		cmd   MenuCommand
	}{
		{"Play", CommandPlay},
		{"How to Play", CommandHowToPlay},
		{"Exit", CommandExit},
	}
	total := float64(len(labels))*ButtonHeight + float64(len(labels)-1)*ButtonGap
	x := (screenW - ButtonWidth) / 2
	y := (screenH - total) / 2

	buttons := make([]Button, 0, len(labels))
	for _, l := range labels {
		buttons = append(buttons, Button{
			Label:   l.label,
			Command: l.cmd,
			Rect:    core.NewRect(x, y, ButtonWidth, ButtonHeight),
		})
		y += ButtonHeight + ButtonGap
	}
	return buttons
}

// CloseButton is the game-over close box at the top-right corner.
func CloseButton(screenW float64) core.Rect {
	return core.NewRect(screenW-CloseSize-CloseMargin, CloseMargin, CloseSize, CloseSize)
}

func (g *Game) buttonAt(x, y float64) (MenuCommand, bool) {
	for _, b := range MenuButtons(g.screenW, g.screenH) {
		if b.Rect.Contains(x, y) {
			return b.Command, true
		}
	}
	return CommandNone, false
}

// PlayerView is the render data of the ship.
type PlayerView struct {
	Rect      core.Rect
	Facing    Facing
	Boosting  bool
	Health    int
	MaxHealth int
}

// OpponentView is the render data of one opponent.
type OpponentView struct {
	Kind   string
	Rect   core.Rect
	Health int
}

// ProjectileView is the render data of one shot. Beams are drawn as a line
// from Spawn to EndX, already clipped by the landscape.
type ProjectileView struct {
	Rect       core.Rect
	Spawn      core.Vec2
	Horizontal bool
	EndX       float64
}

// ParticleView is the render data of one particle.
type ParticleView struct {
	Rect  core.Rect
	Color core.RGB
	Alpha uint8
}

// HealthItemView is the render data of one pickup.
type HealthItemView struct {
	Kind  HealthItemKind
	Rect  core.Rect
	Alpha uint8
}

// Snapshot is a read-only copy of everything a renderer needs. It shares
// no memory with the Game.
type Snapshot struct {
	Mode    Mode
	Running bool

	ScreenW, ScreenH float64
	WorldW, WorldH   float64
	CameraX          float64

	WorldHealth    int
	MaxWorldHealth int
	Score          int

	Player        *PlayerView
	Opponents     []OpponentView
	PlayerShots   []ProjectileView
	OpponentShots []ProjectileView
	Particles     []ParticleView
	HealthItems   []HealthItemView
	Landscape     []core.Vec2

	HighScores          []core.HighScore
	WaitingForHighScore bool
	HighScoreIndex      int
	NameInput           string

	Stats   RunStats
	Buttons []Button
	Close   core.Rect
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:                g.mode,
		Running:             g.running,
		ScreenW:             g.screenW,
		ScreenH:             g.screenH,
		WorldW:              g.worldW,
		WorldH:              g.worldH,
		CameraX:             g.cameraX,
		WorldHealth:         g.worldHealth,
		MaxWorldHealth:      g.cfg.World.MaxHealth,
		Score:               g.score,
		Landscape:           append([]core.Vec2(nil), g.landscape.Points...),
		HighScores:          g.highScores.Entries(),
		WaitingForHighScore: g.waitingForHighScore,
		HighScoreIndex:      g.highScoreIndex,
		NameInput:           string(g.nameInput),
		Stats:               g.Stats(),
		Buttons:             MenuButtons(g.screenW, g.screenH),
		Close:               CloseButton(g.screenW),
	}

	if p := g.player; p != nil {
		s.Player = &PlayerView{
			Rect:      p.Rect,
			Facing:    p.Facing,
			Boosting:  p.Boosting(),
			Health:    p.Health,
			MaxHealth: p.MaxHealth,
		}
		for _, shot := range p.Projectiles {
			s.PlayerShots = append(s.PlayerShots, g.projectileView(shot))
		}
	}

	for _, o := range g.opponents {
		if o == nil || !o.IsAlive() {
			continue
		}
		s.Opponents = append(s.Opponents, OpponentView{Kind: o.Kind(), Rect: o.Bounds(), Health: o.Health()})
		for _, shot := range *o.Projectiles() {
			s.OpponentShots = append(s.OpponentShots, g.projectileView(shot))
		}
	}

	s.Particles = make([]ParticleView, 0, len(g.particles))
	for i := range g.particles {
		p := &g.particles[i]
		s.Particles = append(s.Particles, ParticleView{Rect: p.Rect(), Color: p.Color, Alpha: p.Alpha})
	}

	for _, h := range g.healthItems {
		s.HealthItems = append(s.HealthItems, HealthItemView{Kind: h.Kind, Rect: h.Rect, Alpha: h.BlinkAlpha()})
	}
	return s
}

func (g *Game) projectileView(p Projectile) ProjectileView {
	v := ProjectileView{Rect: p.Rect, Spawn: p.Spawn, Horizontal: p.Horizontal}
	if p.Horizontal {
		v.EndX = g.landscape.BeamEndX(p.Spawn, p.Direction, g.worldW)
		// the beam never reaches past its own head
		if head := p.Rect.Center().X; math.Abs(head-p.Spawn.X) < math.Abs(v.EndX-p.Spawn.X) {
			v.EndX = head
		}
	}
	return v
}

// Hash returns a digest of the gameplay-relevant state. Two runs with the
// same seed and inputs produce the same hash.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%.3f|%d|%d|", s.Mode, s.CameraX, s.WorldHealth, s.Score)
	if s.Player != nil {
		fmt.Fprintf(h, "p%.3f,%.3f,%d|", s.Player.Rect.X, s.Player.Rect.Y, s.Player.Health)
	}
	for _, o := range s.Opponents {
		fmt.Fprintf(h, "o%s,%.3f,%.3f,%d|", o.Kind, o.Rect.X, o.Rect.Y, o.Health)
	}
	for _, p := range s.PlayerShots {
		fmt.Fprintf(h, "s%.3f,%.3f|", p.Rect.X, p.Rect.Y)
	}
	for _, p := range s.OpponentShots {
		fmt.Fprintf(h, "e%.3f,%.3f|", p.Rect.X, p.Rect.Y)
	}
	for _, it := range s.HealthItems {
		fmt.Fprintf(h, "h%d,%.3f,%.3f|", it.Kind, it.Rect.X, it.Rect.Y)
	}
	fmt.Fprintf(h, "n%d", len(s.Particles))
	return h.Sum64()
}
