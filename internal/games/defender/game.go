// Package defender implements the side-scrolling shooter simulation: the
// entity model, the fixed-step update, collision resolution, spawning,
// camera, high scores and the menu/playing/game-over state machine.
// Rendering, audio and input sampling live outside and talk to the Game
// through InputFrame, Snapshot and SoundPlayer.
package defender

import (
	"time"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
)

// Mode is the top-level state of the game.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
	ModeHowToPlay
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	case ModeHowToPlay:
		return "how_to_play"
	default:
		return "unknown"
	}
}

// Name entry limits.
const (
	MaxNameLength     = 10
	backspaceCooldown = 0.15 // seconds between repeated deletions
)

// Game owns the whole simulation state. It is not safe for concurrent use;
// each session drives its own Game.
type Game struct {
	cfg        config.DefenderConfig
	runtime    core.RuntimeConfig
	rng        *RNG
	sounds     SoundPlayer
	difficulty *config.DifficultyManager

	// Top-level state
	mode    Mode
	running bool

	// Geometry
	screenW, screenH float64
	worldW, worldH   float64
	cameraX          float64

	// Run state
	worldHealth int
	score       int
	player      *Player
	opponents   []Opponent
	particles   []Particle
	healthItems []*HealthItem
	landscape   Landscape
	stats       RunStats

	// Spawn timers (seconds since last spawn)
	spawnTimer        float64
	playerHealthTimer float64
	worldHealthTimer  float64

	// High scores and name entry
	highScores          *HighScoreList
	saver               HighScoreSaver
	waitingForHighScore bool
	highScoreIndex      int
	nameInput           []rune
	backspaceTimer      float64

	acc    Accumulator
	events []Event
}

// Option configures a Game.
type Option func(*Game)

// WithSound sets the sound trigger.
func WithSound(s SoundPlayer) Option {
	return func(g *Game) {
		if s != nil {
			g.sounds = s
		}
	}
}

// WithHighScores seeds the table with loaded entries and sets where
// submissions are persisted. saver may be nil.
func WithHighScores(entries []core.HighScore, saver HighScoreSaver) Option {
	return func(g *Game) {
		g.highScores = NewHighScoreList(entries)
		g.saver = saver
	}
}

// New creates a game in the menu.
func New(cfg config.DefenderConfig, runtime core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:            cfg,
		runtime:        runtime,
		rng:            NewRNG(runtime.Seed),
		sounds:         Silent{},
		difficulty:     config.NewDifficultyManager(cfg.Difficulty),
		mode:           ModeMenu,
		running:        true,
		screenW:        float64(runtime.ScreenW),
		screenH:        float64(runtime.ScreenH),
		worldW:         cfg.World.Width,
		worldH:         float64(runtime.ScreenH),
		worldHealth:    cfg.World.MaxHealth,
		highScores:     NewHighScoreList(nil),
		highScoreIndex: -1,
		acc:            Accumulator{Step: DefaultStep, MaxFrame: DefaultMaxFrame},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// StartNewGame resets every run-scoped field and enters PLAYING.
func (g *Game) StartNewGame() {
	g.opponents = nil
	g.particles = nil
	g.healthItems = nil
	g.cameraX = 0
	g.worldHealth = g.cfg.World.MaxHealth
	g.score = 0
	g.spawnTimer = 0
	g.playerHealthTimer = 0
	g.worldHealthTimer = 0
	g.stats = RunStats{Kills: make(map[string]int)}
	g.waitingForHighScore = false
	g.highScoreIndex = -1
	g.nameInput = nil
	g.acc.Reset()

	g.landscape = GenerateLandscape(g.rng, g.worldW, g.screenH, g.cfg.Landscape)

	pc := g.cfg.Player
	g.player = NewPlayer((g.worldW-pc.Width)/2, pc.StartY, g.cfg, g.sounds)
	g.clampPlayer()
	g.updateCamera()

	g.mode = ModePlaying
	g.sounds.Play(SoundGameStart)
}

// HandleInput applies mode transitions and name entry. It runs once per
// frame; dt is the frame time in seconds.
func (g *Game) HandleInput(in core.InputFrame, dt float64) {
	if in.Has(core.ActionQuit) {
		g.running = false
		return
	}

	switch g.mode {
	case ModeMenu:
		g.handleMenuInput(in)
	case ModeHowToPlay:
		if in.Has(core.ActionEnter) || in.Has(core.ActionEscape) || in.Has(core.ActionClick) {
			g.mode = ModeMenu
		}
	case ModePlaying:
		if in.Has(core.ActionEscape) {
			g.returnToMenu()
		}
	case ModeGameOver:
		g.handleGameOverInput(in, dt)
	}
}

func (g *Game) handleMenuInput(in core.InputFrame) {
	cmd, clicked := CommandNone, false
	if in.Has(core.ActionClick) {
		cmd, clicked = g.buttonAt(in.MouseX, in.MouseY)
	}
	switch {
	case in.Has(core.ActionEnter) || (clicked && cmd == CommandPlay):
		g.StartNewGame()
	case in.Has(core.ActionHelp) || (clicked && cmd == CommandHowToPlay):
		g.mode = ModeHowToPlay
	case in.Has(core.ActionEscape) || (clicked && cmd == CommandExit):
		g.running = false
	}
}

func (g *Game) handleGameOverInput(in core.InputFrame, dt float64) {
	closeClicked := in.Has(core.ActionClick) && CloseButton(g.screenW).Contains(in.MouseX, in.MouseY)

	if !g.waitingForHighScore {
		if in.Has(core.ActionEnter) || in.Has(core.ActionEscape) || in.Has(core.ActionClick) {
			g.returnToMenu()
		}
		return
	}

	// Name entry
	if g.backspaceTimer > 0 {
		g.backspaceTimer -= dt
	}
	if r := in.Char; r != 0 && len(g.nameInput) < MaxNameLength && isNameRune(r) {
		g.nameInput = append(g.nameInput, r)
	}
	if in.Has(core.ActionBackspace) && g.backspaceTimer <= 0 && len(g.nameInput) > 0 {
		g.nameInput = g.nameInput[:len(g.nameInput)-1]
		g.backspaceTimer = backspaceCooldown
	}

	if in.Has(core.ActionEnter) || in.Has(core.ActionEscape) || closeClicked {
		g.SubmitHighScore(string(g.nameInput))
		g.returnToMenu()
	}
}

// isNameRune reports whether r may appear in a high-score name.
func isNameRune(r rune) bool {
	return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' '
}

// SubmitHighScore inserts the current score under name and persists the
// table. It returns false, changing nothing, when the score no longer
// qualifies.
func (g *Game) SubmitHighScore(name string) bool {
	idx := g.highScores.Insert(name, g.score)
	if idx < 0 {
		return false
	}
	g.highScoreIndex = idx
	g.waitingForHighScore = false

	entry := g.highScores.Entries()[idx]
	if g.saver == nil {
		return true
	}
	if err := g.saver.SaveHighScores(g.highScores.Entries()); err != nil {
		g.emit(Event{Kind: EventHighScoresSaveFailed, Entry: entry, Err: err})
	} else {
		g.emit(Event{Kind: EventHighScoresSaved, Entry: entry})
	}
	return true
}

// returnToMenu abandons the run and clears every run-scoped entity.
func (g *Game) returnToMenu() {
	g.mode = ModeMenu
	g.player = nil
	g.opponents = nil
	g.particles = nil
	g.healthItems = nil
	g.waitingForHighScore = false
	g.nameInput = nil
	g.acc.Reset()
}

// enterGameOver ends the run. Called exactly once per run.
func (g *Game) enterGameOver() {
	g.mode = ModeGameOver
	g.opponents = nil
	g.sounds.Play(SoundGameOver)

	g.highScoreIndex = g.highScores.Index(g.score)
	g.waitingForHighScore = g.highScoreIndex >= 0
	g.nameInput = nil
	g.backspaceTimer = 0

	g.emit(Event{Kind: EventRunEnded, Stats: g.Stats()})
}

// Frame runs one platform frame: input once, then as many fixed steps as
// the accumulated time allows while PLAYING. Steps reuse the frame's held
// actions without its one-shot events.
func (g *Game) Frame(in core.InputFrame, frameDelta time.Duration) {
	g.HandleInput(in, frameDelta.Seconds())
	if g.mode != ModePlaying {
		g.acc.Reset()
		return
	}

	steps := g.acc.Advance(frameDelta)
	step := g.acc.StepSeconds()
	held := in.WithoutEvents()
	for i := 0; i < steps && g.mode == ModePlaying; i++ {
		g.Update(step, held)
	}
}

// Resize follows the viewport. The world height tracks the screen height
// and the landscape moves with the screen bottom.
func (g *Game) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	newH := float64(h)
	dy := newH - g.screenH
	g.screenW, g.screenH = float64(w), newH
	g.worldH = newH
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if dy != 0 {
		g.landscape.Shift(dy)
	}
	if g.player != nil {
		g.clampPlayer()
	}
	g.updateCamera()
}

// Emit implements Emitter by appending a particle with the configured
// growth and fade.
func (g *Game) Emit(pos, vel core.Vec2, c core.RGB, initialSize, lifetime float64) {
	pc := g.cfg.Particles
	g.particles = append(g.particles, NewParticle(pos, vel, c, initialSize, lifetime, pc.GrowRate, pc.FadeRate))
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// Events drains pending notifications.
func (g *Game) Events() []Event {
	ev := g.events
	g.events = nil
	return ev
}

// Accessors

func (g *Game) Mode() Mode { return g.mode }
func (g *Game) Running() bool { return g.running }
func (g *Game) Score() int { return g.score }
func (g *Game) WorldHealth() int { return g.worldHealth }
func (g *Game) CameraX() float64 { return g.cameraX }
func (g *Game) Player() *Player { return g.player }
func (g *Game) Opponents() []Opponent { return g.opponents }
func (g *Game) Particles() []Particle { return g.particles }
func (g *Game) HealthItems() []*HealthItem { return g.healthItems }
func (g *Game) Landscape() Landscape { return g.landscape }
func (g *Game) HighScores() []core.HighScore { return g.highScores.Entries() }
func (g *Game) WaitingForHighScore() bool { return g.waitingForHighScore }
func (g *Game) HighScoreIndex() int { return g.highScoreIndex }
func (g *Game) NameInput() string { return string(g.nameInput) }
func (g *Game) Config() config.DefenderConfig { return g.cfg }
func (g *Game) IsHighScore(score int) bool { return g.highScores.IsHighScore(score) }
func (g *Game) MaxCameraX() float64 { return max(0, g.worldW-g.screenW) }
func (g *Game) ScreenSize() (float64, float64) { return g.screenW, g.screenH }
func (g *Game) WorldSize() (float64, float64) { return g.worldW, g.worldH }

// Stats returns a copy of the current run statistics.
func (g *Game) Stats() RunStats {
	s := g.stats.clone()
	s.Score = g.score
	s.WorldHealth = g.worldHealth
	if g.player != nil {
		s.PlayerHealth = g.player.Health
	}
	return s
}
