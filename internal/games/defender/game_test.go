package defender

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
)

type soundRecorder struct {
	played []SoundID
}

func (r *soundRecorder) Play(id SoundID) {
	r.played = append(r.played, id)
}

func (r *soundRecorder) count(id SoundID) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

type memorySaver struct {
	saved [][]core.HighScore
	err   error
}

func (m *memorySaver) SaveHighScores(entries []core.HighScore) error {
	m.saved = append(m.saved, entries)
	return m.err
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 60, Seed: 42}
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	return New(config.DefaultDefenderConfig(), testRuntime(), opts...)
}

func startedGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := newTestGame(t, opts...)
	g.StartNewGame()
	if g.Mode() != ModePlaying {
		t.Fatalf("StartNewGame: mode = %v, want playing", g.Mode())
	}
	return g
}

func flatGround(g *Game, y float64) {
	g.landscape = Landscape{Points: []core.Vec2{{X: 0, Y: y}, {X: g.worldW, Y: y}}}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

const step = 1.0 / 60

func TestNewGameStartsInMenu(t *testing.T) {
	g := newTestGame(t)

	if g.Mode() != ModeMenu {
		t.Errorf("mode = %v, want menu", g.Mode())
	}
	if !g.Running() {
		t.Error("new game should be running")
	}
	if g.Player() != nil {
		t.Error("menu should have no player")
	}
}

func TestStartNewGameResetsRun(t *testing.T) {
	sounds := &soundRecorder{}
	g := startedGame(t, WithSound(sounds))
	cfg := g.Config()

	p := g.Player()
	if p == nil {
		t.Fatal("player should exist while playing")
	}
	if got, want := p.Rect.Center().X, g.worldW/2; got != want {
		t.Errorf("player centre x = %v, want %v", got, want)
	}
	if g.WorldHealth() != cfg.World.MaxHealth {
		t.Errorf("world health = %d, want %d", g.WorldHealth(), cfg.World.MaxHealth)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	if len(g.Landscape().Points) == 0 {
		t.Error("landscape should be generated")
	}
	if sounds.count(SoundGameStart) != 1 {
		t.Errorf("game start sound played %d times, want 1", sounds.count(SoundGameStart))
	}
}

func TestMenuTransitions(t *testing.T) {
	center := func(b Button) (float64, float64) {
		c := b.Rect.Center()
		return c.X, c.Y
	}
	buttons := MenuButtons(800, 600)

	tests := []struct {
		name        string
		input       func() core.InputFrame
		wantMode    Mode
		wantRunning bool
	}{
		{"enter starts", func() core.InputFrame { return press(core.ActionEnter) }, ModePlaying, true},
		{"help opens how to play", func() core.InputFrame { return press(core.ActionHelp) }, ModeHowToPlay, true},
		{"escape exits", func() core.InputFrame { return press(core.ActionEscape) }, ModeMenu, false},
		{"quit exits", func() core.InputFrame { return press(core.ActionQuit) }, ModeMenu, false},
		{"click play", func() core.InputFrame {
			in := core.NewInputFrame()
			in.Click(center(buttons[0]))
			return in
		}, ModePlaying, true},
		{"click how to play", func() core.InputFrame {
			in := core.NewInputFrame()
			in.Click(center(buttons[1]))
			return in
		}, ModeHowToPlay, true},
		{"click exit", func() core.InputFrame {
			in := core.NewInputFrame()
			in.Click(center(buttons[2]))
			return in
		}, ModeMenu, false},
		{"click outside buttons", func() core.InputFrame {
			in := core.NewInputFrame()
			in.Click(5, 5)
			return in
		}, ModeMenu, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.HandleInput(tt.input(), step)
			if g.Mode() != tt.wantMode {
				t.Errorf("mode = %v, want %v", g.Mode(), tt.wantMode)
			}
			if g.Running() != tt.wantRunning {
				t.Errorf("running = %v, want %v", g.Running(), tt.wantRunning)
			}
		})
	}
}

func TestHowToPlayReturnsToMenu(t *testing.T) {
	g := newTestGame(t)
	g.HandleInput(press(core.ActionHelp), step)

	in := core.NewInputFrame()
	in.Click(1, 1)
	g.HandleInput(in, step)

	if g.Mode() != ModeMenu {
		t.Errorf("mode = %v, want menu", g.Mode())
	}
}

func TestEscapeAbandonsRun(t *testing.T) {
	saver := &memorySaver{}
	g := startedGame(t, WithHighScores(nil, saver))
	g.score = 900

	g.HandleInput(press(core.ActionEscape), step)

	if g.Mode() != ModeMenu {
		t.Errorf("mode = %v, want menu", g.Mode())
	}
	if g.Player() != nil {
		t.Error("player should be cleared in menu")
	}
	if len(g.HighScores()) != 0 || len(saver.saved) != 0 {
		t.Error("abandoned run must not be saved")
	}
}

// A basic opponent reaching the ground with one world health left ends the
// run in the same step.
func TestBasicImpactEndsRunSameStep(t *testing.T) {
	sounds := &soundRecorder{}
	g := startedGame(t, WithSound(sounds))
	flatGround(g, 550)
	g.worldHealth = 1

	cfg := g.Config()
	g.AddOpponent(NewBasic(100, 540, cfg.Opponents.Basic))

	g.Update(step, core.NewInputFrame())

	if g.WorldHealth() != 0 {
		t.Errorf("world health = %d, want 0", g.WorldHealth())
	}
	if g.Mode() != ModeGameOver {
		t.Errorf("mode = %v, want game over", g.Mode())
	}
	if n := sounds.count(SoundGameOver); n != 1 {
		t.Errorf("game over sound played %d times, want 1", n)
	}

	ended := 0
	for _, e := range g.Events() {
		if e.Kind == EventRunEnded {
			ended++
		}
	}
	if ended != 1 {
		t.Errorf("run ended events = %d, want 1", ended)
	}

	// further steps are no-ops
	g.Update(step, core.NewInputFrame())
	if len(g.Events()) != 0 {
		t.Error("game over must not be entered twice")
	}
}

func TestNonBasicImpactSparesWorld(t *testing.T) {
	g := startedGame(t)
	flatGround(g, 550)
	cfg := g.Config()

	g.AddOpponent(NewSniper(100, 545, cfg.Opponents.Sniper, g.rng))
	g.Update(step, core.NewInputFrame())

	if g.WorldHealth() != cfg.World.MaxHealth {
		t.Errorf("world health = %d, want %d", g.WorldHealth(), cfg.World.MaxHealth)
	}
	if len(g.Opponents()) != 0 {
		t.Errorf("opponents = %d, want 0 after ground contact", len(g.Opponents()))
	}
	if g.Score() != 0 {
		t.Errorf("ground impact must not score, got %d", g.Score())
	}
	if len(g.Particles()) < cfg.Opponents.Sniper.Explosion.Count {
		t.Errorf("expected an explosion, got %d particles", len(g.Particles()))
	}
}

func TestSeveralImpactsFloorWorldHealth(t *testing.T) {
	g := startedGame(t)
	flatGround(g, 550)
	g.worldHealth = 1
	cfg := g.Config()

	for i := 0; i < 3; i++ {
		g.AddOpponent(NewBasic(float64(100+i*100), 540, cfg.Opponents.Basic))
	}
	g.Update(step, core.NewInputFrame())

	if g.WorldHealth() != 0 {
		t.Errorf("world health = %d, want 0", g.WorldHealth())
	}
	if g.Mode() != ModeGameOver {
		t.Errorf("mode = %v, want game over", g.Mode())
	}
}

// A beam fired towards an opponent hidden behind a ridge must not hit it,
// even though the rectangles overlap.
func TestBeamOccludedByLandscape(t *testing.T) {
	tests := []struct {
		name       string
		ground     []core.Vec2
		wantHealth int
		wantShots  int
	}{
		{
			name:       "ridge between beam and target",
			ground:     []core.Vec2{{X: 0, Y: 590}, {X: 120, Y: 590}, {X: 130, Y: 300}, {X: 6400, Y: 300}},
			wantHealth: 3,
			wantShots:  1,
		},
		{
			name:       "open ground",
			ground:     []core.Vec2{{X: 0, Y: 590}, {X: 6400, Y: 590}},
			wantHealth: 2,
			wantShots:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startedGame(t)
			cfg := g.Config()
			g.landscape = Landscape{Points: tt.ground}

			target := NewBasic(150, 380, cfg.Opponents.Basic)
			g.AddOpponent(target)

			beam := NewBeam(core.Vec2{X: 100, Y: 400}, 1, cfg.Player.ShotSpeed, cfg.Projectile.BeamSize, cfg.Projectile.Lifetime)
			beam.Rect.X = 155
			if !beam.Rect.Intersects(target.Bounds()) {
				t.Fatal("test setup: beam should overlap the target")
			}
			g.player.Projectiles = []Projectile{beam}

			g.resolvePlayerShots()

			if target.Health() != tt.wantHealth {
				t.Errorf("target health = %d, want %d", target.Health(), tt.wantHealth)
			}
			if len(g.player.Projectiles) != tt.wantShots {
				t.Errorf("player shots = %d, want %d", len(g.player.Projectiles), tt.wantShots)
			}
		})
	}
}

func TestShotKillAwardsScore(t *testing.T) {
	g := startedGame(t)
	cfg := g.Config()
	flatGround(g, 590)

	target := NewSniper(500, 300, cfg.Opponents.Sniper, g.rng)
	g.AddOpponent(target)
	b := target.Bounds()
	beam := NewBeam(core.Vec2{X: 400, Y: b.Y + 5}, 1, 600, 2, 0.5)
	beam.Rect.X = b.X + 1
	g.player.Projectiles = []Projectile{beam}

	g.checkCollisions()

	if g.Score() != cfg.Opponents.Sniper.Score {
		t.Errorf("score = %d, want %d", g.Score(), cfg.Opponents.Sniper.Score)
	}
	if len(g.Opponents()) != 0 {
		t.Errorf("dead opponent should be removed, have %d", len(g.Opponents()))
	}
	if got := g.Stats().Kills[KindSniper]; got != 1 {
		t.Errorf("sniper kills = %d, want 1", got)
	}
}

func TestBodyContact(t *testing.T) {
	g := startedGame(t)
	cfg := g.Config()
	p := g.Player()

	o := NewBasic(p.Rect.X, p.Rect.Y, cfg.Opponents.Basic)
	g.AddOpponent(o)

	if g.checkCollisions() {
		t.Fatal("player should survive one contact")
	}
	if p.Health != cfg.Player.MaxHealth-1 {
		t.Errorf("player health = %d, want %d", p.Health, cfg.Player.MaxHealth-1)
	}
	if len(g.Opponents()) != 0 {
		t.Errorf("opponent should be destroyed, have %d", len(g.Opponents()))
	}
	if g.Score() != cfg.Opponents.Basic.Score {
		t.Errorf("score = %d, want %d", g.Score(), cfg.Opponents.Basic.Score)
	}
}

func TestPlayerDeathShortCircuits(t *testing.T) {
	g := startedGame(t)
	cfg := g.Config()
	p := g.Player()
	p.Health = 1

	g.AddOpponent(NewBasic(p.Rect.X, p.Rect.Y, cfg.Opponents.Basic))
	g.AddOpponent(NewBasic(p.Rect.X+5, p.Rect.Y, cfg.Opponents.Basic))

	item := NewHealthItem(HealthPlayer, p.Rect.X, p.Rect.Y, cfg.HealthItems, g.rng)
	g.AddHealthItem(item)

	if !g.checkCollisions() {
		t.Fatal("player should die")
	}
	if g.Mode() != ModeGameOver {
		t.Errorf("mode = %v, want game over", g.Mode())
	}
	if p.Health != 0 {
		t.Errorf("player health = %d, want 0", p.Health)
	}
	if len(g.HealthItems()) != 1 {
		t.Error("health items must not be checked after death")
	}
	if len(g.Opponents()) != 0 {
		t.Error("opponents are cleared on game over")
	}
}

func TestOpponentShotHitsPlayer(t *testing.T) {
	g := startedGame(t)
	cfg := g.Config()
	p := g.Player()

	shooter := NewAggressive(10, 100, cfg.Opponents.Aggressive)
	g.AddOpponent(shooter)
	c := p.Rect.Center()
	*shooter.Projectiles() = []Projectile{
		NewAimed(c, c, 300, 4, 0.5),
		NewAimed(core.Vec2{X: 10, Y: 10}, core.Vec2{X: 20, Y: 10}, 300, 4, 0.5),
	}

	g.checkCollisions()

	if p.Health != cfg.Player.MaxHealth-1 {
		t.Errorf("player health = %d, want %d", p.Health, cfg.Player.MaxHealth-1)
	}
	if n := len(*shooter.Projectiles()); n != 1 {
		t.Errorf("shooter projectiles = %d, want 1", n)
	}
}

func TestWorldHealthPickup(t *testing.T) {
	g := startedGame(t)
	cfg := g.Config()
	g.worldHealth = 4
	p := g.Player()

	item := NewHealthItem(HealthWorld, p.Rect.X, p.Rect.Y, cfg.HealthItems, g.rng)
	g.AddHealthItem(item)

	g.Update(step, core.NewInputFrame())

	if g.WorldHealth() != cfg.World.MaxHealth {
		t.Errorf("world health = %d, want %d", g.WorldHealth(), cfg.World.MaxHealth)
	}
	if len(g.HealthItems()) != 0 {
		t.Errorf("health items = %d, want 0", len(g.HealthItems()))
	}
}

func TestPlayerHealthPickup(t *testing.T) {
	g := startedGame(t)
	cfg := g.Config()
	p := g.Player()
	p.Health = 3

	g.AddHealthItem(NewHealthItem(HealthPlayer, p.Rect.X, p.Rect.Y, cfg.HealthItems, g.rng))
	g.resolveHealthItems()

	if p.Health != p.MaxHealth {
		t.Errorf("player health = %d, want %d", p.Health, p.MaxHealth)
	}
}

func TestBlinkingItemCannotBeCollected(t *testing.T) {
	g := startedGame(t)
	cfg := g.Config()
	g.worldHealth = 4
	p := g.Player()

	item := NewHealthItem(HealthWorld, p.Rect.X, p.Rect.Y, cfg.HealthItems, g.rng)
	item.StartBlinking()
	g.AddHealthItem(item)
	g.resolveHealthItems()

	if g.WorldHealth() != 4 {
		t.Errorf("world health = %d, want 4", g.WorldHealth())
	}
	if len(g.HealthItems()) != 1 {
		t.Errorf("health items = %d, want 1", len(g.HealthItems()))
	}
}

func TestGroundedItemBlinksOut(t *testing.T) {
	g := startedGame(t)
	cfg := g.Config()
	flatGround(g, 550)

	hc := cfg.HealthItems
	hc.RestChance = 0
	item := NewHealthItem(HealthPlayer, 10, 550-hc.Height, hc, g.rng)
	g.AddHealthItem(item)

	for i := 0; i < 60; i++ {
		g.Update(step, core.NewInputFrame())
	}
	if !item.IsBlinking() {
		t.Fatal("item on the ground should blink")
	}
	if len(g.HealthItems()) != 1 {
		t.Fatalf("item removed too early after 1 s")
	}

	for i := 0; i < 30; i++ {
		g.Update(step, core.NewInputFrame())
	}
	if len(g.HealthItems()) != 0 {
		t.Errorf("item should be removed after its blink sequence")
	}
}

func TestCameraClamp(t *testing.T) {
	tests := []struct {
		name    string
		screenW int
		playerX float64
		want    float64
	}{
		{"left edge", 800, 0, 0},
		{"middle", 800, 3000, 3000 + 40 - 400},
		{"right edge", 800, 6400 - 80, 6400 - 800},
		{"screen wider than world", 8000, 3000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startedGame(t)
			g.Resize(tt.screenW, 600)
			g.player.Rect.X = tt.playerX
			g.updateCamera()

			if g.CameraX() != tt.want {
				t.Errorf("camera x = %v, want %v", g.CameraX(), tt.want)
			}
			if g.CameraX() < 0 || g.CameraX() > g.MaxCameraX() {
				t.Errorf("camera x %v outside [0, %v]", g.CameraX(), g.MaxCameraX())
			}
		})
	}
}

func TestPlayerClamps(t *testing.T) {
	g := startedGame(t)
	cfg := g.Config()
	flatGround(g, 500)
	p := g.Player()

	p.SetPosition(-100, -100)
	g.clampPlayer()
	if p.Rect.X != 0 || p.Rect.Y != cfg.World.HUDHeight {
		t.Errorf("top-left clamp = (%v, %v), want (0, %v)", p.Rect.X, p.Rect.Y, cfg.World.HUDHeight)
	}

	p.SetPosition(99999, 99999)
	g.clampPlayer()
	if p.Rect.Right() != g.worldW {
		t.Errorf("right = %v, want %v", p.Rect.Right(), g.worldW)
	}
	if p.Rect.Bottom() != 500 {
		t.Errorf("bottom = %v, want ground 500", p.Rect.Bottom())
	}
}

func TestShootIsEdgeTriggered(t *testing.T) {
	sounds := &soundRecorder{}
	g := startedGame(t, WithSound(sounds))

	held := press(core.ActionShoot)
	for i := 0; i < 10; i++ {
		g.Update(step, held)
	}
	if n := len(g.Player().Projectiles); n != 1 {
		t.Errorf("projectiles after holding = %d, want 1", n)
	}

	g.Update(step, core.NewInputFrame())
	g.Update(step, held)
	if got := g.Stats().ShotsFired; got != 2 {
		t.Errorf("shots fired = %d, want 2", got)
	}
	if n := sounds.count(SoundPlayerShoot); n != 2 {
		t.Errorf("shoot sound played %d times, want 2", n)
	}
}

func TestFacingFollowsMovement(t *testing.T) {
	g := startedGame(t)
	x := g.Player().Rect.X

	g.Update(step, press(core.ActionLeft))
	if g.Player().Facing != FacingLeft {
		t.Error("moving left should face left")
	}
	if g.Player().Rect.X >= x {
		t.Error("player should move left")
	}

	g.Update(step, press(core.ActionRight, core.ActionBoost))
	if g.Player().Facing != FacingRight {
		t.Error("moving right should face right")
	}
	if !g.Player().Boosting() {
		t.Error("boost should be active while held")
	}
}

func TestHighScoreEntry(t *testing.T) {
	saver := &memorySaver{}
	g := startedGame(t, WithHighScores([]core.HighScore{{Name: "AAA", Score: 1000}}, saver))
	g.score = 500
	g.enterGameOver()

	if !g.WaitingForHighScore() || g.HighScoreIndex() != 1 {
		t.Fatalf("waiting = %v index = %d, want true 1", g.WaitingForHighScore(), g.HighScoreIndex())
	}

	for _, r := range "AB!C" {
		in := core.NewInputFrame()
		in.Char = r
		g.HandleInput(in, step)
	}
	if g.NameInput() != "ABC" {
		t.Fatalf("name input = %q, want %q", g.NameInput(), "ABC")
	}

	// two backspaces inside the cooldown delete once
	g.HandleInput(press(core.ActionBackspace), 0.01)
	g.HandleInput(press(core.ActionBackspace), 0.01)
	if g.NameInput() != "AB" {
		t.Fatalf("name input = %q, want %q", g.NameInput(), "AB")
	}

	g.HandleInput(press(core.ActionEnter), step)

	if g.Mode() != ModeMenu {
		t.Errorf("mode = %v, want menu", g.Mode())
	}
	want := []core.HighScore{{Name: "AAA", Score: 1000}, {Name: "AB", Score: 500}}
	got := g.HighScores()
	if len(got) != len(want) {
		t.Fatalf("high scores = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("high scores[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if len(saver.saved) != 1 {
		t.Errorf("saves = %d, want 1", len(saver.saved))
	}
}

func TestHighScoreEntryDefaults(t *testing.T) {
	g := startedGame(t)
	g.score = 10
	g.enterGameOver()

	for i := 0; i < 15; i++ {
		in := core.NewInputFrame()
		in.Char = ' '
		g.HandleInput(in, step)
	}
	if n := len(g.NameInput()); n != MaxNameLength {
		t.Errorf("name length = %d, want %d", n, MaxNameLength)
	}

	in := core.NewInputFrame()
	in.Click(CloseButton(800).Center().X, CloseButton(800).Center().Y)
	g.HandleInput(in, step)

	scores := g.HighScores()
	if len(scores) != 1 || scores[0].Name != core.DefaultScoreName {
		t.Errorf("high scores = %v, want one %s entry", scores, core.DefaultScoreName)
	}
}

func TestGameOverWithoutHighScore(t *testing.T) {
	full := make([]core.HighScore, core.MaxHighScores)
	for i := range full {
		full[i] = core.HighScore{Name: "P", Score: 1000 - i*100}
	}
	g := startedGame(t, WithHighScores(full, nil))
	g.score = 30
	g.enterGameOver()

	if g.WaitingForHighScore() {
		t.Fatal("low score should not wait for a name")
	}
	g.HandleInput(press(core.ActionEnter), step)

	if g.Mode() != ModeMenu {
		t.Errorf("mode = %v, want menu", g.Mode())
	}
	if g.SubmitHighScore("LATE") {
		t.Error("submitting a non-qualifying score should be a no-op")
	}
	if len(g.HighScores()) != core.MaxHighScores {
		t.Errorf("high scores changed: %v", g.HighScores())
	}
}

func TestHighScoreSaveFailureIsReported(t *testing.T) {
	saver := &memorySaver{err: errors.New("disk full")}
	g := startedGame(t, WithHighScores(nil, saver))
	g.score = 100
	g.enterGameOver()
	g.Events()

	if !g.SubmitHighScore("X") {
		t.Fatal("submission should succeed in memory")
	}
	ev := g.Events()
	if len(ev) != 1 || ev[0].Kind != EventHighScoresSaveFailed || ev[0].Err == nil {
		t.Errorf("events = %+v, want one save failure", ev)
	}
}

func TestFrameRunsFixedSteps(t *testing.T) {
	g := newTestGame(t)

	// Enter starts the game and the same frame already simulates
	g.Frame(press(core.ActionEnter), 50*time.Millisecond)
	if g.Mode() != ModePlaying {
		t.Fatalf("mode = %v, want playing", g.Mode())
	}
	if got := g.Stats().Ticks; got != 3 {
		t.Errorf("ticks = %d, want 3", got)
	}

	// a long stall is capped
	g.Frame(core.NewInputFrame(), time.Second)
	if got := g.Stats().Ticks; got != 3+12 {
		t.Errorf("ticks = %d, want 15", got)
	}
}

func TestStepIgnoresTickRate(t *testing.T) {
	for _, rate := range []int{30, 60, 120} {
		rt := testRuntime()
		rt.TickRate = rate
		g := New(config.DefaultDefenderConfig(), rt)
		g.StartNewGame()

		g.Frame(core.NewInputFrame(), 100*time.Millisecond)
		if got := g.Stats().Ticks; got != 6 {
			t.Errorf("tick rate %d: ticks = %d, want 6", rate, got)
		}
	}
}

func TestNameEntryAcceptsASCIIOnly(t *testing.T) {
	g := startedGame(t, WithHighScores(nil, &memorySaver{}))
	g.score = 500
	g.enterGameOver()
	if !g.WaitingForHighScore() {
		t.Fatal("expected name entry")
	}

	for _, r := range "aé7Ж Z_" {
		in := core.NewInputFrame()
		in.Char = r
		g.HandleInput(in, step)
	}
	if got := g.NameInput(); got != "a7 Z" {
		t.Errorf("name input = %q, want %q", got, "a7 Z")
	}
}

func TestResizeShiftsLandscape(t *testing.T) {
	g := startedGame(t)
	before := g.Landscape().Points[0].Y

	g.Resize(1000, 700)

	if got := g.Landscape().Points[0].Y; got != before+100 {
		t.Errorf("landscape y = %v, want %v", got, before+100)
	}
	w, h := g.WorldSize()
	if w != g.Config().World.Width || h != 700 {
		t.Errorf("world size = %vx%v, want %vx700", w, h, g.Config().World.Width)
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	g := startedGame(t)
	maxHealth := g.Config().World.MaxHealth

	pattern := [][]core.Action{
		{core.ActionRight, core.ActionShoot},
		{core.ActionRight},
		{core.ActionUp, core.ActionShoot},
		{core.ActionLeft, core.ActionBoost},
		{core.ActionDown},
	}

	gameOvers := 0
	for i := 0; i < 60*120 && g.Mode() == ModePlaying; i++ {
		g.Update(step, press(pattern[(i/20)%len(pattern)]...))

		if g.WorldHealth() < 0 || g.WorldHealth() > maxHealth {
			t.Fatalf("step %d: world health %d outside [0, %d]", i, g.WorldHealth(), maxHealth)
		}
		if g.CameraX() < 0 || g.CameraX() > g.MaxCameraX() {
			t.Fatalf("step %d: camera x %v outside [0, %v]", i, g.CameraX(), g.MaxCameraX())
		}
		for _, e := range g.Events() {
			if e.Kind == EventRunEnded {
				gameOvers++
			}
		}
	}
	if gameOvers > 1 {
		t.Errorf("game over entered %d times", gameOvers)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := startedGame(t)
		for i := 0; i < 900 && g.Mode() == ModePlaying; i++ {
			var in core.InputFrame
			switch {
			case i%90 < 30:
				in = press(core.ActionLeft, core.ActionShoot)
			case i%90 < 60:
				in = press(core.ActionRight, core.ActionUp)
			default:
				in = press(core.ActionDown, core.ActionBoost)
			}
			g.Update(step, in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("hashes differ: %d vs %d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score {
		t.Errorf("scores differ: %d vs %d", s1.Score, s2.Score)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := startedGame(t)
	g.AddOpponent(NewBasic(100, 100, g.Config().Opponents.Basic))

	s := g.Snapshot()
	if s.Player == nil || len(s.Opponents) != 1 {
		t.Fatalf("snapshot missing entities: %+v", s)
	}
	s.Landscape[0].Y = -1
	if g.Landscape().Points[0].Y == -1 {
		t.Error("snapshot landscape aliases the game")
	}
}
