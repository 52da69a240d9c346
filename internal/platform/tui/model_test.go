package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

func testOptions() Options {
	return Options{
		Config:  config.DefaultDefenderConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42},
		Player:  "tester",
	}
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelViewportInPixels(t *testing.T) {
	m := NewModel(testOptions())
	w, h := m.Game().ScreenSize()
	if w != 800 || h != 600 {
		t.Errorf("viewport = %vx%v, want 800x600", w, h)
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	w, h = m.Game().ScreenSize()
	if w != 1000 || h != 750 {
		t.Errorf("viewport after resize = %vx%v, want 1000x750", w, h)
	}
}

func TestModelEnterStartsGame(t *testing.T) {
	m := NewModel(testOptions())
	now := time.Now()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg(now))
	if m.Game().Mode() != defender.ModePlaying {
		t.Fatalf("mode = %v, want playing", m.Game().Mode())
	}

	// the enter press is consumed by the frame it arrived in
	m = send(t, m, TickMsg(now.Add(20*time.Millisecond)))
	if m.Game().Mode() != defender.ModePlaying {
		t.Errorf("mode = %v after second tick", m.Game().Mode())
	}
}

func TestModelClickPlayButton(t *testing.T) {
	m := NewModel(testOptions())

	// 80x24 cells is 800x600 px; Play spans x 300..500, y 205..255
	m = send(t, m, tea.MouseMsg{X: 40, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, TickMsg(time.Now()))
	if m.Game().Mode() != defender.ModePlaying {
		t.Errorf("mode = %v, want playing", m.Game().Mode())
	}
}

func TestModelHeldMovement(t *testing.T) {
	m := NewModel(testOptions())
	now := time.Now()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg(now))

	x0 := m.Game().Player().Rect.X
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, TickMsg(now.Add(50*time.Millisecond)))
	if got := m.Game().Player().Rect.X; got <= x0 {
		t.Errorf("player x = %v, want > %v while right is held", got, x0)
	}
	if m.Game().Player().Facing != defender.FacingRight {
		t.Error("player should face right")
	}
}

func TestModelNameEntry(t *testing.T) {
	m := NewModel(testOptions())
	m.Game().StartNewGame()

	g := m.Game()
	p := g.Player()
	p.Health = 1
	p.SetPosition(p.Rect.X, 200) // well above the ground
	g.AddOpponent(defender.NewBasic(p.Rect.X, p.Rect.Y, config.DefaultDefenderConfig().Opponents.Basic))

	now := time.Now()
	m = send(t, m, TickMsg(now))
	m = send(t, m, TickMsg(now.Add(20*time.Millisecond)))
	if g.Mode() != defender.ModeGameOver || !g.WaitingForHighScore() {
		t.Fatalf("mode = %v waiting = %v, want name entry", g.Mode(), g.WaitingForHighScore())
	}

	// typed faster than the tick rate; one character per frame
	for _, r := range "ACE" {
		m = send(t, m, runeKey(r))
	}
	for i := 1; i <= 3; i++ {
		m = send(t, m, TickMsg(now.Add(time.Duration(20+i*16)*time.Millisecond)))
	}
	if g.NameInput() != "ACE" {
		t.Errorf("name = %q, want ACE", g.NameInput())
	}

	view := m.View()
	if !strings.Contains(view, "ACE") {
		t.Error("view should show the typed name")
	}
}

func TestModelRecordsRun(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	scores, err := storage.NewScoreFile(filepath.Join(dir, "highscores.txt"))
	if err != nil {
		t.Fatalf("NewScoreFile() failed: %v", err)
	}

	opts := testOptions()
	opts.Store = store
	opts.Scores = scores
	opts.Difficulty = "hard"
	m := NewModel(opts)
	m.Game().StartNewGame()

	g := m.Game()
	g.Player().Health = 1
	g.Player().SetPosition(g.Player().Rect.X, 200)
	pr := g.Player().Rect
	g.AddOpponent(defender.NewBasic(pr.X, pr.Y, config.DefaultDefenderConfig().Opponents.Basic))

	now := time.Now()
	m = send(t, m, TickMsg(now))
	m = send(t, m, TickMsg(now.Add(20*time.Millisecond)))
	if g.Mode() != defender.ModeGameOver {
		t.Fatalf("mode = %v, want game over", g.Mode())
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Player != "tester" || r.Seed != 42 || r.Difficulty != "hard" {
		t.Errorf("unexpected run: %+v", r)
	}
	if r.Kills[defender.KindBasic] != 1 {
		t.Errorf("kills = %v, want one basic", r.Kills)
	}

	// submitting the name persists the table
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg(now.Add(40*time.Millisecond)))
	entries, err := scores.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != core.DefaultScoreName {
		t.Errorf("high scores = %v, want one %s entry", entries, core.DefaultScoreName)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testOptions())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}

	// Escape in the menu exits through the simulation
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd = m.Update(TickMsg(time.Now()))
	if m.Game().Running() {
		t.Error("escape in the menu should stop the game")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("stopped game should quit the program")
	}
}
