package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

// Options configures a game session.
type Options struct {
	Config     config.DefenderConfig
	Runtime    core.RuntimeConfig // ScreenW and ScreenH in terminal cells
	Sounds     defender.SoundPlayer
	Scores     *storage.ScoreFile // may be nil
	Store      *storage.Store     // may be nil
	Player     string             // recorded with every run
	Difficulty string
	Logger     *log.Logger
}

// Model is the Bubble Tea model for one defender session.
type Model struct {
	game     *defender.Game
	screen   *core.Screen
	keys     *KeyMapper
	held     *HeldKeys
	store    *storage.Store
	logger   *log.Logger
	player   string
	diff     string
	seed     int64
	tickRate int

	// One-shot input collected between ticks
	pending core.InputFrame
	chars   []rune

	lastTick time.Time
	quitting bool
}

// NewModel creates a model with a fresh game in the menu.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gameOpts := []defender.Option{defender.WithSound(opts.Sounds)}
	if opts.Scores != nil {
		entries, err := opts.Scores.Load()
		if err != nil {
			logger.Warn("could not load high scores", "path", opts.Scores.Path(), "err", err)
		}
		gameOpts = append(gameOpts, defender.WithHighScores(entries, opts.Scores))
	}

	pixels := core.RuntimeConfig{
		ScreenW:  rt.ScreenW * CellWidth,
		ScreenH:  rt.ScreenH * CellHeight,
		TickRate: rt.TickRate,
		Seed:     rt.Seed,
	}

	return Model{
		game:     defender.New(opts.Config, pixels, gameOpts...),
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:     NewKeyMapper(),
		held:     NewHeldKeys(HoldDecay),
		store:    opts.Store,
		logger:   logger,
		player:   opts.Player,
		diff:     opts.Difficulty,
		seed:     rt.Seed,
		tickRate: rt.TickRate,
		pending:  core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if x, y, ok := m.keys.MapMouse(msg); ok {
			m.pending.Click(x, y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	r := m.keys.MapKey(msg)
	if r.Event == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	now := time.Now()
	for _, a := range r.Held {
		m.held.Press(a, now)
	}
	if r.Event != core.ActionNone {
		m.pending.Set(r.Event)
	}
	if r.Char != 0 {
		m.chars = append(m.chars, r.Char)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width*CellWidth, msg.Height*CellHeight)
	return m, nil
}

// handleTick runs one simulation frame with the wall-clock time since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var delta time.Duration
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick)
	}
	m.lastTick = now

	in := m.pending.Clone()
	m.held.Apply(&in, now)
	// one typed character per frame so fast typing is not lost
	if len(m.chars) > 0 {
		in.Char = m.chars[0]
		m.chars = m.chars[1:]
	}
	m.pending.Clear()

	m.game.Frame(in, delta)
	m.handleEvents()

	if !m.game.Running() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.Mode() != defender.ModePlaying {
		// stale movement must not leak into the next run
		m.held.Reset()
	}
	return m, tickCmd(m.tickRate)
}

// handleEvents records finished runs and reports persistence results.
func (m Model) handleEvents() {
	for _, ev := range m.game.Events() {
		switch ev.Kind {
		case defender.EventRunEnded:
			st := ev.Stats
			m.logger.Info("run ended",
				"player", m.player,
				"score", st.Score,
				"kills", st.TotalKills(),
				"elapsed", st.Elapsed.Round(time.Second),
			)
			if m.store == nil {
				continue
			}
			_, err := m.store.SaveRun(storage.RunRecord{
				Player:       m.player,
				Score:        st.Score,
				WorldHealth:  st.WorldHealth,
				PlayerHealth: st.PlayerHealth,
				ShotsFired:   st.ShotsFired,
				Kills:        st.Kills,
				Duration:     st.Elapsed,
				Seed:         m.seed,
				Difficulty:   m.diff,
			})
			if err != nil {
				m.logger.Error("could not record run", "err", err)
			}

		case defender.EventHighScoresSaved:
			m.logger.Info("high score saved", "name", ev.Entry.Name, "score", ev.Entry.Score)

		case defender.EventHighScoresSaveFailed:
			m.logger.Error("could not save high scores", "err", ev.Err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	Draw(m.screen, m.game.Snapshot())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".defender", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("defender_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Game exposes the simulation, mainly for tests.
func (m Model) Game() *defender.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
