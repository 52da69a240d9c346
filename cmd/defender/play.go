package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-defender/internal/audio"
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/games/defender"
	"github.com/vovakirdan/tui-defender/internal/platform/tui"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

var (
	flagMute    bool
	flagVolume  float64
	flagLogPath string
	flagName    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD      - Move
  Shift+move / B   - Boost
  Space            - Fire
  Esc              - Back to menu
  Ctrl+S           - Save a screenshot
  Ctrl+C           - Quit

Difficulty options:
  easy   - Start at lowest difficulty, spawns speed up with score
  normal - Start at 30% difficulty, spawns speed up with score
  hard   - Start at 70% difficulty, spawns speed up with score
  fixed  - No progression, spawn interval stays as configured

Examples:
  defender play
  defender play --difficulty hard
  defender play --seed 42 --mute
  defender play --config ./my-defender.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
	playCmd.Flags().StringVar(&flagLogPath, "log", "~/.defender/defender.log", "Log file (the terminal is busy drawing the game)")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name recorded in the run history (default: OS user)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openLogFile(flagLogPath)
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var sounds defender.SoundPlayer = defender.Silent{}
	if !flagMute {
		sounds = audio.Open(flagVolume, logger)
		if sp, ok := sounds.(*audio.Speaker); ok {
			defer sp.Close()
		}
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	scores, err := storage.NewScoreFile(flagScoresPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: high scores disabled: %v\n", err)
		scores = nil
	}

	logger.Info("starting", "seed", flagSeed, "difficulty", preset, "size", fmt.Sprintf("%dx%d", width, height))

	runErr := tui.Run(tui.Options{
		Config: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Sounds:     sounds,
		Scores:     scores,
		Store:      store,
		Player:     playerName(),
		Difficulty: string(preset),
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile returns a logger writing to path. When the file cannot be
// opened logging is discarded rather than drawn over the game.
func openLogFile(path string) (*log.Logger, func()) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "defender",
	}

	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			return log.NewWithOptions(f, opts), func() { f.Close() }
		}
	}
	fmt.Fprintf(os.Stderr, "Warning: could not open log file %s\n", path)
	return log.NewWithOptions(io.Discard, opts), func() {}
}

func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return core.DefaultScoreName
}
