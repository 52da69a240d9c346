// defender is a side-scrolling shooter for the terminal: protect the ground
// from falling opponents.
//
// Usage:
//
//	defender play     - Play in this terminal
//	defender scores   - Show high scores and run history
//	defender serve    - Start SSH server for remote play
//	defender config   - Print the effective tuning as YAML
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set run history database (default: ~/.defender/runs.db)
//	--scores-file <path>   - Set high-score file (default: ~/.defender/highscores.txt)
//	--config <path>        - Custom tuning YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defender/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoresPath string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "defender",
	Short: "Defender - a side-scrolling shooter in your terminal",
	Long: `Defender is a terminal side-scrolling shooter. Opponents fall from the
sky; shoot them before they reach the ground and wear the world down.

Available commands:
  play     - Play in this terminal
  scores   - View high scores and run history
  serve    - Start SSH server for remote play
  config   - Print the effective tuning as YAML

Examples:
  defender play
  defender play --difficulty hard --seed 42
  defender scores --history
  defender serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.defender/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores-file", "~/.defender/highscores.txt", "Path to high-score file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the tuning and applies the difficulty preset.
func loadGameConfig() (config.DefenderConfig, config.DifficultyPreset, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.DefenderConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadDefender(flagConfig)
	if err != nil {
		return config.DefenderConfig{}, "", err
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, preset, nil
}
