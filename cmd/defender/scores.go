package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/platform/tui"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

var (
	flagHistory     bool
	flagCopy        bool
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run history",
	Long: `Display the top 10 high scores, or the most recent runs.

Examples:
  defender scores
  defender scores --copy
  defender scores --history --limit 50
  defender scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagHistory, "history", false, "Show recorded runs instead of the high-score table")
	scoresCmd.Flags().BoolVar(&flagCopy, "copy", false, "Copy the high-score table to the clipboard")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores and history in a full-screen view")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show with --history")
}

func runScores(_ *cobra.Command, _ []string) {
	scoreFile, err := storage.NewScoreFile(flagScoresPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	entries, err := scoreFile.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading high scores: %v\n", err)
		os.Exit(1)
	}

	if flagInteractive {
		runInteractiveScores(entries)
		return
	}

	if flagHistory {
		printHistory()
		return
	}

	text := formatHighScores(entries)
	fmt.Print(text)

	if flagCopy {
		if err := clipboard.WriteAll(text); err != nil {
			fmt.Fprintf(os.Stderr, "Error copying to clipboard: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Println("Copied to clipboard.")
	}
}

// formatHighScores renders the ranked table as plain text.
func formatHighScores(entries []core.HighScore) string {
	var b strings.Builder
	b.WriteString("High Scores - Defender\n\n")

	if len(entries) == 0 {
		b.WriteString("No scores recorded yet.\n\n")
		b.WriteString("Play 'defender play' to set the first high score!\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %-4s  %-10s  %s\n", "Rank", "Name", "Score")
	fmt.Fprintf(&b, "  %-4s  %-10s  %s\n", "----", "----", "-----")
	for i, e := range entries {
		fmt.Fprintf(&b, "  %-4d  %-10s  %d\n", i+1, e.Name, e.Score)
	}
	return b.String()
}

func printHistory() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Run History - Defender")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-12s  %-8s  %-5s  %-5s  %s\n", "Date", "Player", "Score", "Kills", "World", "Time")
	fmt.Printf("  %-16s  %-12s  %-8s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-12s  %-8d  %-5d  %-5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Player,
			r.Score,
			r.TotalKills(),
			r.WorldHealth,
			r.Duration.Round(time.Second),
		)
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Kills: %d  Played: %s\n",
			stats.Runs, stats.HighScore, stats.AvgScore, stats.TotalKills, stats.PlayTime.Round(time.Second))
	}
}

func runInteractiveScores(entries []core.HighScore) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	tab := tui.TabHighScores
	if flagHistory {
		tab = tui.TabHistory
	}
	if err := tui.RunScoreboard(entries, store, tab, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
