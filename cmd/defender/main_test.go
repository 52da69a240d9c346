package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-defender/internal/core"
)

func TestFormatHighScores(t *testing.T) {
	out := formatHighScores([]core.HighScore{
		{Name: "ACE", Score: 900},
		{Name: "TOP GUN", Score: 450},
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[4], "ACE") || !strings.Contains(lines[4], "900") {
		t.Errorf("first entry line = %q", lines[4])
	}
	if !strings.Contains(lines[5], "TOP GUN") {
		t.Errorf("second entry line = %q", lines[5])
	}

	if empty := formatHighScores(nil); !strings.Contains(empty, "No scores recorded yet.") {
		t.Errorf("empty table = %q", empty)
	}
}

func TestLoadGameConfigDifficulty(t *testing.T) {
	defer func() { flagDifficulty = "" }()

	flagDifficulty = "hard"
	cfg, preset, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if preset != "hard" || !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("preset %q difficulty %+v", preset, cfg.Difficulty)
	}

	flagDifficulty = "impossible"
	if _, _, err := loadGameConfig(); err == nil {
		t.Error("unknown preset should fail")
	}
}
