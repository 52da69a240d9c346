package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-defender/internal/core"
)

func TestScoreFileRoundTrip(t *testing.T) {
	f, err := NewScoreFile(filepath.Join(t.TempDir(), "scores", "highscores.txt"))
	if err != nil {
		t.Fatalf("NewScoreFile() failed: %v", err)
	}

	entries := []core.HighScore{
		{Name: "AAA", Score: 500},
		{Name: "TOP GUN", Score: 400},
		{Name: "BBB", Score: 400},
		{Name: "ANON", Score: 0},
	}
	if err := f.Save(entries); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("Load() = %v, want %v", got, entries)
	}
}

func TestScoreFileMissingIsEmpty(t *testing.T) {
	f, err := NewScoreFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err != nil {
		t.Fatalf("NewScoreFile() failed: %v", err)
	}

	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty table, got %v", got)
	}
}

func TestParseHighScoresSkipsMalformed(t *testing.T) {
	input := strings.Join([]string{
		"CCC 100",
		"garbage",
		"",
		"DDD notanumber",
		"AAA 300",
		"  BBB   200  ",
		"42",
	}, "\n")

	got, err := ParseHighScores(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseHighScores() failed: %v", err)
	}
	want := []core.HighScore{
		{Name: "AAA", Score: 300},
		{Name: "BBB", Score: 200},
		{Name: "CCC", Score: 100},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseHighScores() = %v, want %v", got, want)
	}
}

func TestParseHighScoresTruncates(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 15; i++ {
		b.WriteString("P 1\n")
	}
	b.WriteString("BEST 99\n")

	got, err := ParseHighScores(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ParseHighScores() failed: %v", err)
	}
	if len(got) != core.MaxHighScores {
		t.Fatalf("Expected %d entries, got %d", core.MaxHighScores, len(got))
	}
	if got[0].Name != "BEST" {
		t.Errorf("Expected BEST first, got %v", got[0])
	}
}

func TestWriteHighScoresBlankName(t *testing.T) {
	var b strings.Builder
	if err := WriteHighScores(&b, []core.HighScore{{Name: "   ", Score: 7}}); err != nil {
		t.Fatalf("WriteHighScores() failed: %v", err)
	}
	if got := b.String(); got != "ANON 7\n" {
		t.Errorf("WriteHighScores() = %q, want %q", got, "ANON 7\n")
	}
}

func TestScoreFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.txt")
	f, err := NewScoreFile(path)
	if err != nil {
		t.Fatalf("NewScoreFile() failed: %v", err)
	}

	if err := f.Save([]core.HighScore{{Name: "OLD", Score: 1}, {Name: "OLDER", Score: 0}}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := f.SaveHighScores([]core.HighScore{{Name: "NEW", Score: 2}}); err != nil {
		t.Fatalf("SaveHighScores() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "NEW 2\n" {
		t.Errorf("file = %q, want %q", data, "NEW 2\n")
	}
}
