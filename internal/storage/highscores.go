package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-defender/internal/core"
)

// ScoreFile is the plain-text high-score table: one "NAME SCORE" line per
// entry in ranked order. Safe for concurrent use; SSH sessions share one.
type ScoreFile struct {
	mu   sync.Mutex
	path string
}

// NewScoreFile returns a score file at path. A leading ~ is expanded.
func NewScoreFile(path string) (*ScoreFile, error) {
	p, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &ScoreFile{path: p}, nil
}

// Path returns the expanded file path.
func (f *ScoreFile) Path() string {
	return f.path
}

// Load reads the table. A missing file is an empty table.
func (f *ScoreFile) Load() ([]core.HighScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open high scores: %w", err)
	}
	defer file.Close()

	entries, err := ParseHighScores(file)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read high scores: %w", err)
	}
	return entries, nil
}

// Save overwrites the file with entries in the given order.
func (f *ScoreFile) Save(entries []core.HighScore) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	var buf bytes.Buffer
	if err := WriteHighScores(&buf, entries); err != nil {
		return err
	}
	if err := os.WriteFile(f.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high scores: %w", err)
	}
	return nil
}

// SaveHighScores lets a ScoreFile persist submissions from the game.
func (f *ScoreFile) SaveHighScores(entries []core.HighScore) error {
	return f.Save(entries)
}

// ParseHighScores reads "NAME SCORE" lines. The score is the last field and
// the name is the rest; lines that do not parse are skipped. The result is
// sorted descending (ties keep file order) and truncated to
// core.MaxHighScores.
func ParseHighScores(r io.Reader) ([]core.HighScore, error) {
	var entries []core.HighScore

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		score, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			continue
		}
		entries = append(entries, core.HighScore{
			Name:  strings.Join(fields[:len(fields)-1], " "),
			Score: score,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > core.MaxHighScores {
		entries = entries[:core.MaxHighScores]
	}
	return entries, nil
}

// WriteHighScores writes one "NAME SCORE" line per entry. Blank names are
// written as core.DefaultScoreName so every line parses back.
func WriteHighScores(w io.Writer, entries []core.HighScore) error {
	for _, e := range entries {
		name := strings.Join(strings.Fields(e.Name), " ")
		if name == "" {
			name = core.DefaultScoreName
		}
		if _, err := fmt.Fprintf(w, "%s %d\n", name, e.Score); err != nil {
			return fmt.Errorf("storage: cannot write high scores: %w", err)
		}
	}
	return nil
}
