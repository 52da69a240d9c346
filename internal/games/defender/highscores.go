package defender

import (
	"sort"
	"strings"

	"github.com/vovakirdan/tui-defender/internal/core"
)

// HighScoreList is the ranked table: sorted descending, at most
// core.MaxHighScores entries, equal scores kept in insertion order.
type HighScoreList struct {
	entries []core.HighScore
}

// NewHighScoreList builds a list from loaded entries, sorting and truncating
// them as needed.
func NewHighScoreList(entries []core.HighScore) *HighScoreList {
	l := &HighScoreList{entries: append([]core.HighScore(nil), entries...)}
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Score > l.entries[j].Score
	})
	if len(l.entries) > core.MaxHighScores {
		l.entries = l.entries[:core.MaxHighScores]
	}
	return l
}

// Entries returns a copy of the ranked entries.
func (l *HighScoreList) Entries() []core.HighScore {
	return append([]core.HighScore(nil), l.entries...)
}

// Len returns the number of entries.
func (l *HighScoreList) Len() int {
	return len(l.entries)
}

// IsHighScore reports whether score would enter the table.
func (l *HighScoreList) IsHighScore(score int) bool {
	return l.Index(score) >= 0
}

// Index returns the 0-based rank score would take, or -1 when the table is
// full and score beats no entry. A score equal to an existing entry ranks
// after it.
func (l *HighScoreList) Index(score int) int {
	for i, e := range l.entries {
		if score > e.Score {
			return i
		}
	}
	if len(l.entries) < core.MaxHighScores {
		return len(l.entries)
	}
	return -1
}

// Insert places {name, score} at its rank and returns that rank, or -1 if
// the score no longer qualifies. The name is trimmed; an empty name becomes
// core.DefaultScoreName.
func (l *HighScoreList) Insert(name string, score int) int {
	idx := l.Index(score)
	if idx < 0 {
		return -1
	}
	entry := core.HighScore{Name: NormalizeName(name), Score: score}
	l.entries = append(l.entries, core.HighScore{})
	copy(l.entries[idx+1:], l.entries[idx:])
	l.entries[idx] = entry
	if len(l.entries) > core.MaxHighScores {
		l.entries = l.entries[:core.MaxHighScores]
	}
	return idx
}

// NormalizeName trims whitespace and substitutes the default for an empty name.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return core.DefaultScoreName
	}
	return name
}
