package defender

import (
	"time"

	"github.com/vovakirdan/tui-defender/internal/core"
)

// RunStats summarises one run for the HUD and the run history.
type RunStats struct {
	Score        int
	WorldHealth  int
	PlayerHealth int
	Elapsed      time.Duration
	ShotsFired   int
	Kills        map[string]int // by opponent kind
	Ticks        int
}

// TotalKills sums the kills over every kind.
func (s RunStats) TotalKills() int {
	n := 0
	for _, k := range s.Kills {
		n += k
	}
	return n
}

func (s RunStats) clone() RunStats {
	c := s
	c.Kills = make(map[string]int, len(s.Kills))
	for k, v := range s.Kills {
		c.Kills[k] = v
	}
	return c
}

// EventKind identifies what happened.
type EventKind int

const (
	// EventRunEnded fires once when a run enters GAME_OVER.
	EventRunEnded EventKind = iota
	// EventHighScoresSaved fires after a submitted score was persisted.
	EventHighScoresSaved
	// EventHighScoresSaveFailed carries the persistence error.
	EventHighScoresSaveFailed
)

// Event is a notification for collaborators outside the simulation, drained
// with Game.Events. The simulation itself never logs or touches storage.
type Event struct {
	Kind  EventKind
	Stats RunStats
	Entry core.HighScore
	Err   error
}

// HighScoreSaver persists the ranked table.
type HighScoreSaver interface {
	SaveHighScores(entries []core.HighScore) error
}
