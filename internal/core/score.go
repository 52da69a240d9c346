package core

// HighScore is one ranked entry of the high-score table.
type HighScore struct {
	Name  string
	Score int
}

// MaxHighScores is the length of the high-score table.
const MaxHighScores = 10

// DefaultScoreName replaces an empty name on submission.
const DefaultScoreName = "ANON"
