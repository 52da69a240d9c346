package defender

// SoundID names a sound effect. Playback belongs to the platform.
type SoundID int

const (
	SoundGameStart SoundID = iota
	SoundGameOver
	SoundPlayerShoot
	SoundOpponentExplode
)

// String returns the effect name.
func (s SoundID) String() string {
	switch s {
	case SoundGameStart:
		return "game_start"
	case SoundGameOver:
		return "game_over"
	case SoundPlayerShoot:
		return "player_shoot"
	case SoundOpponentExplode:
		return "opponent_explode"
	default:
		return "unknown"
	}
}

// SoundPlayer is the fire-and-forget sound trigger. Implementations must not
// block and must swallow their own failures.
type SoundPlayer interface {
	Play(id SoundID)
}

// Silent discards every sound request.
type Silent struct{}

// Play implements SoundPlayer.
func (Silent) Play(SoundID) {}
