package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-defender/internal/games/defender"
)

// drain streams s to the end and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total
}

func TestOscillatorShapes(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 50*time.Millisecond, tt.wave, rate)
			if got := drain(t, osc, rate.N(time.Second)); got != rate.N(50*time.Millisecond) {
				t.Errorf("streamed %d samples, want %d", got, rate.N(50*time.Millisecond))
			}
			if osc.Err() != nil {
				t.Errorf("unexpected error: %v", osc.Err())
			}
		})
	}
}

func TestSquareWaveIsBinary(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, sampleRate)
	buf := make([][2]float64, 100)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("sample %d = %f, want +-1", i, v)
		}
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	d := 20 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, sampleRate) // constant +1
	env := NewEnvelope(osc, d, 5*time.Millisecond, 5*time.Millisecond, sampleRate)

	buf := make([][2]float64, sampleRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("sustain sample = %f, want 1", mid)
	}
	if last := buf[n-1][0]; last > 0.01 {
		t.Errorf("last sample = %f, want near 0", last)
	}
}

func TestSweepFadesOut(t *testing.T) {
	s := NewSweep(1000, 200, 40*time.Millisecond, sampleRate)
	if got := drain(t, s, sampleRate.N(time.Second)); got != sampleRate.N(40*time.Millisecond) {
		t.Errorf("streamed %d samples", got)
	}
}

func TestEffectsAreFinite(t *testing.T) {
	ids := []defender.SoundID{
		defender.SoundGameStart,
		defender.SoundGameOver,
		defender.SoundPlayerShoot,
		defender.SoundOpponentExplode,
	}
	for _, id := range ids {
		t.Run(id.String(), func(t *testing.T) {
			st := Effect(id, 0.5)
			if st == nil {
				t.Fatal("Effect() returned nil")
			}
			if got := drain(t, st, sampleRate.N(5*time.Second)); got == 0 {
				t.Error("effect produced no samples")
			}
		})
	}

	if Effect(defender.SoundID(99), 1) != nil {
		t.Error("unknown id should have no effect")
	}
}
