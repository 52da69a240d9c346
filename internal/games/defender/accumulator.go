package defender

import "time"

// Default fixed-step timing.
const (
	DefaultStep     = time.Second / 60
	DefaultMaxFrame = 200 * time.Millisecond
)

// Accumulator converts measured frame deltas into whole fixed steps.
// Frame deltas are capped at MaxFrame so a stall never triggers a long
// catch-up burst; the remainder carries over to the next frame.
type Accumulator struct {
	Step     time.Duration
	MaxFrame time.Duration

	acc time.Duration
}

// NewAccumulator returns an accumulator stepping at rate Hz. A non-positive
// rate selects 60 Hz.
func NewAccumulator(rate int) Accumulator {
	step := DefaultStep
	if rate > 0 {
		step = time.Second / time.Duration(rate)
	}
	return Accumulator{Step: step, MaxFrame: DefaultMaxFrame}
}

// Advance adds a frame delta and returns how many steps to simulate.
func (a *Accumulator) Advance(frame time.Duration) int {
	if frame < 0 {
		frame = 0
	}
	if a.MaxFrame > 0 && frame > a.MaxFrame {
		frame = a.MaxFrame
	}
	if a.Step <= 0 {
		return 0
	}
	a.acc += frame
	steps := int(a.acc / a.Step)
	a.acc -= time.Duration(steps) * a.Step
	return steps
}

// Remainder returns the time carried to the next frame.
func (a *Accumulator) Remainder() time.Duration {
	return a.acc
}

// Reset drops any carried time.
func (a *Accumulator) Reset() {
	a.acc = 0
}

// StepSeconds returns the fixed step as seconds.
func (a *Accumulator) StepSeconds() float64 {
	return a.Step.Seconds()
}
