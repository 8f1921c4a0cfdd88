package models

// MaxPins is the number of pins standing at the start of a frame
const MaxPins = 10

// FrameStatus represents the current state of a frame
type FrameStatus string

const (
	// FrameStatusOpen indicates a frame is waiting on its second roll
	FrameStatusOpen FrameStatus = "open"

	// FrameStatusComplete indicates a frame will not take any more rolls
	FrameStatusComplete FrameStatus = "complete"
)

// Frame represents one frame of a bowling game
type Frame struct {
	// FirstRoll is the number of pins knocked down by the first ball
	FirstRoll int

	// SecondRoll is the number of pins knocked down by the second ball,
	// nil while the frame is still open
	SecondRoll *int
}

// NewFrame creates an open frame from its first roll
func NewFrame(firstRoll int) *Frame {
	return &Frame{
		FirstRoll: firstRoll,
	}
}

// SetSecondRoll records the second ball of the frame
func (f *Frame) SetSecondRoll(pins int) {
	f.SecondRoll = &pins
}

// Status reports whether the frame can take another roll
func (f *Frame) Status() FrameStatus {
	if f.IsStrike() || f.SecondRoll != nil {
		return FrameStatusComplete
	}
	return FrameStatusOpen
}

// IsComplete is true for a strike or once the second roll is recorded
func (f *Frame) IsComplete() bool {
	return f.Status() == FrameStatusComplete
}

// IsStrike is true when the first ball knocked down every pin
func (f *Frame) IsStrike() bool {
	return f.FirstRoll == MaxPins
}

// IsSpare is true when both balls together knocked down every pin
func (f *Frame) IsSpare() bool {
	return !f.IsStrike() && f.PinCount() == MaxPins
}

// PinCount is the raw number of pins knocked down in this frame so far
func (f *Frame) PinCount() int {
	if f.SecondRoll == nil {
		return f.FirstRoll
	}
	return f.FirstRoll + *f.SecondRoll
}

// Clone returns a copy that shares no memory with f
func (f *Frame) Clone() Frame {
	c := Frame{FirstRoll: f.FirstRoll}
	if f.SecondRoll != nil {
		second := *f.SecondRoll
		c.SecondRoll = &second
	}
	return c
}
