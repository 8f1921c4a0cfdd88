package models

// FrameScore is the score of a single frame. A frame whose strike or spare
// bonus depends on rolls not yet made is pending rather than zero.
type FrameScore struct {
	// Points is the frame's own score, not cumulative. Only meaningful when Resolved.
	Points int

	// Resolved is false while the bonus lookahead is incomplete
	Resolved bool
}

// ResolvedScore creates a known frame score
func ResolvedScore(points int) FrameScore {
	return FrameScore{Points: points, Resolved: true}
}

// PendingScore creates a score that cannot be determined yet
func PendingScore() FrameScore {
	return FrameScore{}
}

// Value returns the points and whether they are known
func (s FrameScore) Value() (int, bool) {
	return s.Points, s.Resolved
}
