// Package bowling scores a ten-pin game from the pin count of each roll.
//
// Rolls are grouped into frames as they arrive. Scoring is computed on
// demand, so a game can be scored at any point while it is in progress;
// frames whose strike or spare bonus depends on rolls not yet made are
// reported as pending.
//
// Legality of pin counts is not checked. Bonus balls after a strike or
// spare in the tenth frame are kept as notional eleventh and twelfth
// frames that feed the lookahead but are never scored on their own.
package bowling

import (
	"github.com/KirkDiggler/bowling/internal/models"
)

// MaxScoredFrames is the number of frames reported by ScoresByFrame
const MaxScoredFrames = 10

// Tracker groups rolls into frames and scores them
type Tracker struct {
	frames []*models.Frame
}

// New creates an empty tracker
func New() *Tracker {
	return &Tracker{}
}

// Replay creates a tracker with every roll already recorded in order
func Replay(rolls []int) *Tracker {
	t := New()
	for _, pins := range rolls {
		t.RecordRoll(pins)
	}
	return t
}

// RecordRoll adds a roll to the open frame, or starts a new frame when
// there is none
func (t *Tracker) RecordRoll(pins int) {
	if len(t.frames) == 0 || t.frames[len(t.frames)-1].IsComplete() {
		t.frames = append(t.frames, models.NewFrame(pins))
		return
	}
	t.frames[len(t.frames)-1].SetSecondRoll(pins)
}

// Frames returns a copy of every frame recorded so far, including bonus frames
func (t *Tracker) Frames() []models.Frame {
	frames := make([]models.Frame, len(t.frames))
	for i, f := range t.frames {
		frames[i] = f.Clone()
	}
	return frames
}

// ScoresByFrame returns the score of each of the first ten frames.
// Scores are per frame, not cumulative.
func (t *Tracker) ScoresByFrame() []models.FrameScore {
	count := min(MaxScoredFrames, len(t.frames))

	scores := make([]models.FrameScore, 0, count)
	for i := 0; i < count; i++ {
		scores = append(scores, frameScore(t.frames[i], t.twoRollsAfter(i)))
	}
	return scores
}

// TotalScore sums every resolved frame score. Pending frames add nothing.
func (t *Tracker) TotalScore() int {
	total := 0
	for _, score := range t.ScoresByFrame() {
		if points, ok := score.Value(); ok {
			total += points
		}
	}
	return total
}

// lookahead holds the two rolls following a frame. A nil entry has not been rolled yet.
type lookahead struct {
	first  *int
	second *int
}

func (t *Tracker) twoRollsAfter(index int) lookahead {
	var next lookahead

	if index+1 < len(t.frames) {
		f := t.frames[index+1]
		next.first = &f.FirstRoll
		next.second = f.SecondRoll
	}
	if next.second == nil && index+2 < len(t.frames) {
		next.second = &t.frames[index+2].FirstRoll
	}
	return next
}

func frameScore(f *models.Frame, next lookahead) models.FrameScore {
	switch {
	case f.IsStrike():
		if next.first == nil || next.second == nil {
			return models.PendingScore()
		}
		return models.ResolvedScore(models.MaxPins + *next.first + *next.second)
	case f.IsSpare():
		if next.first == nil {
			return models.PendingScore()
		}
		return models.ResolvedScore(models.MaxPins + *next.first)
	default:
		return models.ResolvedScore(f.PinCount())
	}
}
