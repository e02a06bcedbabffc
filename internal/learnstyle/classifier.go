package learnstyle

import (
	"github.com/asante/codeweave/internal/actions"
)

// Completion-time bands for challenge_completion scoring, in seconds.
const (
	fastCompletionSecs = 60
	slowCompletionSecs = 300
)

// Classifier accumulates weighted style points from action events.
// Points only grow; they never decay unless Reset is called.
type Classifier struct {
	points map[Style]int
}

// NewClassifier creates an empty classifier.
func NewClassifier() *Classifier {
	return &Classifier{points: make(map[Style]int)}
}

// FromPoints restores a classifier from persisted per-style points.
// Unknown style labels are folded through ParseStyle.
func FromPoints(persisted map[string]int) *Classifier {
	c := NewClassifier()
	for label, pts := range persisted {
		if pts > 0 {
			c.points[ParseStyle(label)] += pts
		}
	}
	return c
}

// Points exports the accumulated points for persistence.
func (c *Classifier) Points() map[string]int {
	out := make(map[string]int, len(c.points))
	for s, pts := range c.points {
		if pts > 0 {
			out[string(s)] = pts
		}
	}
	return out
}

// Reset clears all accumulated points.
func (c *Classifier) Reset() {
	c.points = make(map[Style]int)
}

// Update applies one action event to the point table.
func (c *Classifier) Update(t actions.Type, md actions.Metadata) {
	switch t {
	case actions.PatternCreation:
		c.add(Visual, 2)
		c.add(Practical, 1)

	case actions.CulturalExploration:
		c.add(Reflective, 2)
		c.add(Verbal, 1)

	case actions.DebugSuccess, actions.DebugFailure:
		c.add(Logical, 2)
		c.add(Reflective, 1)

	case actions.StoryProgress:
		c.add(Verbal, 2)
		c.add(Reflective, 1)

	case actions.BlockConnection:
		c.add(Visual, 1)
		c.add(Logical, 1)

	case actions.ChallengeCompletion:
		c.scoreCompletion(md)
	}

	// Metadata flags apply regardless of action type.
	if md.Shared {
		c.add(Social, 2)
	}
	if md.ViewedHint {
		switch md.HintType {
		case actions.HintVisual:
			c.add(Visual, 1)
		case actions.HintVerbal:
			c.add(Verbal, 1)
		case actions.HintLogical:
			c.add(Logical, 1)
		}
	}
}

// scoreCompletion inspects completion measurements. Absent measurements
// (zero values) contribute nothing.
func (c *Classifier) scoreCompletion(md actions.Metadata) {
	if md.CompletionTimeSeconds > 0 && md.Attempts > 0 {
		if md.CompletionTimeSeconds < fastCompletionSecs && md.Attempts == 1 {
			c.add(Practical, 2)
		}
		if md.CompletionTimeSeconds > slowCompletionSecs && md.Attempts > 2 {
			c.add(Reflective, 2)
		}
	}
	if md.BlockCount > 10 {
		c.add(Logical, 1)
	} else if md.BlockCount > 0 && md.BlockCount <= 5 {
		c.add(Practical, 1)
	}
}

func (c *Classifier) add(s Style, pts int) {
	c.points[s] += pts
}

// PrimaryStyle returns the style with the most points. Ties break by
// declaration order; an empty classifier yields the first style.
func (c *Classifier) PrimaryStyle() Style {
	best := AllStyles()[0]
	bestPts := c.points[best]
	for _, s := range AllStyles()[1:] {
		if c.points[s] > bestPts {
			best = s
			bestPts = c.points[s]
		}
	}
	return best
}

// Confidences returns a per-style confidence in (0,1]. Each style gets
// a floor of BaseConfidence plus a share of the remaining 0.9 weighted
// by its fraction of the total points. With no points at all, every
// style sits at the floor.
func (c *Classifier) Confidences() map[Style]float64 {
	total := 0
	for _, s := range AllStyles() {
		total += c.points[s]
	}

	out := make(map[Style]float64, len(AllStyles()))
	for _, s := range AllStyles() {
		if total == 0 {
			out[s] = BaseConfidence
			continue
		}
		out[s] = BaseConfidence + 0.9*float64(c.points[s])/float64(total)
	}
	return out
}

// SignificantStyles returns all styles whose points exceed the
// significance threshold, in declaration order. When none qualify it
// falls back to the primary style alone.
func (c *Classifier) SignificantStyles() []Style {
	var out []Style
	for _, s := range AllStyles() {
		if c.points[s] > SignificanceThreshold {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []Style{c.PrimaryStyle()}
	}
	return out
}
