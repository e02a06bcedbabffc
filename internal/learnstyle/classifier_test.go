package learnstyle

import (
	"testing"

	"github.com/asante/codeweave/internal/actions"
)

func TestUpdate_PointTable(t *testing.T) {
	tests := []struct {
		action actions.Type
		want   map[Style]int
	}{
		{actions.PatternCreation, map[Style]int{Visual: 2, Practical: 1}},
		{actions.CulturalExploration, map[Style]int{Reflective: 2, Verbal: 1}},
		{actions.DebugSuccess, map[Style]int{Logical: 2, Reflective: 1}},
		{actions.DebugFailure, map[Style]int{Logical: 2, Reflective: 1}},
		{actions.StoryProgress, map[Style]int{Verbal: 2, Reflective: 1}},
		{actions.BlockConnection, map[Style]int{Visual: 1, Logical: 1}},
	}
	for _, tt := range tests {
		c := NewClassifier()
		c.Update(tt.action, actions.Metadata{})
		for _, s := range AllStyles() {
			if got := c.points[s]; got != tt.want[s] {
				t.Errorf("%s: points[%s] = %d, want %d", tt.action, s, got, tt.want[s])
			}
		}
	}
}

func TestUpdate_ChallengeCompletion(t *testing.T) {
	tests := []struct {
		name string
		md   actions.Metadata
		want map[Style]int
	}{
		{
			"fast first try",
			actions.Metadata{CompletionTimeSeconds: 30, Attempts: 1},
			map[Style]int{Practical: 2},
		},
		{
			"slow with retries",
			actions.Metadata{CompletionTimeSeconds: 400, Attempts: 3},
			map[Style]int{Reflective: 2},
		},
		{
			"large program",
			actions.Metadata{BlockCount: 15},
			map[Style]int{Logical: 1},
		},
		{
			"small program",
			actions.Metadata{BlockCount: 4},
			map[Style]int{Practical: 1},
		},
		{
			"no measurements",
			actions.Metadata{},
			map[Style]int{},
		},
	}
	for _, tt := range tests {
		c := NewClassifier()
		c.Update(actions.ChallengeCompletion, tt.md)
		for _, s := range AllStyles() {
			if got := c.points[s]; got != tt.want[s] {
				t.Errorf("%s: points[%s] = %d, want %d", tt.name, s, got, tt.want[s])
			}
		}
	}
}

func TestUpdate_MetadataFlags(t *testing.T) {
	c := NewClassifier()
	c.Update(actions.PatternCreation, actions.Metadata{
		Shared:     true,
		ViewedHint: true,
		HintType:   actions.HintLogical,
	})
	if c.points[Social] != 2 {
		t.Errorf("shared: social = %d, want 2", c.points[Social])
	}
	if c.points[Logical] != 1 {
		t.Errorf("hint: logical = %d, want 1", c.points[Logical])
	}
}

func TestPrimaryStyle_ArgMax(t *testing.T) {
	c := NewClassifier()
	c.Update(actions.DebugSuccess, actions.Metadata{}) // logical+2
	c.Update(actions.DebugSuccess, actions.Metadata{}) // logical+4
	c.Update(actions.PatternCreation, actions.Metadata{})
	if got := c.PrimaryStyle(); got != Logical {
		t.Errorf("primary = %s, want logical", got)
	}
}

func TestPrimaryStyle_TieBreakDeclarationOrder(t *testing.T) {
	// block_connection gives visual+1 and logical+1: visual declared first.
	c := NewClassifier()
	c.Update(actions.BlockConnection, actions.Metadata{})
	if got := c.PrimaryStyle(); got != Visual {
		t.Errorf("primary on tie = %s, want visual", got)
	}
}

func TestConfidences_ZeroPoints(t *testing.T) {
	// With no observations, every style sits at the 0.1 floor —
	// not zero, and not normalized.
	c := NewClassifier()
	for s, conf := range c.Confidences() {
		if conf != 0.1 {
			t.Errorf("confidence[%s] = %v, want 0.1", s, conf)
		}
	}
}

func TestConfidences_Weighted(t *testing.T) {
	c := NewClassifier()
	c.Update(actions.BlockConnection, actions.Metadata{}) // visual 1, logical 1

	conf := c.Confidences()
	want := 0.1 + 0.9*0.5
	if !almostEqual(conf[Visual], want) || !almostEqual(conf[Logical], want) {
		t.Errorf("visual/logical = %v/%v, want %v", conf[Visual], conf[Logical], want)
	}
	if !almostEqual(conf[Social], 0.1) {
		t.Errorf("social = %v, want 0.1", conf[Social])
	}
}

func TestSignificantStyles_ThresholdAndFallback(t *testing.T) {
	c := NewClassifier()
	if got := c.SignificantStyles(); len(got) != 1 || got[0] != Visual {
		t.Errorf("empty classifier significant = %v, want [visual]", got)
	}

	// Push logical past the threshold (> 10 points).
	for i := 0; i < 6; i++ {
		c.Update(actions.DebugSuccess, actions.Metadata{}) // logical+2 each
	}
	got := c.SignificantStyles()
	if len(got) != 1 || got[0] != Logical {
		t.Errorf("significant = %v, want [logical]", got)
	}
}

func TestFromPoints_LegacyLabels(t *testing.T) {
	c := FromPoints(map[string]int{
		"auditory":        3,
		"reading_writing": 2,
		"logical":         4,
	})
	// Legacy verbal-adjacent labels fold into verbal.
	if c.points[Verbal] != 5 {
		t.Errorf("verbal = %d, want 5", c.points[Verbal])
	}
	if c.points[Logical] != 4 {
		t.Errorf("logical = %d, want 4", c.points[Logical])
	}
}

func TestPointsRoundTrip(t *testing.T) {
	c := NewClassifier()
	c.Update(actions.StoryProgress, actions.Metadata{})
	restored := FromPoints(c.Points())
	if restored.points[Verbal] != 2 || restored.points[Reflective] != 1 {
		t.Errorf("round trip lost points: %v", restored.points)
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
