// Package learnstyle infers a learner's preferred style from weighted
// action points. It is a hand-tuned accumulator, not a trained model:
// every action type contributes fixed points to one or two styles, and
// the primary style is simply the current arg-max.
package learnstyle

// Style is a closed enumeration of learning styles.
type Style string

const (
	Visual     Style = "visual"
	Logical    Style = "logical"
	Practical  Style = "practical"
	Verbal     Style = "verbal"
	Social     Style = "social"
	Reflective Style = "reflective"
)

// AllStyles returns the styles in declaration order. That order is the
// tie-break for PrimaryStyle.
func AllStyles() []Style {
	return []Style{Visual, Logical, Practical, Verbal, Social, Reflective}
}

// ParseStyle maps a stored label to a Style. Legacy labels from older
// revisions of the classifier (auditory, reading_writing, mixed) fold
// into their nearest current style; anything unknown defaults to visual.
func ParseStyle(s string) Style {
	switch s {
	case "visual":
		return Visual
	case "logical":
		return Logical
	case "practical", "kinesthetic":
		return Practical
	case "verbal", "auditory", "reading_writing":
		return Verbal
	case "social":
		return Social
	case "reflective", "mixed":
		return Reflective
	default:
		return Visual
	}
}

// BaseConfidence is the confidence floor every style gets, observations
// or not. Confidences deliberately do not normalize to sum to 1.
const BaseConfidence = 0.1

// SignificanceThreshold is the point count above which a style counts
// as significant for the learner.
const SignificanceThreshold = 10
