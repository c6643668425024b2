package domain

// MoodCategory is one of the four coarse buckets a raw mood label maps into.
// The category drives both task recommendation and burnout detection.
type MoodCategory string

const (
	CategoryNegative  MoodCategory = "negative"
	CategoryPositive  MoodCategory = "positive"
	CategoryLowEnergy MoodCategory = "low_energy"
	CategoryNeutral   MoodCategory = "neutral"
)

// DefaultMoodLabel is substituted whenever the mood source is inconclusive
// or fails outright.
const DefaultMoodLabel = "neutral"

// Classify maps a raw mood label to its category. Lookup is exact and
// case-sensitive; callers lowercase upstream. Labels outside the table
// classify as Neutral, never as an error: an unrecognized label can
// therefore never contribute to a negative streak.
func Classify(label string) MoodCategory {
	switch label {
	case "stressed", "sad", "fear", "angry":
		return CategoryNegative
	case "happy", "surprise":
		return CategoryPositive
	case "tired", "disgust":
		return CategoryLowEnergy
	default:
		return CategoryNeutral
	}
}

// Index returns the stable numeric encoding used by the recommender's
// training set: Negative=0, Positive=1, LowEnergy=2, Neutral=3.
func (c MoodCategory) Index() int {
	switch c {
	case CategoryNegative:
		return 0
	case CategoryPositive:
		return 1
	case CategoryLowEnergy:
		return 2
	default:
		return 3
	}
}

// IsNegativeState reports whether the category counts toward a burnout
// streak (Negative or LowEnergy).
func (c MoodCategory) IsNegativeState() bool {
	return c == CategoryNegative || c == CategoryLowEnergy
}

// Label returns a human-readable name for display.
func (c MoodCategory) Label() string {
	switch c {
	case CategoryNegative:
		return "Negative"
	case CategoryPositive:
		return "Positive"
	case CategoryLowEnergy:
		return "Low-Energy"
	case CategoryNeutral:
		return "Neutral"
	default:
		return string(c)
	}
}
