package domain

// BurnoutWindow is the number of prior records inspected for a streak.
// Hard-coded policy: exactly two, never configurable.
const BurnoutWindow = 2

// CheckStreak reports whether the current session completes a sustained
// negative-state streak. It alerts only when at least BurnoutWindow prior
// records are supplied, the current category is a negative state, and every
// supplied prior record also classifies into a negative state. Pure
// predicate; the caller supplies the user's most recent records.
func CheckStreak(current MoodCategory, prior []MoodRecord) bool {
	if len(prior) < BurnoutWindow {
		return false
	}
	if !current.IsNegativeState() {
		return false
	}

	for _, record := range prior {
		if !record.Category().IsNegativeState() {
			return false
		}
	}

	return true
}
