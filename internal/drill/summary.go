package drill

// Tier buckets a final percentage into a feedback message.
type Tier int

const (
	TierRetry   Tier = iota // Below 75%
	TierGood                // 75% or better
	TierPerfect             // 100%
)

// GoodThreshold is the lowest percentage that earns TierGood.
const GoodThreshold = 75.0

// String returns the tier name used in logs.
func (t Tier) String() string {
	switch t {
	case TierPerfect:
		return "perfect"
	case TierGood:
		return "good"
	default:
		return "retry"
	}
}

// Summary holds the data displayed once every question has been answered.
type Summary struct {
	Correct    int
	Total      int
	Skipped    int
	Percentage float64
	Tier       Tier
}

// BuildSummary computes the final score. A zero total scores 0%.
func BuildSummary(correct, skipped, total int) Summary {
	var pct float64
	if total > 0 {
		pct = float64(correct) / float64(total) * 100
	}
	return Summary{
		Correct:    correct,
		Total:      total,
		Skipped:    skipped,
		Percentage: pct,
		Tier:       TierFor(pct),
	}
}

// TierFor maps a percentage to its feedback tier.
func TierFor(percentage float64) Tier {
	switch {
	case percentage >= 100:
		return TierPerfect
	case percentage >= GoodThreshold:
		return TierGood
	default:
		return TierRetry
	}
}
