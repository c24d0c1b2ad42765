package quiz

import "math"

// PassThreshold is the pass mark, in percent.
const PassThreshold = 70

// Percentage returns score/total as a rounded percentage (0 if total is 0).
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Passed reports whether score/total meets the pass threshold.
// The comparison is exact, so 69.5% does not round up to a pass.
func Passed(score, total int) bool {
	return total > 0 && score*100 >= PassThreshold*total
}

// PercentagePassed reports whether a rounded percentage meets the pass
// mark. The final quiz is graded this way; module completion uses Passed.
func PercentagePassed(percentage int) bool {
	return percentage >= PassThreshold
}

// Rank is the title awarded for a final quiz percentage.
type Rank struct {
	Title string
	Icon  string
}

// RankFor returns the rank earned at the given percentage.
func RankFor(percentage int) Rank {
	switch {
	case percentage >= 95:
		return Rank{Title: "Elite Hacker", Icon: "👑"}
	case percentage >= 85:
		return Rank{Title: "Security Expert", Icon: "🎖"}
	case percentage >= PassThreshold:
		return Rank{Title: "Cyber Warrior", Icon: "🛡"}
	default:
		return Rank{Title: "Apprentice", Icon: "📚"}
	}
}
