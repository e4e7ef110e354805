// Package grade holds the single percentage-to-letter table and the pass
// threshold used by every scoring path.
package grade

import "math"

// PassThresholdPct is the fixed pass mark.
const PassThresholdPct = 35.0

// Percentage returns score/total as a percentage rounded to two decimals.
// A zero total yields 0, never a division by zero.
func Percentage(score int, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(score)/float64(total)*100*100) / 100
}

// Letter maps a percentage to its letter grade.
func Letter(pct float64) string {
	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B+"
	case pct >= 60:
		return "B"
	case pct >= 50:
		return "C"
	case pct >= PassThresholdPct:
		return "D"
	default:
		return "F"
	}
}

func Passed(pct float64) bool {
	return pct >= PassThresholdPct
}
