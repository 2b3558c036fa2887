package mastery

import (
	"fmt"
	"math"
	"time"
)

// DescribeMastery maps a mastery percentage to its display band. Each band
// includes its lower bound.
func DescribeMastery(pct int) string {
	switch {
	case pct >= 90:
		return "Mastered"
	case pct >= 70:
		return "Well Known"
	case pct >= 50:
		return "Familiar"
	case pct >= 30:
		return "Learning"
	case pct >= 10:
		return "New"
	default:
		return "Unseen"
	}
}

// FormatRecency renders how long ago ts was, relative to now.
//
// The day count is the ceiling of the elapsed days, so anything within the
// last 24 hours reads "Today" and "N days ago" is one less than that count.
// Week and month counts are not pluralized ("1 weeks ago").
func FormatRecency(ts *time.Time, now time.Time) string {
	if ts == nil || ts.IsZero() {
		return "Never"
	}

	elapsed := now.Sub(*ts)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	days := int(math.Ceil(float64(elapsed) / float64(24*time.Hour)))

	switch {
	case days <= 1:
		return "Today"
	case days == 2:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days-1)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}
