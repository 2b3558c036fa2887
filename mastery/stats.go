package mastery

import (
	"math"
	"time"
)

// Card is the slice of a flashcard the aggregation needs.
type Card struct {
	ID       string
	Category string
}

// CategoryStats is derived on read and never persisted.
type CategoryStats struct {
	TotalCards  int        `json:"totalCards"`
	Mastery     int        `json:"mastery"`
	Streak      int        `json:"streak"`
	LastStudied *time.Time `json:"lastStudied"`
}

// AggregateCategoryStats summarizes the cards filed under category.
//
// Mastery averages over every card in the category, counting unrated cards
// as 0. Streak is the best streak among cards studied within the last three
// calendar days, so a category nobody has touched recently shows 0 rather
// than a stale number.
func AggregateCategoryStats(cards []Card, progress map[string]Progress, category string, now time.Time) CategoryStats {
	var (
		stats CategoryStats
		sum   int
	)

	for _, c := range cards {
		if c.Category != category {
			continue
		}
		stats.TotalCards++

		p, ok := progress[c.ID]
		if !ok {
			continue
		}
		sum += p.Mastery

		if !p.LastStudied.IsZero() && (stats.LastStudied == nil || p.LastStudied.After(*stats.LastStudied)) {
			last := p.LastStudied
			stats.LastStudied = &last
		}
	}

	if stats.TotalCards == 0 {
		return CategoryStats{}
	}

	stats.Mastery = roundHalfUp(float64(sum) / float64(stats.TotalCards))
	stats.Streak = activeStreak(cards, progress, category, now)
	return stats
}

func activeStreak(cards []Card, progress map[string]Progress, category string, now time.Time) int {
	best := 0
	for _, c := range cards {
		if c.Category != category {
			continue
		}
		p, ok := progress[c.ID]
		if !ok || !p.Studied() || p.Streak <= best {
			continue
		}
		if calendarDaysBetween(p.LastStudyDate, now) <= streakGraceDays {
			best = p.Streak
		}
	}
	return best
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
