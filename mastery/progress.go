// Package mastery computes recall mastery and study streaks from rating
// events, and aggregates them into per-category statistics.
//
// Everything here is a pure function over caller-supplied snapshots: no I/O,
// no clocks (callers pass now), no shared state.
package mastery

import (
	"fmt"
	"time"
)

const (
	// streakGraceDays is the largest day gap that keeps a streak alive
	// without extending it.
	streakGraceDays = 3
)

// Progress is the per-flashcard study record. The zero value is the
// implicit record of a card that has never been rated.
type Progress struct {
	Mastery       int
	Streak        int
	TotalReviews  int
	RatingHistory []int
	LastStudied   time.Time
	LastStudyDate time.Time
}

// Studied reports whether the card has been rated at least once.
func (p Progress) Studied() bool {
	return !p.LastStudyDate.IsZero()
}

// ApplyRating returns the progress record that results from rating a card at
// instant now.
//
// Mastery is recomputed from the rating alone: the rating's base percentage,
// plus two points for every earlier occurrence of the same rating, capped at
// the rating's ceiling. It does not blend with the previous mastery, so a low
// rating after a high one lowers it.
//
// The streak moves by calendar day in now's location: same day keeps it,
// the next day extends it, a gap of two or three days keeps it, and anything
// longer restarts it at 1.
//
// r must be valid; passing an unvalidated rating panics.
func ApplyRating(current Progress, r Rating, now time.Time) Progress {
	if !r.Valid() {
		panic(fmt.Sprintf("mastery: ApplyRating called with %v", r))
	}

	next := Progress{
		Mastery:       nextMastery(current, r),
		Streak:        nextStreak(current, now),
		TotalReviews:  current.TotalReviews + 1,
		RatingHistory: make([]int, 0, len(current.RatingHistory)+1),
		LastStudied:   now,
		LastStudyDate: now,
	}
	next.RatingHistory = append(next.RatingHistory, current.RatingHistory...)
	next.RatingHistory = append(next.RatingHistory, int(r))
	return next
}

func nextMastery(current Progress, r Rating) int {
	if current.TotalReviews == 0 {
		return r.Base()
	}
	same := 0
	for _, h := range current.RatingHistory {
		if h == int(r) {
			same++
		}
	}
	return min(r.Cap(), r.Base()+2*same)
}

func nextStreak(current Progress, now time.Time) int {
	if !current.Studied() {
		return 1
	}
	switch diff := calendarDaysBetween(current.LastStudyDate, now); {
	case diff <= 0:
		return current.Streak
	case diff == 1:
		return current.Streak + 1
	case diff <= streakGraceDays:
		return current.Streak
	default:
		return 1
	}
}

// calendarDaysBetween counts day boundaries crossed going from earlier to
// later, both read as calendar dates in later's location.
func calendarDaysBetween(earlier, later time.Time) int {
	y1, m1, d1 := earlier.In(later.Location()).Date()
	y2, m2, d2 := later.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
