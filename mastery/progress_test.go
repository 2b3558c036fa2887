package mastery

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2024, time.March, 4, 9, 30, 0, 0, time.UTC)

func TestApplyRating_FirstRatingUsesBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rating Rating
		want   int
	}{
		{1, 20},
		{2, 40},
		{3, 60},
		{4, 80},
		{5, 100},
	}
	for _, tt := range tests {
		t.Run(tt.rating.String(), func(t *testing.T) {
			t.Parallel()

			got := ApplyRating(Progress{}, tt.rating, day0)

			assert.Equal(t, tt.want, got.Mastery)
			assert.Equal(t, 1, got.Streak)
			assert.Equal(t, 1, got.TotalReviews)
			assert.Equal(t, []int{int(tt.rating)}, got.RatingHistory)
			assert.Equal(t, day0, got.LastStudied)
			assert.Equal(t, day0, got.LastStudyDate)
		})
	}
}

func TestApplyRating_RepeatedRatingClimbsToCap(t *testing.T) {
	t.Parallel()

	p := Progress{}
	var seq []int
	for i := 0; i < 5; i++ {
		p = ApplyRating(p, 3, day0)
		seq = append(seq, p.Mastery)
	}
	assert.Equal(t, []int{60, 62, 64, 66, 68}, seq)

	for i := 0; i < 10; i++ {
		p = ApplyRating(p, 3, day0)
		require.LessOrEqual(t, p.Mastery, 70)
	}
	assert.Equal(t, 70, p.Mastery)
	assert.Equal(t, 15, p.TotalReviews)
}

func TestApplyRating_NotBlendedWithPreviousMastery(t *testing.T) {
	t.Parallel()

	p := ApplyRating(Progress{}, 5, day0)
	p = ApplyRating(p, 5, day0)
	require.Equal(t, 100, p.Mastery)

	p = ApplyRating(p, 1, day0)
	assert.Equal(t, 20, p.Mastery)

	p = ApplyRating(p, 1, day0)
	assert.Equal(t, 22, p.Mastery)
}

func TestApplyRating_Streak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		gapDays int
		streak  int
		want    int
	}{
		{name: "same day", gapDays: 0, streak: 4, want: 4},
		{name: "next day", gapDays: 1, streak: 4, want: 5},
		{name: "two day grace", gapDays: 2, streak: 4, want: 4},
		{name: "three day grace", gapDays: 3, streak: 4, want: 4},
		{name: "four day reset", gapDays: 4, streak: 4, want: 1},
		{name: "long reset", gapDays: 40, streak: 9, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			current := Progress{
				Mastery:       60,
				Streak:        tt.streak,
				TotalReviews:  3,
				RatingHistory: []int{3, 3, 3},
				LastStudied:   day0,
				LastStudyDate: day0,
			}
			got := ApplyRating(current, 3, day0.AddDate(0, 0, tt.gapDays))
			assert.Equal(t, tt.want, got.Streak)
		})
	}
}

func TestApplyRating_StreakUsesCalendarDays(t *testing.T) {
	t.Parallel()

	late := time.Date(2024, time.March, 4, 23, 50, 0, 0, time.UTC)
	early := time.Date(2024, time.March, 5, 0, 10, 0, 0, time.UTC)

	p := ApplyRating(Progress{}, 4, late)
	p = ApplyRating(p, 4, early)
	assert.Equal(t, 2, p.Streak)

	p = ApplyRating(p, 4, early.Add(3*time.Hour))
	p = ApplyRating(p, 2, early.Add(6*time.Hour))
	assert.Equal(t, 2, p.Streak)
}

func TestApplyRating_ConsecutiveDays(t *testing.T) {
	t.Parallel()

	p := Progress{}
	for i := 0; i < 6; i++ {
		p = ApplyRating(p, 4, day0.AddDate(0, 0, i))
		assert.Equal(t, i+1, p.Streak)
	}
}

func TestApplyRating_DoesNotAliasHistory(t *testing.T) {
	t.Parallel()

	history := make([]int, 2, 8)
	history[0], history[1] = 2, 2
	current := Progress{TotalReviews: 2, RatingHistory: history, LastStudyDate: day0, Streak: 1}

	a := ApplyRating(current, 2, day0)
	b := ApplyRating(current, 5, day0)

	assert.Equal(t, []int{2, 2, 2}, a.RatingHistory)
	assert.Equal(t, []int{2, 2, 5}, b.RatingHistory)
	assert.Equal(t, []int{2, 2}, current.RatingHistory)
}

func TestApplyRating_InvalidRatingPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { ApplyRating(Progress{}, 0, day0) })
	assert.Panics(t, func() { ApplyRating(Progress{}, 6, day0) })
}

func TestParseRating(t *testing.T) {
	t.Parallel()

	for v := 1; v <= 5; v++ {
		r, err := ParseRating(v)
		require.NoError(t, err)
		assert.Equal(t, Rating(v), r)
	}

	for _, v := range []int{-1, 0, 6, 100} {
		_, err := ParseRating(v)
		assert.True(t, errors.Is(err, ErrInvalidRating), "value %d", v)
	}
}
