package mastery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDescribeMastery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pct  int
		want string
	}{
		{100, "Mastered"},
		{90, "Mastered"},
		{89, "Well Known"},
		{70, "Well Known"},
		{69, "Familiar"},
		{50, "Familiar"},
		{49, "Learning"},
		{30, "Learning"},
		{29, "New"},
		{10, "New"},
		{9, "Unseen"},
		{0, "Unseen"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DescribeMastery(tt.pct), "pct %d", tt.pct)
	}
}

func TestFormatRecency(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)
	ago := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}
	day := 24 * time.Hour

	tests := []struct {
		name string
		ts   *time.Time
		want string
	}{
		{name: "nil", ts: nil, want: "Never"},
		{name: "zero", ts: &time.Time{}, want: "Never"},
		{name: "exactly now", ts: ago(0), want: "Today"},
		{name: "an hour ago", ts: ago(time.Hour), want: "Today"},
		{name: "exactly one day", ts: ago(day), want: "Today"},
		{name: "day and a bit", ts: ago(day + time.Minute), want: "Yesterday"},
		{name: "two days", ts: ago(2 * day), want: "Yesterday"},
		{name: "three days", ts: ago(3 * day), want: "2 days ago"},
		{name: "six days", ts: ago(6 * day), want: "5 days ago"},
		{name: "seven days", ts: ago(7 * day), want: "1 weeks ago"},
		{name: "eight days", ts: ago(8 * day), want: "1 weeks ago"},
		{name: "twenty nine days", ts: ago(29 * day), want: "4 weeks ago"},
		{name: "thirty days", ts: ago(30 * day), want: "1 months ago"},
		{name: "a year", ts: ago(365 * day), want: "12 months ago"},
		{name: "future", ts: ago(-3 * day), want: "2 days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatRecency(tt.ts, now))
		})
	}
}
