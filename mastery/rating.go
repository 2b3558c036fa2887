package mastery

import (
	"errors"
	"fmt"
)

// ErrInvalidRating is returned by ParseRating for values outside 1..5.
var ErrInvalidRating = errors.New("mastery: rating must be between 1 and 5")

// Rating is the 1-5 self-assessment given after revealing a card's answer.
type Rating int

const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

var (
	basePercentage = [...]int{1: 20, 2: 40, 3: 60, 4: 80, 5: 100}
	capPercentage  = [...]int{1: 30, 2: 50, 3: 70, 4: 90, 5: 100}
)

// Valid reports whether r is in 1..5.
func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

func (r Rating) String() string {
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// ParseRating converts a raw request value into a Rating.
func ParseRating(v int) (Rating, error) {
	r := Rating(v)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRating, v)
	}
	return r, nil
}

// Base is the mastery percentage a first rating of r produces.
func (r Rating) Base() int { return basePercentage[r] }

// Cap is the ceiling repeated ratings of r can reinforce mastery to.
func (r Rating) Cap() int { return capPercentage[r] }
