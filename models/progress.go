package models

import (
	"time"

	"github.com/andrewpaige1/studysnap-api/mastery"
)

// StudyProgress is the stored form of mastery.Progress for one flashcard.
type StudyProgress struct {
	ID            uint       `gorm:"primaryKey" json:"-"`
	UserID        uint       `gorm:"not null;uniqueIndex:idx_progress_user_card" json:"-"`
	FlashcardID   string     `gorm:"not null;size:21;uniqueIndex:idx_progress_user_card" json:"flashcardId"`
	Mastery       int        `gorm:"not null;default:0" json:"mastery"`
	Streak        int        `gorm:"not null;default:0" json:"streak"`
	TotalReviews  int        `gorm:"not null;default:0" json:"totalReviews"`
	RatingHistory []int      `gorm:"serializer:json" json:"ratingHistory"`
	LastStudied   *time.Time `json:"lastStudied"`
	LastStudyDate *time.Time `json:"lastStudyDate"`
}

func (p StudyProgress) Progress() mastery.Progress {
	out := mastery.Progress{
		Mastery:       p.Mastery,
		Streak:        p.Streak,
		TotalReviews:  p.TotalReviews,
		RatingHistory: p.RatingHistory,
	}
	if p.LastStudied != nil {
		out.LastStudied = *p.LastStudied
	}
	if p.LastStudyDate != nil {
		out.LastStudyDate = *p.LastStudyDate
	}
	return out
}

// SetProgress copies an engine result onto the stored record.
func (p *StudyProgress) SetProgress(m mastery.Progress) {
	p.Mastery = m.Mastery
	p.Streak = m.Streak
	p.TotalReviews = m.TotalReviews
	p.RatingHistory = m.RatingHistory
	p.LastStudied = timePtr(m.LastStudied)
	p.LastStudyDate = timePtr(m.LastStudyDate)
}

func ProgressByCard(records []StudyProgress) map[string]mastery.Progress {
	out := make(map[string]mastery.Progress, len(records))
	for _, r := range records {
		out[r.FlashcardID] = r.Progress()
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
