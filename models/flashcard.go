package models

import (
	"time"

	"github.com/andrewpaige1/studysnap-api/mastery"
)

// Flashcard represents an individual flashcard
type Flashcard struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PublicID string `gorm:"size:21;index" json:"id"`
	UserID   uint   `gorm:"not null;index:idx_flashcards_user_category" json:"-"`
	User     User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`

	Front    string `gorm:"not null;size:1000" json:"front"`
	Back     string `gorm:"not null;size:2000" json:"back"`
	Category string `gorm:"not null;size:100;index:idx_flashcards_user_category" json:"category"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f Flashcard) MasteryCard() mastery.Card {
	return mastery.Card{ID: f.PublicID, Category: f.Category}
}

func MasteryCards(cards []Flashcard) []mastery.Card {
	out := make([]mastery.Card, len(cards))
	for i, c := range cards {
		out[i] = c.MasteryCard()
	}
	return out
}
