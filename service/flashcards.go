package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andrewpaige1/studysnap-api/events"
	"github.com/andrewpaige1/studysnap-api/mastery"
	"github.com/andrewpaige1/studysnap-api/models"
)

// CardInput is the editable part of a flashcard.
type CardInput struct {
	Front    string `json:"front"`
	Back     string `json:"back"`
	Category string `json:"category"`
}

func (in CardInput) normalize() (CardInput, error) {
	in.Front = strings.TrimSpace(in.Front)
	in.Back = strings.TrimSpace(in.Back)
	in.Category = strings.TrimSpace(in.Category)
	if in.Front == "" || in.Back == "" {
		return in, fmt.Errorf("%w: front and back are required", ErrInvalidInput)
	}
	return in, nil
}

// CardView is a flashcard with its study progress.
type CardView struct {
	models.Flashcard
	Mastery         int    `json:"mastery"`
	MasteryLabel    string `json:"masteryLabel"`
	Streak          int    `json:"streak"`
	TotalReviews    int    `json:"totalReviews"`
	LastStudiedText string `json:"lastStudiedText"`
}

func (s *Service) ListFlashcards(ctx context.Context, userID uint, category string) ([]CardView, error) {
	cards, err := s.repo.ListFlashcardsByCategory(ctx, userID, category)
	if err != nil {
		return nil, err
	}
	progress, err := s.progressByCard(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]CardView, len(cards))
	for i, c := range cards {
		p := progress[c.PublicID]
		var last *time.Time
		if p.Studied() {
			last = &p.LastStudied
		}
		views[i] = CardView{
			Flashcard:       c,
			Mastery:         p.Mastery,
			MasteryLabel:    mastery.DescribeMastery(p.Mastery),
			Streak:          p.Streak,
			TotalReviews:    p.TotalReviews,
			LastStudiedText: mastery.FormatRecency(last, now),
		}
	}
	return views, nil
}

// AddFlashcard creates a card. An empty category files it under
// DefaultCategory; any other category must already exist.
func (s *Service) AddFlashcard(ctx context.Context, userID uint, in CardInput) (*models.Flashcard, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	if in.Category == "" {
		in.Category = DefaultCategory
	}
	createdCategory, err := s.requireCategory(ctx, userID, in.Category)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateFlashcards(ctx, userID, []models.Flashcard{{
		Front:    in.Front,
		Back:     in.Back,
		Category: in.Category,
	}})
	if err != nil {
		return nil, err
	}

	if createdCategory {
		s.publish(ctx, userID, events.Categories, events.Flashcards)
	} else {
		s.publish(ctx, userID, events.Flashcards)
	}
	return &created[0], nil
}

// UpdateFlashcard edits a card in place. An empty category keeps the
// current one.
func (s *Service) UpdateFlashcard(ctx context.Context, userID uint, publicID string, in CardInput) (*models.Flashcard, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	card, err := s.repo.GetFlashcard(ctx, userID, publicID)
	if err != nil {
		return nil, err
	}

	createdCategory := false
	if in.Category != "" && in.Category != card.Category {
		if createdCategory, err = s.requireCategory(ctx, userID, in.Category); err != nil {
			return nil, err
		}
		card.Category = in.Category
	}
	card.Front = in.Front
	card.Back = in.Back

	if err := s.repo.UpdateFlashcard(ctx, card); err != nil {
		return nil, err
	}

	if createdCategory {
		s.publish(ctx, userID, events.Categories, events.Flashcards)
	} else {
		s.publish(ctx, userID, events.Flashcards)
	}
	return card, nil
}

func (s *Service) DeleteFlashcard(ctx context.Context, userID uint, publicID string) error {
	if err := s.repo.DeleteFlashcard(ctx, userID, publicID); err != nil {
		return err
	}
	s.publish(ctx, userID, events.Flashcards, events.StudyProgress)
	return nil
}
