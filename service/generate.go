package service

import (
	"context"

	"github.com/andrewpaige1/studysnap-api/cardtext"
	"github.com/andrewpaige1/studysnap-api/events"
	"github.com/andrewpaige1/studysnap-api/models"
)

// ImportText adds every "Q:"/"A:" pair found in text to category.
func (s *Service) ImportText(ctx context.Context, userID uint, category, text string) ([]models.Flashcard, error) {
	missing, err := s.checkCategory(ctx, userID, category)
	if err != nil {
		return nil, err
	}
	cards, err := cardtext.ParseBulk(text)
	if err != nil {
		return nil, err
	}
	return s.addCards(ctx, userID, category, missing, cards)
}

// GenerateFlashcards has the AI write cards for text with the user's own API
// key and adds them to category. The default category is only created once
// the AI has returned cards.
func (s *Service) GenerateFlashcards(ctx context.Context, userID uint, category, text string) ([]models.Flashcard, error) {
	missing, err := s.checkCategory(ctx, userID, category)
	if err != nil {
		return nil, err
	}
	settings, err := s.repo.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	cards, err := s.ai.GenerateFlashcards(ctx, settings.APIKey, text)
	if err != nil {
		return nil, err
	}
	s.log.Info("flashcards generated", "user_id", userID, "category", category, "count", len(cards))
	return s.addCards(ctx, userID, category, missing, cards)
}

func (s *Service) addCards(ctx context.Context, userID uint, category string, missing bool, cards []cardtext.Card) ([]models.Flashcard, error) {
	createdCategory := false
	if missing {
		var err error
		if createdCategory, err = s.createDefaultCategory(ctx, userID, category); err != nil {
			return nil, err
		}
	}

	rows := make([]models.Flashcard, len(cards))
	for i, c := range cards {
		rows[i] = models.Flashcard{Front: c.Front, Back: c.Back, Category: category}
	}
	created, err := s.repo.CreateFlashcards(ctx, userID, rows)
	if err != nil {
		return nil, err
	}
	if createdCategory {
		s.publish(ctx, userID, events.Categories, events.Flashcards)
	} else {
		s.publish(ctx, userID, events.Flashcards)
	}
	return created, nil
}
