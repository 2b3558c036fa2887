package store

import (
	"context"
	"fmt"

	"github.com/andrewpaige1/studysnap-api/models"
	"gorm.io/gorm"
)

// ListFlashcards returns every card the user owns, oldest first.
func (s *Store) ListFlashcards(ctx context.Context, userID uint) ([]models.Flashcard, error) {
	return s.findFlashcards(ctx, s.conn(ctx).Where("user_id = ?", userID))
}

func (s *Store) ListFlashcardsByCategory(ctx context.Context, userID uint, category string) ([]models.Flashcard, error) {
	return s.findFlashcards(ctx, s.conn(ctx).Where("user_id = ? AND category = ?", userID, category))
}

func (s *Store) findFlashcards(ctx context.Context, q *gorm.DB) ([]models.Flashcard, error) {
	flashcards := []models.Flashcard{}
	if err := q.Order("created_at asc").Order("id asc").Find(&flashcards).Error; err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	// Lazy migration: generate and save public_id if missing
	for i := range flashcards {
		if flashcards[i].PublicID != "" {
			continue
		}
		publicID, err := newPublicID()
		if err != nil {
			return nil, err
		}
		if err := s.conn(ctx).Model(&flashcards[i]).Update("public_id", publicID).Error; err != nil {
			return nil, fmt.Errorf("assign flashcard id: %w", err)
		}
	}
	return flashcards, nil
}

func (s *Store) GetFlashcard(ctx context.Context, userID uint, publicID string) (*models.Flashcard, error) {
	var f models.Flashcard
	if err := s.conn(ctx).Where("user_id = ? AND public_id = ?", userID, publicID).First(&f).Error; err != nil {
		return nil, notFound(err)
	}
	return &f, nil
}

// CreateFlashcards inserts cards for the user in one transaction, assigning
// each a public ID. Either every card is stored or none is.
func (s *Store) CreateFlashcards(ctx context.Context, userID uint, cards []models.Flashcard) ([]models.Flashcard, error) {
	created := make([]models.Flashcard, len(cards))
	copy(created, cards)

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range created {
			publicID, err := newPublicID()
			if err != nil {
				return err
			}
			created[i].ID = 0
			created[i].PublicID = publicID
			created[i].UserID = userID
			if err := tx.Create(&created[i]).Error; err != nil {
				return fmt.Errorf("create flashcard: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateFlashcard saves front, back and category of an existing card.
func (s *Store) UpdateFlashcard(ctx context.Context, card *models.Flashcard) error {
	res := s.conn(ctx).Model(&models.Flashcard{}).
		Where("user_id = ? AND public_id = ?", card.UserID, card.PublicID).
		Updates(map[string]interface{}{
			"front":    card.Front,
			"back":     card.Back,
			"category": card.Category,
		})
	if res.Error != nil {
		return fmt.Errorf("update flashcard: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteFlashcard removes a card and its study progress.
func (s *Store) DeleteFlashcard(ctx context.Context, userID uint, publicID string) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND public_id = ?", userID, publicID).Delete(&models.Flashcard{})
		if res.Error != nil {
			return fmt.Errorf("delete flashcard: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("user_id = ? AND flashcard_id = ?", userID, publicID).Delete(&models.StudyProgress{}).Error; err != nil {
			return fmt.Errorf("delete flashcard progress: %w", err)
		}
		return nil
	})
}
