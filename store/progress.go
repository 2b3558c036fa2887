package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrewpaige1/studysnap-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetProgress returns the stored progress for a card. A card that was never
// rated yields an unsaved zero record rather than ErrNotFound.
func (s *Store) GetProgress(ctx context.Context, userID uint, flashcardID string) (*models.StudyProgress, error) {
	p := models.StudyProgress{UserID: userID, FlashcardID: flashcardID}
	err := s.conn(ctx).Where("user_id = ? AND flashcard_id = ?", userID, flashcardID).First(&p).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return &p, nil
}

// SaveProgress inserts or replaces the progress record of a card.
func (s *Store) SaveProgress(ctx context.Context, p *models.StudyProgress) error {
	if p.ID != 0 {
		if err := s.conn(ctx).Save(p).Error; err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		return nil
	}
	// Two first ratings of the same card can race to insert.
	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "flashcard_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"mastery", "streak", "total_reviews", "rating_history", "last_studied", "last_study_date",
		}),
	}).Create(p).Error
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (s *Store) ListProgress(ctx context.Context, userID uint) ([]models.StudyProgress, error) {
	records := []models.StudyProgress{}
	if err := s.conn(ctx).Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return records, nil
}
