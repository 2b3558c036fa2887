package service

import (
	"context"

	"github.com/andrewpaige1/studysnap-api/events"
	"github.com/andrewpaige1/studysnap-api/mastery"
	"github.com/andrewpaige1/studysnap-api/models"
)

// RateFlashcard records one study rating for a card and returns the updated
// progress record.
func (s *Service) RateFlashcard(ctx context.Context, userID uint, publicID string, rating int) (*models.StudyProgress, error) {
	r, err := mastery.ParseRating(rating)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetFlashcard(ctx, userID, publicID); err != nil {
		return nil, err
	}

	record, err := s.repo.GetProgress(ctx, userID, publicID)
	if err != nil {
		return nil, err
	}
	record.SetProgress(mastery.ApplyRating(record.Progress(), r, s.now()))
	if err := s.repo.SaveProgress(ctx, record); err != nil {
		return nil, err
	}

	s.log.Debug("flashcard rated", "user_id", userID, "flashcard_id", publicID, "rating", r, "mastery", record.Mastery, "streak", record.Streak)
	s.publish(ctx, userID, events.StudyProgress)
	return record, nil
}

// ListProgress returns every progress record of the user keyed by card ID.
func (s *Service) ListProgress(ctx context.Context, userID uint) (map[string]models.StudyProgress, error) {
	records, err := s.repo.ListProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.StudyProgress, len(records))
	for _, r := range records {
		out[r.FlashcardID] = r
	}
	return out, nil
}
