package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/andrewpaige1/studysnap-api/events"
	"github.com/andrewpaige1/studysnap-api/mastery"
	"github.com/andrewpaige1/studysnap-api/models"
	"github.com/andrewpaige1/studysnap-api/store"
)

// CategoryView is a category together with its derived statistics.
type CategoryView struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	CreatedAt       time.Time             `json:"createdAt"`
	Stats           mastery.CategoryStats `json:"stats"`
	MasteryLabel    string                `json:"masteryLabel"`
	LastStudiedText string                `json:"lastStudiedText"`
}

func newCategoryView(c models.Category, cards []models.Flashcard, progress map[string]mastery.Progress, now time.Time) CategoryView {
	stats := mastery.AggregateCategoryStats(models.MasteryCards(cards), progress, c.Name, now)
	return CategoryView{
		ID:              c.PublicID,
		Name:            c.Name,
		CreatedAt:       c.CreatedAt,
		Stats:           stats,
		MasteryLabel:    mastery.DescribeMastery(stats.Mastery),
		LastStudiedText: mastery.FormatRecency(stats.LastStudied, now),
	}
}

func (s *Service) ListCategories(ctx context.Context, userID uint) ([]CategoryView, error) {
	categories, err := s.repo.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	cards, err := s.repo.ListFlashcards(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress, err := s.progressByCard(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]CategoryView, len(categories))
	for i, c := range categories {
		views[i] = newCategoryView(c, cards, progress, now)
	}
	return views, nil
}

func (s *Service) CategoryStats(ctx context.Context, userID uint, name string) (CategoryView, error) {
	c, err := s.repo.GetCategory(ctx, userID, name)
	if err != nil {
		return CategoryView{}, err
	}
	cards, err := s.repo.ListFlashcardsByCategory(ctx, userID, name)
	if err != nil {
		return CategoryView{}, err
	}
	progress, err := s.progressByCard(ctx, userID)
	if err != nil {
		return CategoryView{}, err
	}
	return newCategoryView(*c, cards, progress, s.now()), nil
}

func (s *Service) AddCategory(ctx context.Context, userID uint, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	c, err := s.repo.CreateCategory(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, userID, events.Categories)
	return c, nil
}

// DeleteCategory removes the category, every card filed under it and their
// progress. It returns the number of cards removed.
func (s *Service) DeleteCategory(ctx context.Context, userID uint, name string) (int64, error) {
	removed, err := s.repo.DeleteCategory(ctx, userID, name)
	if err != nil {
		return 0, err
	}
	s.log.Info("category deleted", "user_id", userID, "category", name, "cards_removed", removed)
	s.publish(ctx, userID, events.Categories, events.Flashcards, events.StudyProgress)
	return removed, nil
}

// requireCategory checks that name is one of the user's categories. The
// default category is created when missing and reported through created.
func (s *Service) requireCategory(ctx context.Context, userID uint, name string) (created bool, err error) {
	missing, err := s.checkCategory(ctx, userID, name)
	if err != nil || !missing {
		return false, err
	}
	return s.createDefaultCategory(ctx, userID, name)
}

// checkCategory reports whether name is the default category and still has
// to be created. Any other missing category is ErrUnknownCategory.
func (s *Service) checkCategory(ctx context.Context, userID uint, name string) (missing bool, err error) {
	_, err = s.repo.GetCategory(ctx, userID, name)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, store.ErrNotFound):
		return false, err
	case name != DefaultCategory:
		return false, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return true, nil
}

func (s *Service) createDefaultCategory(ctx context.Context, userID uint, name string) (bool, error) {
	_, err := s.repo.CreateCategory(ctx, userID, name)
	if err != nil && !errors.Is(err, store.ErrCategoryExists) {
		return false, err
	}
	return err == nil, nil
}

func (s *Service) progressByCard(ctx context.Context, userID uint) (map[string]mastery.Progress, error) {
	records, err := s.repo.ListProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	return models.ProgressByCard(records), nil
}
