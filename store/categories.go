package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrewpaige1/studysnap-api/models"
	"gorm.io/gorm"
)

// ListCategories returns the user's categories, oldest first.
//
// Older data can hold categories with no public ID, or cards filed under a
// name that has no category row at all. Both are repaired here on read so
// callers only ever see complete records.
func (s *Store) ListCategories(ctx context.Context, userID uint) ([]models.Category, error) {
	if err := s.normalizeCategories(ctx, userID); err != nil {
		return nil, err
	}

	var categories []models.Category
	err := s.conn(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").Order("id asc").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *Store) normalizeCategories(ctx context.Context, userID uint) error {
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var missingID []models.Category
		if err := tx.Where("user_id = ? AND (public_id = '' OR public_id IS NULL)", userID).Find(&missingID).Error; err != nil {
			return fmt.Errorf("find categories without id: %w", err)
		}
		for i := range missingID {
			id, err := newPublicID()
			if err != nil {
				return err
			}
			if err := tx.Model(&missingID[i]).Update("public_id", id).Error; err != nil {
				return fmt.Errorf("assign category id: %w", err)
			}
		}

		var orphans []string
		err := tx.Model(&models.Flashcard{}).
			Distinct("category").
			Where("user_id = ?", userID).
			Where("category NOT IN (?)", tx.Model(&models.Category{}).Select("name").Where("user_id = ?", userID)).
			Pluck("category", &orphans).Error
		if err != nil {
			return fmt.Errorf("find orphaned category names: %w", err)
		}
		for _, name := range orphans {
			var first models.Flashcard
			if err := tx.Where("user_id = ? AND category = ?", userID, name).Order("created_at asc").First(&first).Error; err != nil {
				return fmt.Errorf("find first card of %q: %w", name, err)
			}
			id, err := newPublicID()
			if err != nil {
				return err
			}
			c := models.Category{PublicID: id, UserID: userID, Name: name, CreatedAt: first.CreatedAt}
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("create category %q: %w", name, err)
			}
		}
		return nil
	})
}

func (s *Store) GetCategory(ctx context.Context, userID uint, name string) (*models.Category, error) {
	var c models.Category
	if err := s.conn(ctx).Where("user_id = ? AND name = ?", userID, name).First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// CreateCategory adds a category. Names are case-sensitive, so "Go" and "go"
// are different categories.
func (s *Store) CreateCategory(ctx context.Context, userID uint, name string) (*models.Category, error) {
	id, err := newPublicID()
	if err != nil {
		return nil, err
	}
	c := models.Category{PublicID: id, UserID: userID, Name: name}

	err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Where("user_id = ? AND name = ?", userID, name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryExists
		}
		return tx.Create(&c).Error
	})
	switch {
	case errors.Is(err, ErrCategoryExists), errors.Is(err, gorm.ErrDuplicatedKey):
		return nil, ErrCategoryExists
	case err != nil:
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &c, nil
}

// DeleteCategory removes a category together with its flashcards and their
// study progress, in one transaction. It returns the number of cards removed.
func (s *Store) DeleteCategory(ctx context.Context, userID uint, name string) (int64, error) {
	var removed int64
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND name = ?", userID, name).Delete(&models.Category{})
		if res.Error != nil {
			return fmt.Errorf("delete category: %w", res.Error)
		}
		categoryRows := res.RowsAffected

		cardIDs := tx.Model(&models.Flashcard{}).Select("public_id").Where("user_id = ? AND category = ?", userID, name)
		if err := tx.Where("user_id = ? AND flashcard_id IN (?)", userID, cardIDs).Delete(&models.StudyProgress{}).Error; err != nil {
			return fmt.Errorf("delete category progress: %w", err)
		}

		res = tx.Where("user_id = ? AND category = ?", userID, name).Delete(&models.Flashcard{})
		if res.Error != nil {
			return fmt.Errorf("delete category flashcards: %w", res.Error)
		}
		removed = res.RowsAffected

		if categoryRows == 0 && removed == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
