package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrewpaige1/studysnap-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetSettings returns the user's settings, or empty settings if none were
// saved yet.
func (s *Store) GetSettings(ctx context.Context, userID uint) (*models.Settings, error) {
	settings := models.Settings{UserID: userID}
	err := s.conn(ctx).Where("user_id = ?", userID).First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &settings, nil
}

func (s *Store) SaveAPIKey(ctx context.Context, userID uint, apiKey string) error {
	settings := models.Settings{UserID: userID, APIKey: apiKey}
	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"api_key"}),
	}).Create(&settings).Error
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
