package service

import (
	"context"
	"strings"

	"github.com/andrewpaige1/studysnap-api/events"
	"github.com/andrewpaige1/studysnap-api/models"
)

// AISettings never carries the key itself.
type AISettings struct {
	HasAPIKey bool   `json:"hasApiKey"`
	APIKey    string `json:"apiKey"`
}

func newAISettings(s *models.Settings) AISettings {
	return AISettings{HasAPIKey: s.APIKey != "", APIKey: s.MaskedAPIKey()}
}

func (s *Service) GetAISettings(ctx context.Context, userID uint) (AISettings, error) {
	settings, err := s.repo.GetSettings(ctx, userID)
	if err != nil {
		return AISettings{}, err
	}
	return newAISettings(settings), nil
}

// SaveAPIKey stores the user's AI key. An empty key clears it.
func (s *Service) SaveAPIKey(ctx context.Context, userID uint, apiKey string) (AISettings, error) {
	apiKey = strings.TrimSpace(apiKey)
	if err := s.repo.SaveAPIKey(ctx, userID, apiKey); err != nil {
		return AISettings{}, err
	}
	s.publish(ctx, userID, events.Settings)
	return newAISettings(&models.Settings{UserID: userID, APIKey: apiKey}), nil
}
