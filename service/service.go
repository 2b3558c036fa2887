// Package service is the study application: it validates input, writes the
// user's collections through the store, runs the mastery engine and
// publishes a snapshot of every collection it changed.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/andrewpaige1/studysnap-api/cardtext"
	"github.com/andrewpaige1/studysnap-api/events"
	"github.com/andrewpaige1/studysnap-api/logger"
	"github.com/andrewpaige1/studysnap-api/models"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go

// DefaultCategory is used for cards created without a category. It is
// created on demand.
const DefaultCategory = "General"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownCategory = errors.New("unknown category")
)

type CategoryRI interface {
	ListCategories(ctx context.Context, userID uint) ([]models.Category, error)
	GetCategory(ctx context.Context, userID uint, name string) (*models.Category, error)
	CreateCategory(ctx context.Context, userID uint, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID uint, name string) (int64, error)
}

type FlashcardRI interface {
	ListFlashcards(ctx context.Context, userID uint) ([]models.Flashcard, error)
	ListFlashcardsByCategory(ctx context.Context, userID uint, category string) ([]models.Flashcard, error)
	GetFlashcard(ctx context.Context, userID uint, publicID string) (*models.Flashcard, error)
	CreateFlashcards(ctx context.Context, userID uint, cards []models.Flashcard) ([]models.Flashcard, error)
	UpdateFlashcard(ctx context.Context, card *models.Flashcard) error
	DeleteFlashcard(ctx context.Context, userID uint, publicID string) error
}

type ProgressRI interface {
	GetProgress(ctx context.Context, userID uint, flashcardID string) (*models.StudyProgress, error)
	SaveProgress(ctx context.Context, p *models.StudyProgress) error
	ListProgress(ctx context.Context, userID uint) ([]models.StudyProgress, error)
}

type SettingsRI interface {
	GetSettings(ctx context.Context, userID uint) (*models.Settings, error)
	SaveAPIKey(ctx context.Context, userID uint, apiKey string) error
}

type RepositoryI interface {
	CategoryRI
	FlashcardRI
	ProgressRI
	SettingsRI
}

type GeneratorI interface {
	GenerateFlashcards(ctx context.Context, apiKey, text string) ([]cardtext.Card, error)
}

type BrokerI interface {
	Publish(ctx context.Context, s events.Snapshot) error
	Subscribe(ctx context.Context, userID uint) (<-chan events.Snapshot, error)
}

type Service struct {
	repo   RepositoryI
	ai     GeneratorI
	broker BrokerI
	log    *logger.Logger
	now    func() time.Time
}

func New(repo RepositoryI, ai GeneratorI, broker BrokerI, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		ai:     ai,
		broker: broker,
		log:    log.With("service", "StudyService"),
		now:    time.Now,
	}
}
