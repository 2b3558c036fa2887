// Package store keeps each user's categories, flashcards, study progress and
// settings in a relational database through gorm.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrewpaige1/studysnap-api/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrCategoryExists = errors.New("category already exists")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// SyncUser returns the user for a token subject, creating it on first sight
// and refreshing a changed nickname.
func (s *Store) SyncUser(ctx context.Context, subject, nickname string) (*models.User, error) {
	var user models.User
	err := s.conn(ctx).Where("subject = ?", subject).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{Subject: subject, Nickname: nickname}
		if err := s.conn(ctx).Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return &user, nil
	case err != nil:
		return nil, fmt.Errorf("find user: %w", err)
	}

	if nickname != "" && user.Nickname != nickname {
		user.Nickname = nickname
		if err := s.conn(ctx).Save(&user).Error; err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	}
	return &user, nil
}

func newPublicID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
