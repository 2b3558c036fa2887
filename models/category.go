package models

import "time"

// Category names a group of flashcards. Cards reference it by Name, so the
// name is unique per user and case-sensitive.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PublicID  string    `gorm:"size:21;index" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_categories_user_name" json:"-"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Name      string    `gorm:"not null;size:100;uniqueIndex:idx_categories_user_name" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
