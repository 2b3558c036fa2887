package models

import "time"

// User is created on the first authenticated request for a token subject.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Subject   string    `gorm:"uniqueIndex;not null;size:255" json:"subject"`
	Nickname  string    `gorm:"size:100" json:"nickname"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
