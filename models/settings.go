package models

// Settings holds a user's AI generation settings.
type Settings struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	UserID uint   `gorm:"not null;uniqueIndex" json:"-"`
	APIKey string `gorm:"size:512" json:"-"`
}

// MaskedAPIKey shows only the last four characters of the key.
func (s Settings) MaskedAPIKey() string {
	if len(s.APIKey) <= 4 {
		if s.APIKey == "" {
			return ""
		}
		return "****"
	}
	return "****" + s.APIKey[len(s.APIKey)-4:]
}
