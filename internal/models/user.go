package models

import "time"

// User is an identity record keyed by login email. The unique index backs
// the find-or-create path used by third-party sign-in.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Picture   *string   `gorm:"size:512" json:"picture"`
	CreatedAt time.Time `json:"created_at"`
}
