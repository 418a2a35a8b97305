package models

import "time"

// Report is a user-submitted incident record. The image column holds only
// the stored filename; absolute URLs are built at response time.
type Report struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Description string    `gorm:"not null;type:text" json:"description"`
	Location    string    `gorm:"not null;size:255" json:"location"`
	Contact     string    `gorm:"not null;size:255" json:"contact"`
	Status      string    `gorm:"not null;size:50" json:"status"`
	Image       *string   `gorm:"size:255" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}
