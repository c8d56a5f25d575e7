package models

import "time"

// Notification is append-only; rows are written by the emitter and read
// through the listing endpoint.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Type      string    `gorm:"type:varchar(32);not null" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
