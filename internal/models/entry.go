package models

import "time"

// Entry represents one guestbook row. The password is the plaintext token the
// author supplied at creation; it must be presented again to update or delete
// the entry and is never part of the list projection.
type Entry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	Password  string    `json:"password,omitempty" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the gorm table name for Entry
func (Entry) TableName() string {
	return "guestbook"
}

// CreateEntryRequest defines the request body for creating a guestbook entry
type CreateEntryRequest struct {
	Name     string `json:"name" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateEntryRequest defines the request body for updating an entry's message.
// The password is compared against the stored one in the handler; a missing
// password simply fails that comparison.
type UpdateEntryRequest struct {
	Message  string `json:"message" validate:"required"`
	Password string `json:"password"`
}

// DeleteEntryRequest defines the request body for deleting an entry
type DeleteEntryRequest struct {
	Password string `json:"password"`
}
