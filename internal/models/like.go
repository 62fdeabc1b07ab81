package models

// Like marks that a user endorsed a guestbook entry. At most one row exists
// per (guestbook_id, user_id) pair; repeating the toggle removes it again.
type Like struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	GuestbookID uint   `json:"guestbook_id" gorm:"not null;uniqueIndex:idx_guestbook_user_like"`
	UserID      string `json:"user_id" gorm:"not null;uniqueIndex:idx_guestbook_user_like"`
}

// TableName overrides the gorm table name for Like
func (Like) TableName() string {
	return "likes"
}

// ToggleLikeRequest defines the request body for toggling a like
type ToggleLikeRequest struct {
	UserID string `json:"user_id" validate:"required"`
}
