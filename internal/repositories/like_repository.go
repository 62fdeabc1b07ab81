package repositories

import (
	"fmt"

	"github.com/guestbook-app/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(entryID uint, userID string) error
	GetLikesCountByEntryID(entryID uint) (int64, error)
	HasUserLikedEntry(entryID uint, userID string) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike creates a new like in PostgreSQL
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// DeleteLike deletes a like from PostgreSQL
func (r *PostgresLikeRepository) DeleteLike(entryID uint, userID string) error {
	res := r.db.Where("guestbook_id = ? AND user_id = ?", entryID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("like not found")
	}
	return nil
}

// GetLikesCountByEntryID retrieves the count of likes for a specific entry.
// Orphaned likes of a deleted entry still count; an unknown entry counts 0.
func (r *PostgresLikeRepository) GetLikesCountByEntryID(entryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("guestbook_id = ?", entryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasUserLikedEntry checks if a user has liked a specific entry
func (r *PostgresLikeRepository) HasUserLikedEntry(entryID uint, userID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("guestbook_id = ? AND user_id = ?", entryID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
