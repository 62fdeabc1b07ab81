package repositories

import (
	"strings"

	"github.com/guestbook-app/backend/internal/models"
	"gorm.io/gorm"
)

// EntryRepository defines the interface for guestbook entry data operations
type EntryRepository interface {
	CreateEntry(entry *models.Entry) error
	GetEntryByID(id uint) (*models.Entry, error)
	GetEntries() ([]models.Entry, error)
	UpdateEntryMessage(id uint, message string) error
	DeleteEntry(id uint) error
	SearchEntries(term string) ([]models.Entry, error)
}

// PostgresEntryRepository implements EntryRepository for PostgreSQL
type PostgresEntryRepository struct {
	db *gorm.DB
}

// NewPostgresEntryRepository creates a new PostgresEntryRepository
func NewPostgresEntryRepository(db *gorm.DB) *PostgresEntryRepository {
	return &PostgresEntryRepository{db: db}
}

// CreateEntry creates a new guestbook entry in PostgreSQL
func (r *PostgresEntryRepository) CreateEntry(entry *models.Entry) error {
	return r.db.Create(entry).Error
}

// GetEntryByID retrieves an entry by ID from PostgreSQL, password included
func (r *PostgresEntryRepository) GetEntryByID(id uint) (*models.Entry, error) {
	var entry models.Entry
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetEntries retrieves all entries newest first, excluding the password column
func (r *PostgresEntryRepository) GetEntries() ([]models.Entry, error) {
	// Non-nil so an empty table serializes as [] rather than null.
	entries := make([]models.Entry, 0)
	if err := r.db.Select("id", "name", "message", "created_at").Order("id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateEntryMessage overwrites the message of an entry; no other column changes
func (r *PostgresEntryRepository) UpdateEntryMessage(id uint, message string) error {
	return r.db.Model(&models.Entry{}).Where("id = ?", id).Update("message", message).Error
}

// DeleteEntry deletes an entry by ID. Likes referencing it are left in place.
func (r *PostgresEntryRepository) DeleteEntry(id uint) error {
	return r.db.Delete(&models.Entry{}, id).Error
}

// SearchEntries retrieves entries whose message contains term, case-insensitive,
// newest first. A blank term returns every entry. Both paths select all columns.
func (r *PostgresEntryRepository) SearchEntries(term string) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)
	query := r.db.Order("id DESC")
	if term != "" {
		query = query.Where("LOWER(message) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
