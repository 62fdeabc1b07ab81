package repositories

import (
	"testing"

	"github.com/guestbook-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeLifecycle(t *testing.T) {
	db := setupTestDB(t)
	entryRepo := NewPostgresEntryRepository(db)
	repo := NewPostgresLikeRepository(db)

	entry := createEntry(t, entryRepo, "A", "hi", "p1")

	hasLiked, err := repo.HasUserLikedEntry(entry.ID, "u1")
	require.NoError(t, err)
	assert.False(t, hasLiked)

	require.NoError(t, repo.CreateLike(&models.Like{GuestbookID: entry.ID, UserID: "u1"}))

	hasLiked, err = repo.HasUserLikedEntry(entry.ID, "u1")
	require.NoError(t, err)
	assert.True(t, hasLiked)

	count, err := repo.GetLikesCountByEntryID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// A different user's like is a separate pair.
	require.NoError(t, repo.CreateLike(&models.Like{GuestbookID: entry.ID, UserID: "u2"}))
	count, err = repo.GetLikesCountByEntryID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.DeleteLike(entry.ID, "u1"))

	hasLiked, err = repo.HasUserLikedEntry(entry.ID, "u1")
	require.NoError(t, err)
	assert.False(t, hasLiked)

	count, err = repo.GetLikesCountByEntryID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteLikeNotFound(t *testing.T) {
	repo := NewPostgresLikeRepository(setupTestDB(t))

	err := repo.DeleteLike(1, "nobody")
	assert.EqualError(t, err, "like not found")
}

func TestOrphanedLikesStillCount(t *testing.T) {
	db := setupTestDB(t)
	entryRepo := NewPostgresEntryRepository(db)
	repo := NewPostgresLikeRepository(db)

	entry := createEntry(t, entryRepo, "A", "hi", "p1")
	require.NoError(t, repo.CreateLike(&models.Like{GuestbookID: entry.ID, UserID: "u1"}))

	// Deleting the entry does not cascade; the like row stays behind.
	require.NoError(t, entryRepo.DeleteEntry(entry.ID))

	count, err := repo.GetLikesCountByEntryID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
