package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/guestbook-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type likeResponse struct {
	Message   string `json:"message"`
	LikeCount int64  `json:"like_count"`
}

func toggleLike(t *testing.T, h *LikeHandler, e *echo.Echo, entryID uint, userID string) likeResponse {
	t.Helper()

	c, rec := newJSONContext(e, http.MethodPost, "/", fmt.Sprintf(`{"user_id":%q}`, userID))
	c.SetPath("/api/guestbook/:id/like")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(entryID))
	require.NoError(t, h.ToggleLike(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp likeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestToggleLike(t *testing.T) {
	db := setupTestDB(t)
	entryRepo := repositories.NewPostgresEntryRepository(db)
	h := NewLikeHandler(repositories.NewPostgresLikeRepository(db))
	e := echo.New()

	entry := seedEntry(t, entryRepo, "A", "hi", "p1")

	resp := toggleLike(t, h, e, entry.ID, "u1")
	assert.Equal(t, "좋아요가 추가되었습니다.", resp.Message)
	assert.Equal(t, int64(1), resp.LikeCount)

	// Second toggle by the same user removes the like.
	resp = toggleLike(t, h, e, entry.ID, "u1")
	assert.Equal(t, "좋아요가 취소되었습니다.", resp.Message)
	assert.Equal(t, int64(0), resp.LikeCount)

	resp = toggleLike(t, h, e, entry.ID, "u1")
	assert.Equal(t, "좋아요가 추가되었습니다.", resp.Message)
	assert.Equal(t, int64(1), resp.LikeCount)

	resp = toggleLike(t, h, e, entry.ID, "u2")
	assert.Equal(t, int64(2), resp.LikeCount)
}

func TestToggleLikeMissingUserID(t *testing.T) {
	db := setupTestDB(t)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	h := NewLikeHandler(likeRepo)
	e := echo.New()

	c, _ := newJSONContext(e, http.MethodPost, "/", `{}`)
	c.SetPath("/api/guestbook/:id/like")
	c.SetParamNames("id")
	c.SetParamValues("1")
	err := h.ToggleLike(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, "user_id가 필요합니다.", httpErr.Message)

	// Validation fails before any store access.
	count, err := likeRepo.GetLikesCountByEntryID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetLikeCountZero(t *testing.T) {
	db := setupTestDB(t)
	h := NewLikeHandler(repositories.NewPostgresLikeRepository(db))
	e := echo.New()

	// Entry 42 does not exist; the count is still 0, not an error.
	c, rec := newJSONContext(e, http.MethodGet, "/", "")
	c.SetPath("/api/guestbook/:id/likes")
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, h.GetLikeCount(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp likeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp.LikeCount)
}
