package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/guestbook-app/backend/internal/models"
	"github.com/guestbook-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/guestbook/:id/like", h.ToggleLike)
	g.GET("/guestbook/:id/likes", h.GetLikeCount)
}

// ToggleLike likes an entry on behalf of a user, or removes the like if the
// same user already liked it. Responds with the like count read after the
// mutation; the two queries are not wrapped in a transaction.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid entry ID")
	}

	var req models.ToggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id가 필요합니다.")
	}

	hasLiked, err := h.likeRepository.HasUserLikedEntry(uint(entryID), req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if hasLiked {
		if err := h.likeRepository.DeleteLike(uint(entryID), req.UserID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		count, err := h.likeRepository.GetLikesCountByEntryID(uint(entryID))
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		return c.JSON(http.StatusOK, echo.Map{"message": "좋아요가 취소되었습니다.", "like_count": count})
	}

	like := &models.Like{
		GuestbookID: uint(entryID),
		UserID:      req.UserID,
	}

	if err := h.likeRepository.CreateLike(like); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	count, err := h.likeRepository.GetLikesCountByEntryID(uint(entryID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "좋아요가 추가되었습니다.", "like_count": count})
}

// GetLikeCount retrieves the number of likes for an entry. An entry nobody
// liked, or one that does not exist, counts 0.
func (h *LikeHandler) GetLikeCount(c echo.Context) error {
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid entry ID")
	}

	count, err := h.likeRepository.GetLikesCountByEntryID(uint(entryID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"like_count": count})
}
