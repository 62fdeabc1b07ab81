package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/guestbook-app/backend/internal/models"
	"github.com/guestbook-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const passwordMismatchMessage = "비밀번호가 일치하지 않습니다."

// EntryHandler handles HTTP requests related to guestbook entries
type EntryHandler struct {
	entryRepository repositories.EntryRepository
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryRepo repositories.EntryRepository) *EntryHandler {
	return &EntryHandler{
		entryRepository: entryRepo,
	}
}

// RegisterEntryRoutes registers guestbook entry routes
func (h *EntryHandler) RegisterEntryRoutes(g *echo.Group) {
	g.POST("/guestbook", h.CreateEntry)
	g.GET("/guestbook", h.GetEntries)
	g.GET("/guestbook/search", h.SearchEntries)
	g.PUT("/guestbook/:id", h.UpdateEntry)
	g.DELETE("/guestbook/:id", h.DeleteEntry)
}

// CreateEntry creates a new guestbook entry
func (h *EntryHandler) CreateEntry(c echo.Context) error {
	var req models.CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry := &models.Entry{
		Name:     req.Name,
		Message:  req.Message,
		Password: req.Password,
	}

	if err := h.entryRepository.CreateEntry(entry); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// The created row, password included, mirroring the insert's RETURNING *.
	return c.JSON(http.StatusOK, entry)
}

// GetEntries retrieves all guestbook entries, newest first, without passwords
func (h *EntryHandler) GetEntries(c echo.Context) error {
	entries, err := h.entryRepository.GetEntries()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, entries)
}

// UpdateEntry overwrites an entry's message if the supplied password matches
func (h *EntryHandler) UpdateEntry(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid entry ID")
	}

	var req models.UpdateEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.entryRepository.GetEntryByID(uint(id))
	if err != nil {
		// A missing row fails the password check, same as a mismatch.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusForbidden, passwordMismatchMessage)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if entry.Password != req.Password {
		return echo.NewHTTPError(http.StatusForbidden, passwordMismatchMessage)
	}

	if err := h.entryRepository.UpdateEntryMessage(uint(id), req.Message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, models.Entry{
		ID:        entry.ID,
		Name:      entry.Name,
		Message:   req.Message,
		CreatedAt: entry.CreatedAt,
	})
}

// DeleteEntry permanently removes an entry if the supplied password matches
func (h *EntryHandler) DeleteEntry(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid entry ID")
	}

	var req models.DeleteEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	entry, err := h.entryRepository.GetEntryByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusForbidden, passwordMismatchMessage)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if entry.Password != req.Password {
		return echo.NewHTTPError(http.StatusForbidden, passwordMismatchMessage)
	}

	if err := h.entryRepository.DeleteEntry(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "삭제되었습니다."})
}

// SearchEntries retrieves entries whose message contains the query term,
// case-insensitive. A blank or absent term returns every entry.
func (h *EntryHandler) SearchEntries(c echo.Context) error {
	term := strings.TrimSpace(c.QueryParam("query"))

	entries, err := h.entryRepository.SearchEntries(term)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, entries)
}
