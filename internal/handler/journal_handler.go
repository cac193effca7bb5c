package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/service"
)

// JournalHandler handles journal and gratitude endpoints
type JournalHandler struct {
	journalService *service.JournalService
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// CreateEntry godoc
// @Summary Create a journal entry
// @Tags Journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} model.JournalEntry
// @Failure 400 {object} model.ErrorResponse
// @Router /journal [post]
func (h *JournalHandler) CreateEntry(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req model.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	entry, err := h.journalService.CreateEntry(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListEntries godoc
// @Summary List journal entries, newest first
// @Tags Journal
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} model.JournalEntry
// @Failure 500 {object} model.ErrorResponse
// @Router /journal [get]
func (h *JournalHandler) ListEntries(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.journalService.GetEntries(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to list journal entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetEntry godoc
// @Summary Get a single journal entry
// @Tags Journal
// @Security BearerAuth
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} model.JournalEntry
// @Failure 404 {object} model.ErrorResponse
// @Router /journal/{id} [get]
func (h *JournalHandler) GetEntry(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid entry id"})
		return
	}

	entry, err := h.journalService.GetEntry(id, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Journal entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateEntry godoc
// @Summary Update a journal entry
// @Tags Journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param body body model.UpdateJournalEntryRequest true "Entry update"
// @Success 200 {object} model.JournalEntry
// @Failure 404 {object} model.ErrorResponse
// @Router /journal/{id} [put]
func (h *JournalHandler) UpdateEntry(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid entry id"})
		return
	}

	var req model.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	entry, err := h.journalService.UpdateEntry(id, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Journal entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry godoc
// @Summary Delete a journal entry
// @Tags Journal
// @Security BearerAuth
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} model.SuccessResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /journal/{id} [delete]
func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid entry id"})
		return
	}

	if err := h.journalService.DeleteEntry(id, userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Journal entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Message: "Journal entry deleted"})
}

// CreateGratitude godoc
// @Summary Create a gratitude entry
// @Tags Gratitude
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.CreateGratitudeEntryRequest true "Gratitude entry"
// @Success 201 {object} model.GratitudeEntry
// @Failure 400 {object} model.ErrorResponse
// @Router /gratitude [post]
func (h *JournalHandler) CreateGratitude(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req model.CreateGratitudeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	entry, err := h.journalService.CreateGratitudeEntry(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListGratitude godoc
// @Summary List gratitude entries, newest first
// @Tags Gratitude
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} model.GratitudeEntry
// @Failure 500 {object} model.ErrorResponse
// @Router /gratitude [get]
func (h *JournalHandler) ListGratitude(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.journalService.GetGratitudeEntries(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to list gratitude entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// DeleteGratitude godoc
// @Summary Delete a gratitude entry
// @Tags Gratitude
// @Security BearerAuth
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} model.SuccessResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /gratitude/{id} [delete]
func (h *JournalHandler) DeleteGratitude(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid entry id"})
		return
	}

	if err := h.journalService.DeleteGratitudeEntry(id, userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Gratitude entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Message: "Gratitude entry deleted"})
}
