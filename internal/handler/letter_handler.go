package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/service"
)

// LetterHandler handles loved-one letter endpoints
type LetterHandler struct {
	letterService *service.LetterService
}

func NewLetterHandler(letterService *service.LetterService) *LetterHandler {
	return &LetterHandler{letterService: letterService}
}

// Create godoc
// @Summary Create a loved-one letter
// @Tags Letters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.CreateLetterRequest true "Letter"
// @Success 201 {object} model.LovedOneLetter
// @Failure 400 {object} model.ErrorResponse
// @Router /letters [post]
func (h *LetterHandler) Create(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req model.CreateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	letter, err := h.letterService.CreateLetter(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, letter)
}

// List godoc
// @Summary List the user's letters, newest first
// @Tags Letters
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.LovedOneLetter
// @Failure 500 {object} model.ErrorResponse
// @Router /letters [get]
func (h *LetterHandler) List(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	letters, err := h.letterService.GetLetters(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to list letters"})
		return
	}

	c.JSON(http.StatusOK, letters)
}

// Get godoc
// @Summary Get a single letter
// @Tags Letters
// @Security BearerAuth
// @Produce json
// @Param id path string true "Letter ID"
// @Success 200 {object} model.LovedOneLetter
// @Failure 404 {object} model.ErrorResponse
// @Router /letters/{id} [get]
func (h *LetterHandler) Get(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid letter id"})
		return
	}

	letter, err := h.letterService.GetLetter(id, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Letter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, letter)
}

// Update godoc
// @Summary Update a letter (content, audio, delivery status)
// @Tags Letters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Letter ID"
// @Param body body model.UpdateLetterRequest true "Letter update"
// @Success 200 {object} model.LovedOneLetter
// @Failure 404 {object} model.ErrorResponse
// @Router /letters/{id} [put]
func (h *LetterHandler) Update(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid letter id"})
		return
	}

	var req model.UpdateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	letter, err := h.letterService.UpdateLetter(id, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Letter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, letter)
}

// Delete godoc
// @Summary Delete a letter
// @Tags Letters
// @Security BearerAuth
// @Produce json
// @Param id path string true "Letter ID"
// @Success 200 {object} model.SuccessResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /letters/{id} [delete]
func (h *LetterHandler) Delete(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid letter id"})
		return
	}

	if err := h.letterService.DeleteLetter(id, userID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Letter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Message: "Letter deleted"})
}
