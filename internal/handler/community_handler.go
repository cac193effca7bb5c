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

// CommunityHandler handles community wall endpoints
type CommunityHandler struct {
	communityService *service.CommunityService
}

func NewCommunityHandler(communityService *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// Create godoc
// @Summary Post a message to the community wall
// @Tags Community
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.CreateCommunityMessageRequest true "Message"
// @Success 201 {object} model.CommunityMessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /messages [post]
func (h *CommunityHandler) Create(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)
	archetype := model.Archetype(c.GetString("archetype"))

	var req model.CreateCommunityMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	msg, err := h.communityService.CreateMessage(userID, archetype, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// List godoc
// @Summary List the public community feed
// @Tags Community
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} model.CommunityMessageResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /messages [get]
func (h *CommunityHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, err := h.communityService.GetMessages(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// Like godoc
// @Summary Like a community message
// @Tags Community
// @Security BearerAuth
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} model.SuccessResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /messages/{id}/like [post]
func (h *CommunityHandler) Like(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid message id"})
		return
	}

	if err := h.communityService.LikeMessage(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Message: "Message liked"})
}

// Flag godoc
// @Summary Flag a community message for review
// @Tags Community
// @Security BearerAuth
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} model.SuccessResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /messages/{id}/flag [post]
func (h *CommunityHandler) Flag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid message id"})
		return
	}

	if err := h.communityService.FlagMessage(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Message: "Message flagged"})
}
