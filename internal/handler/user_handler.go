package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/service"
)

// UserHandler handles profile, stats and push token endpoints
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfile godoc
// @Summary Update profile fields (timezone, bedtime, settings)
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.UpdateUserRequest true "Profile update"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(userID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateArchetype godoc
// @Summary Change the user's archetype
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.UpdateArchetypeRequest true "Archetype update"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /users/me/archetype [put]
func (h *UserHandler) UpdateArchetype(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req model.UpdateArchetypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	user, err := h.userService.UpdateArchetype(userID, req.Archetype)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetStats godoc
// @Summary Get engagement stats (check-ins, streaks, letters)
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.UserStatsResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /users/me/stats [get]
func (h *UserHandler) GetStats(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	stats, err := h.userService.GetStats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// RegisterPushToken godoc
// @Summary Register a device push token
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.RegisterPushTokenRequest true "Push token registration"
// @Success 200 {object} model.PushToken
// @Failure 400 {object} model.ErrorResponse
// @Router /push/register [post]
func (h *UserHandler) RegisterPushToken(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req model.RegisterPushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	token, err := h.userService.RegisterPushToken(userID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, token)
}

// ListPushTokens godoc
// @Summary List the user's active push tokens
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.PushToken
// @Failure 500 {object} model.ErrorResponse
// @Router /push/tokens [get]
func (h *UserHandler) ListPushTokens(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	tokens, err := h.userService.ListPushTokens(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to list push tokens"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}
