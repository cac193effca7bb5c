package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/service"
)

// CheckInHandler handles IFS check-in and streak endpoints
type CheckInHandler struct {
	checkInService *service.CheckInService
}

func NewCheckInHandler(checkInService *service.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService}
}

// Create godoc
// @Summary Submit an IFS check-in
// @Tags CheckIns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body model.CreateCheckInRequest true "Check-in"
// @Success 201 {object} model.CheckIn
// @Failure 400 {object} model.ErrorResponse
// @Router /checkins [post]
func (h *CheckInHandler) Create(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req model.CreateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	checkIn, err := h.checkInService.CreateCheckIn(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, checkIn)
}

// List godoc
// @Summary List check-ins, newest first
// @Tags CheckIns
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} model.CheckInListResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /checkins [get]
func (h *CheckInHandler) List(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, err := h.checkInService.GetCheckIns(userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStreaks godoc
// @Summary Get streak counters keyed by type
// @Tags Streaks
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]model.StreakState
// @Failure 500 {object} model.ErrorResponse
// @Router /streaks [get]
func (h *CheckInHandler) GetStreaks(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	streaks, err := h.checkInService.GetStreaks(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, streaks)
}

// GetStats godoc
// @Summary Summarize check-ins over a trailing day window
// @Tags CheckIns
// @Security BearerAuth
// @Produce json
// @Param days query int false "Window in days" default(7)
// @Success 200 {object} model.CheckInStatsResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /checkins/stats [get]
func (h *CheckInHandler) GetStats(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	stats, err := h.checkInService.GetStats(userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
