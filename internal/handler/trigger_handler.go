package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/service"
)

// TriggerHandler handles the external trigger webhook
type TriggerHandler struct {
	triggerService *service.TriggerService
}

func NewTriggerHandler(triggerService *service.TriggerService) *TriggerHandler {
	return &TriggerHandler{triggerService: triggerService}
}

// Webhook godoc
// @Summary Ingest an external trigger event
// @Description Stores the event and queues it for asynchronous intervention
// @Description processing. Requires the x-webhook-secret header.
// @Tags Triggers
// @Accept json
// @Produce json
// @Param x-webhook-secret header string true "Webhook secret"
// @Param body body model.TriggerEventRequest true "Trigger event"
// @Success 202 {object} model.TriggerEvent
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /webhooks/trigger [post]
func (h *TriggerHandler) Webhook(c *gin.Context) {
	var req model.TriggerEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	event, err := h.triggerService.ProcessTrigger(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, event)
}

// List godoc
// @Summary List recent trigger events for the current user
// @Tags Triggers
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max events" default(20)
// @Success 200 {array} model.TriggerEvent
// @Failure 500 {object} model.ErrorResponse
// @Router /triggers [get]
func (h *TriggerHandler) List(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	events, err := h.triggerService.GetTriggerEvents(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to list trigger events"})
		return
	}

	c.JSON(http.StatusOK, events)
}
