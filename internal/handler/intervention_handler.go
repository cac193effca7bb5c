package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taruapp/api-taru/internal/model"
	"github.com/taruapp/api-taru/internal/service"
)

// InterventionHandler serves archetype-tailored intervention content
type InterventionHandler struct {
	interventionService *service.InterventionService
}

func NewInterventionHandler(interventionService *service.InterventionService) *InterventionHandler {
	return &InterventionHandler{interventionService: interventionService}
}

// Get godoc
// @Summary Get intervention content for an archetype
// @Tags Interventions
// @Security BearerAuth
// @Produce json
// @Param archetype path string true "Archetype" Enums(Warrior, Sage, Lover, Seeker)
// @Success 200 {object} model.InterventionContent
// @Failure 400 {object} model.ErrorResponse
// @Router /interventions/{archetype} [get]
func (h *InterventionHandler) Get(c *gin.Context) {
	archetype := model.Archetype(c.Param("archetype"))
	if !archetype.IsValid() {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid archetype"})
		return
	}

	content, err := h.interventionService.GetInterventions(c.Request.Context(), archetype)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to load interventions"})
		return
	}

	c.JSON(http.StatusOK, content)
}
