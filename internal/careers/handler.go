package careers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pathfinder-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the recommendation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches career analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze-career", h.analyzeCareer)
	rg.OPTIONS("/analyze-career", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func (h *Handler) analyzeCareer(c *gin.Context) {
	var responses UserResponses
	if err := c.ShouldBindJSON(&responses); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, serr := h.Svc.Analyze(c.Request.Context(), responses)
	if serr != nil {
		respond.Error(c, serr.Status, serr.Message, serr.Details)
		return
	}

	respond.RawJSON(c, http.StatusOK, result)
}
