package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/serdarekici/inventory-management/internal/service"
)

type DashboardHandler struct {
	service *service.DashboardService
}

func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetSummary returns the portfolio summary built from both output tables.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetRecommendations lists recommendation rows filtered by the optional
// action and category query params.
func (h *DashboardHandler) GetRecommendations(c *gin.Context) {
	filter := service.RecommendationFilter{
		Action:   strings.TrimSpace(c.Query("action")),
		Category: strings.TrimSpace(strings.ToUpper(c.Query("category"))),
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "200")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	rows, err := h.service.Recommendations(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": rows,
		"count":           len(rows),
	})
}

// GetPart returns the drill-down for one part; unknown parts are a 404,
// not an empty result.
func (h *DashboardHandler) GetPart(c *gin.Context) {
	partNum := strings.TrimSpace(c.Param("part_num"))
	if partNum == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "part_num is required"})
		return
	}

	detail, err := h.service.Part(c.Request.Context(), partNum)
	if err != nil {
		if errors.Is(err, service.ErrPartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "part " + partNum + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}
