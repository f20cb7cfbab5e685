package controllers

import (
	"net/http"

	"github.com/suportelm/nutri-ai-vision-scan-17/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// StatsSummary aggregates the diary for ?period=week|month|year (week by
// default).
func (sc *StatsController) StatsSummary(c *gin.Context) {
	userID := c.GetUint("userID")
	period := c.DefaultQuery("period", "week")

	summary, err := sc.stats.Summary(c.Request.Context(), userID, period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
