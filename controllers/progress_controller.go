package controllers

import (
	"net/http"
	"time"

	"github.com/suportelm/nutri-ai-vision-scan-17/services"

	"github.com/gin-gonic/gin"
)

// GetProgress returns the goals and what was consumed against them, for
// today or for ?date=YYYY-MM-DD.
func GetProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	profile, progress, err := services.GetGoalsAndProgress(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     date.Format("2006-01-02"),
		"goals":    profile,
		"progress": progress,
	})
}

type ActivityInput struct {
	WaterIntake     float64  `json:"water_intake"`
	ExerciseMinutes float64  `json:"exercise_minutes"`
	Weight          *float64 `json:"weight"`
}

func UpdateDailyActivity(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.WaterIntake < 0 || input.ExerciseMinutes < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "water and exercise must be non-negative"})
		return
	}

	if err := services.UpsertDailyActivity(userID, input.WaterIntake, input.ExerciseMinutes, input.Weight); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "activity updated"})
}

func GetProgressHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	history, err := services.GetProgressHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
