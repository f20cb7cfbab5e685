package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/suportelm/nutri-ai-vision-scan-17/services"

	"github.com/gin-gonic/gin"
)

var mealService = services.NewMealService()

func CreateMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	var req services.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mealService.CreateMeal(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

// ListMeals returns the full diary, the diary for ?date=YYYY-MM-DD, or the
// last ?limit=N meals.
func ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		meals, err := mealService.ListMealsByDate(userID, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"meals": meals})
		return
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		meals, err := mealService.ListRecentMeals(userID, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"meals": meals})
		return
	}

	meals, err := mealService.ListMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func TodayMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	meals, err := mealService.ListMealsByDate(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}
