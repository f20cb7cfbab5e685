package controllers

import (
	"net/http"

	"github.com/suportelm/nutri-ai-vision-scan-17/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadMealImage stores a meal photo and returns its public URL, so the
// client can attach it to the meal it logs next.
func UploadMealImage(c *gin.Context) {
	var input UploadImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := utils.UploadBase64Image(c.Request.Context(), input.ImageBase64, "meal-images")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
