package controllers

import (
	"log"
	"net/http"

	"github.com/suportelm/nutri-ai-vision-scan-17/services"

	"github.com/gin-gonic/gin"
)

// AnalyzeController owns the food analysis pipeline. It is constructed once
// at startup so handlers never touch the environment.
type AnalyzeController struct {
	analysis *services.AnalysisService
}

func NewAnalyzeController(analysis *services.AnalysisService) *AnalyzeController {
	return &AnalyzeController{analysis: analysis}
}

type AnalyzeInput struct {
	ImageBase64 string `json:"image_base64"`
}

func (ac *AnalyzeController) AnalyzeMealPhoto(c *gin.Context) {
	var input AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ac.analysis.AnalyzeImage(c.Request.Context(), input.ImageBase64)
	if err != nil {
		aerr := services.AsAnalysisError(err)
		// Detail carries upstream status codes and raw reply fragments;
		// it is logged here and never sent to the client.
		log.Printf("meal analysis failed: %v", aerr)
		c.JSON(aerr.HTTPStatus(), gin.H{
			"error":   aerr.Message,
			"details": string(aerr.Code),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": result})
}
