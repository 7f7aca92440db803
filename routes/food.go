package routes

import (
	"net/http"
	"strings"

	"battercoach/models"
	"battercoach/services"

	"github.com/gin-gonic/gin"
)

// FoodRouteHandler analyzes a food photo and returns the normalized
// nutrition report.
func FoodRouteHandler(c *gin.Context) {
	var req models.FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil || !strings.HasPrefix(req.ImageDataURL, "data:image") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_data_url must be a data:image/... URL"})
		return
	}

	report, err := services.AnalyzeFoodImage(c.Request.Context(), req.ImageDataURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Food analysis error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
