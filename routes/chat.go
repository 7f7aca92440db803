package routes

import (
	"net/http"

	"battercoach/models"
	"battercoach/services"

	"github.com/gin-gonic/gin"
)

// ChatRouteHandler answers a free-form coaching question, optionally with
// an attached image.
func ChatRouteHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	answer, err := services.AnswerCoachQuestion(c.Request.Context(), req.Question, req.ImageDataURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ChatResponse{Answer: answer})
}
