package routes

import (
	"io"
	"net/http"

	"battercoach/services"

	"github.com/gin-gonic/gin"
)

// SttUploadRouteHandler accepts an uploaded audio file (multipart field
// "audio") and returns its transcription.
func SttUploadRouteHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open upload"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	text, err := services.TranscribeAudio(c.Request.Context(), fileHeader.Filename, audio)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}
