package routes

import (
	"net/http"

	"battercoach/models"
	"battercoach/pose"

	"github.com/gin-gonic/gin"
)

var poseAnalyzer *pose.Analyzer

// InitPoseRoutes wires the stance analyzer used by the pose handlers.
func InitPoseRoutes(a *pose.Analyzer) {
	poseAnalyzer = a
}

// AnalyzePoseRouteHandler evaluates one frame of upper-body keypoints
// against the batting-stance model and returns the feedback bundle.
func AnalyzePoseRouteHandler(c *gin.Context) {
	var req models.PoseCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	feedback := poseAnalyzer.Analyze(c.Request.Context(), req.Handedness, req.Live(), req.Ref())
	c.JSON(http.StatusOK, feedback)
}
