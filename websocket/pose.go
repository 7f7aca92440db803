package websocket

import (
	"log"
	"net/http"

	"battercoach/models"
	"battercoach/pose"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// CORS is enforced at the HTTP layer; the signaling here is same-app.
	CheckOrigin: func(r *http.Request) bool { return true },
}

var poseAnalyzer *pose.Analyzer

// InitPoseStream wires the analyzer used for live stance feedback.
func InitPoseStream(a *pose.Analyzer) {
	poseAnalyzer = a
}

// PoseStreamHandler upgrades the connection and answers each incoming
// keypoint payload with raw stance feedback. Every message is evaluated
// independently; nothing is kept between frames, and the LLM rewrite is
// skipped so the loop stays fast enough for a webcam feed.
func PoseStreamHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("pose stream upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session := uuid.NewString()[:8]
	log.Printf("pose stream %s connected", session)

	for {
		var req models.PoseCompareRequest
		if err := conn.ReadJSON(&req); err != nil {
			log.Printf("pose stream %s closed: %v", session, err)
			return
		}

		raw := poseAnalyzer.EvaluateRaw(req.Handedness, req.Live(), req.Ref())
		resp := models.PoseStreamResponse{
			Gated:        raw.Gate != nil,
			Gate:         raw.Gate,
			Positives:    raw.Positives,
			Improvements: raw.Improvements,
		}
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("pose stream %s write failed: %v", session, err)
			return
		}
	}
}
