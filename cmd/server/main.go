package main

import (
	"log"
	"os"
	"strconv"

	"battercoach/config"
	"battercoach/pose"
	"battercoach/routes"
	"battercoach/services"
	"battercoach/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv("BATTERCOACH_CONFIG")
	if configPath == "" {
		configPath = "./config/config.yml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := services.InitAIServices(cfg); err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}

	analyzer := pose.NewAnalyzer(cfg.Pose.MinShoulderWidthPx, services.GeminiRewriter{})
	routes.InitPoseRoutes(analyzer)
	routes.SetStaticDir(cfg.Static.Dir)
	websocket.InitPoseStream(analyzer)

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	allowOrigins := cfg.Cors.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000", "http://localhost:8080"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Pages and liveness
	router.GET("/", routes.LandingRouteHandler)
	router.GET("/batting", routes.BattingRouteHandler)
	router.GET("/food", routes.FoodPageRouteHandler)
	router.GET("/coach", routes.CoachPageRouteHandler)
	router.GET("/health", routes.HealthRouteHandler)

	// APIs
	router.POST("/analyze_pose", routes.AnalyzePoseRouteHandler)
	router.POST("/api/chat", routes.ChatRouteHandler)
	router.POST("/api/food", routes.FoodRouteHandler)
	router.POST("/stt_upload", routes.SttUploadRouteHandler)

	// Live stance feedback
	router.GET("/ws/pose", websocket.PoseStreamHandler)

	return router
}
