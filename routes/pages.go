package routes

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

var staticDir = "./static"

// SetStaticDir points the page handlers at the bundled frontend, if any.
func SetStaticDir(dir string) {
	if dir != "" {
		staticDir = dir
	}
}

func staticPresent() bool {
	info, err := os.Stat(staticDir)
	return err == nil && info.IsDir()
}

// servePage serves a bundled HTML page when present, or a small API-only
// notice so the server stays useful when deployed without the frontend.
func servePage(c *gin.Context, filename, title string) {
	fpath := filepath.Join(staticDir, filename)
	if _, err := os.Stat(fpath); err == nil {
		c.File(fpath)
		return
	}

	page := fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>%[1]s</title></head>
<body style="font-family: Arial, sans-serif; padding: 24px;">
  <h2>%[1]s</h2>
  <p>This server is running in <b>API-only mode</b> (no static UI bundled).</p>
  <p>If you want this backend to serve the web UI too, copy your <code>static/</code> folder next to the binary.</p>
</body>
</html>`, title)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func LandingRouteHandler(c *gin.Context) { servePage(c, "landing.html", "AI Coach") }
func BattingRouteHandler(c *gin.Context) { servePage(c, "batting.html", "Batting Coach") }
func FoodPageRouteHandler(c *gin.Context) { servePage(c, "food.html", "Food Analyzer") }
func CoachPageRouteHandler(c *gin.Context) { servePage(c, "coach.html", "Coach Chat") }

// HealthRouteHandler reports liveness and whether the frontend is bundled.
func HealthRouteHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "static_present": staticPresent()})
}
