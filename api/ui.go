package api

import (
	_ "embed"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

const (
	PadHTMLPath = "./ui/pad.html"
)

//go:embed ui/pad.html
var PadHTML string

// SetupUI serves the touch pad page, a pad.html next to the binary wins
// over the embedded copy.
func SetupUI(engine *gin.Engine) {
	engine.GET("/ui/pad.html", func(c *gin.Context) {
		if stat, err := os.Stat(PadHTMLPath); err == nil && !stat.IsDir() {
			c.File(PadHTMLPath)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(PadHTML))
	})
}
