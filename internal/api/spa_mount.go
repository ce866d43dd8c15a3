package api

import (
	"embed"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// Embedded playground UI assets.
//
// internal/api/dist/ holds a small static page for pasting zonefile text and
// inspecting the parsed JSON. It is embedded at compile time so the daemon
// ships as a single binary.
//
//go:embed dist/*
var embeddedUI embed.FS

func getEmbedFs() static.ServeFileSystem {
	fs := static.EmbedFolder(embeddedUI, "dist")
	if fs == nil {
		panic("failed to get embedded UI filesystem")
	}
	return fs
}

// MountSPA serves the embedded playground UI at /.
func MountSPA(r *gin.Engine, logger *slog.Logger) {
	distFS := getEmbedFs()
	r.Use(static.Serve("/", distFS))

	r.NoRoute(func(c *gin.Context) {
		// Only serve index.html for non-API routes
		if !strings.HasPrefix(c.Request.RequestURI, "/api") {
			index, err := distFS.Open("index.html")
			if err != nil {
				logger.Error("failed to open index.html", "error", err)
				return
			}
			defer index.Close()
			stat, _ := index.Stat()
			http.ServeContent(c.Writer, c.Request, "index.html", stat.ModTime(), index)
		}
	})
}
