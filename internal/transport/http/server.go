package http

import (
	"fmt"
	stdhttp "net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/driftroom-server/internal/config"
	"github.com/vovakirdan/driftroom-server/internal/core"
)

// NewServer builds the HTTP server: room admin API, WebSocket endpoint, and
// in production mode the static frontend.
func NewServer(hub *core.Hub, registry *core.Registry, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))
	router.Use(cors.New(corsConfig(cfg)))

	rooms := NewRoomHandlers(registry, logger)
	api := router.Group("/api")
	api.POST("/create-room", rooms.CreateRoom)
	api.GET("/room/:roomId", rooms.GetRoom)

	router.GET("/health", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, originPatterns(cfg.AllowedOrigins), cfg.Production(), logger)))

	if cfg.Production() && cfg.StaticDir != "" {
		registerStatic(router, cfg.StaticDir)
	}

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	_, _ = fmt.Fprint(c.Writer, "ok")
}

// corsConfig allows the configured dev origins; in production any origin is
// accepted since the frontend is served by this process anyway.
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST"}
	corsCfg.AllowCredentials = true
	if cfg.Production() {
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	return corsCfg
}

// originPatterns extracts host patterns for the WebSocket origin check.
func originPatterns(origins []string) []string {
	patterns := make([]string, 0, len(origins))
	for _, origin := range origins {
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			continue
		}
		patterns = append(patterns, u.Host)
	}
	return patterns
}

// registerStatic serves the built frontend with an index.html fallback so
// client-side routes resolve after a refresh.
func registerStatic(router *gin.Engine, dir string) {
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/ws" {
			c.JSON(stdhttp.StatusNotFound, ErrorResponse{Error: "not found"})
			return
		}

		full := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}
