package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
	"github.com/cristianadrielbraun/qrstudio/internal/handlers"
	"github.com/cristianadrielbraun/qrstudio/internal/logger"
	"github.com/cristianadrielbraun/qrstudio/internal/logostore"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/studio"
)

func main() {
	cfg, err := config.Load(os.Getenv("QRSTUDIO_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Log.Debug,
		LogToFile: cfg.Log.LogToFile,
		LogsDir:   cfg.Log.LogsDir,
	}); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Log.Sync() }()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(handlers.RequestLogger(logger.Named("http")))
	r.Use(gin.Recovery())

	// Static assets
	r.Static("/web/static", cfg.Server.StaticDir)

	s := studio.New(studioConfig(cfg), logger.Named("render"))
	logos := logostore.New(cfg.Logo.CacheTTL, cfg.Logo.CacheEntries)
	h := handlers.New(s, logos, handlers.Config{
		PreviewSize:    cfg.Render.PreviewSize,
		MaxUploadBytes: cfg.Logo.MaxUploadBytes,
	}, logger.Named("handlers"))
	h.Register(r)

	addr := cfg.Addr()
	logger.Log.Infow("qrstudio listening", "addr", addr, "size", cfg.Render.Size, "logo_ttl", cfg.Logo.CacheTTL.String())
	if err := r.Run(addr); err != nil {
		logger.Log.Fatalw("server stopped", "error", err)
	}
}

func studioConfig(cfg *config.Config) studio.Config {
	return studio.Config{
		Size:       cfg.Render.Size,
		MaxSize:    cfg.Render.MaxSize,
		QuietZone:  cfg.Render.QuietZone,
		Level:      render.ParseLevel(cfg.Render.ErrorCorrection),
		LogoScale:  cfg.Logo.Scale,
		LogoRadius: cfg.Logo.Radius,
		LogoBorder: cfg.Logo.Border,
	}
}
