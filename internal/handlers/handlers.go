package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/logger"
	"github.com/cristianadrielbraun/qrstudio/internal/logostore"
	"github.com/cristianadrielbraun/qrstudio/internal/studio"
)

// Config holds the request limits the handlers enforce.
type Config struct {
	PreviewSize    int
	MaxUploadBytes int64
}

// Handler holds the dependencies shared by the HTTP handlers.
type Handler struct {
	studio *studio.Studio
	logos  *logostore.Store
	cfg    Config
	log    *logger.Logger
}

// New returns a new Handler instance. A nil logo store is replaced by a
// default one.
func New(s *studio.Studio, logos *logostore.Store, cfg Config, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	if logos == nil {
		logos = logostore.New(30*time.Minute, 256)
	}
	if cfg.PreviewSize <= 0 {
		cfg.PreviewSize = 336
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 5 << 20
	}
	return &Handler{studio: s, logos: logos, cfg: cfg, log: log}
}

// Register mounts every route on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.Home)
	r.GET("/sitemap.xml", h.SitemapXML)

	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)
		api.POST("/qr", h.QRCodeHandler)
		api.POST("/logo", h.UploadLogo)
		api.GET("/form", h.FormState)
		api.POST("/htmx/toast", h.GenericToast)
	}
}

// SitemapXML serves a minimal sitemap for the site.
func (h *Handler) SitemapXML(c *gin.Context) {
	c.Header("Content-Type", "application/xml; charset=utf-8")
	scheme := "https"
	host := c.Request.Host
	if xf := c.Request.Header.Get("X-Forwarded-Proto"); xf != "" {
		scheme = xf
	} else if c.Request.TLS == nil && (host == "localhost:8080" || host == "127.0.0.1:8080") {
		scheme = "http"
	}
	base := scheme + "://" + host
	xml := "" +
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n" +
		"  <url>\n" +
		"    <loc>" + base + "/" + "</loc>\n" +
		"    <changefreq>weekly</changefreq>\n" +
		"    <priority>1.0</priority>\n" +
		"  </url>\n" +
		"</urlset>\n"
	c.String(http.StatusOK, xml)
}

func abortJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
