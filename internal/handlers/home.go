package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/form"
	"github.com/cristianadrielbraun/qrstudio/web/components"
	"github.com/cristianadrielbraun/qrstudio/web/pages"
)

// Home renders the studio page with a freshly reset form.
func (h *Handler) Home(c *gin.Context) {
	d := components.NewFormData(form.Default(), h.cfg.PreviewSize)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pages.HomePage(d).Render(c.Request.Context(), c.Writer); err != nil {
		h.log.Errorw("home page render failed", "error", err)
	}
}
