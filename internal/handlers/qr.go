package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/form"
	"github.com/cristianadrielbraun/qrstudio/internal/logo"
	"github.com/cristianadrielbraun/qrstudio/internal/logostore"
	"github.com/cristianadrielbraun/qrstudio/internal/payload"
	"github.com/cristianadrielbraun/qrstudio/internal/render"
	"github.com/cristianadrielbraun/qrstudio/internal/studio"
)

// minPreviewSize keeps at least a couple of pixels per module.
const minPreviewSize = 128

// param reads a form field on POST and falls back to the query string.
func param(c *gin.Context, key string) string {
	if v, ok := c.GetPostForm(key); ok {
		return v
	}
	return c.Query(key)
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// stateFromRequest rebuilds the form from request parameters. Unknown styles
// and invalid colours fall back to the defaults.
func (h *Handler) stateFromRequest(c *gin.Context) *form.State {
	s := form.Default()
	s.Text = param(c, "text")
	s.SSID = param(c, "ssid")
	s.Password = param(c, "password")
	s.Style = form.ParseStyle(param(c, "style"))
	if fg := strings.TrimSpace(param(c, "fg")); fg != "" {
		s.Foreground = fg
	}
	if bg := strings.TrimSpace(param(c, "bg")); bg != "" {
		if strings.EqualFold(bg, "transparent") {
			s.Transparent = true
		} else {
			s.Background = bg
		}
	}
	if parseBool(param(c, "transparent")) {
		s.Transparent = true
	}
	s.SetMode(payload.ParseMode(param(c, "mode")))
	return s
}

// loadLogo attaches the logo from an inline upload or a stored id. Missing
// ids are logged and ignored.
func (h *Handler) loadLogo(c *gin.Context, s *form.State) error {
	if c.Request.Method == http.MethodPost {
		if fh, err := c.FormFile("logo"); err == nil {
			if fh.Size > h.cfg.MaxUploadBytes {
				return errUploadTooLarge
			}
			f, err := fh.Open()
			if err != nil {
				return fmt.Errorf("open logo: %w", err)
			}
			defer f.Close()
			img, _, err := logo.Decode(f)
			if err != nil {
				return err
			}
			s.Logo = img
			return nil
		}
	}

	id := strings.TrimSpace(param(c, "logoId"))
	if id == "" {
		return nil
	}
	img, err := h.logos.Get(id)
	if errors.Is(err, logostore.ErrNotFound) {
		h.log.Warnw("logo not found, rendering without it", "logo_id", id)
		return nil
	}
	if err != nil {
		return err
	}
	s.Logo = img
	return nil
}

// QRCodeHandler renders the submitted form as PNG, SVG or JPG.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes+1<<20)

	state := h.stateFromRequest(c)
	if !state.HasContent() {
		abortJSON(c, http.StatusBadRequest, studio.ErrNoContent.Error())
		return
	}
	if err := h.loadLogo(c, state); err != nil {
		h.logoError(c, err)
		return
	}

	format := studio.ParseFormat(param(c, "format"))
	size := param(c, "size")
	if size == "" {
		size = "preview"
	}

	req := studio.Request{Format: format}
	if size == "preview" {
		req.Size = h.cfg.PreviewSize
		if ps := param(c, "previewSize"); ps != "" {
			if target, err := strconv.Atoi(ps); err == nil && target > 0 {
				req.Size = max(target, minPreviewSize)
			}
		}
	}

	var (
		art *studio.Artifact
		err error
	)
	if size == "download" {
		art, err = h.studio.Export(c.Request.Context(), state, string(format))
	} else {
		art, err = h.studio.Render(c.Request.Context(), state, req)
	}
	if err != nil {
		switch {
		case errors.Is(err, studio.ErrNoContent):
			abortJSON(c, http.StatusBadRequest, studio.ErrNoContent.Error())
		case errors.Is(err, render.ErrDataTooLong):
			h.log.Infow("content too long", "mode", state.Mode, "bytes", len(state.Data()))
			abortJSON(c, http.StatusBadRequest, render.ErrDataTooLong.Error())
		default:
			h.log.Errorw("render failed", "format", format, "size", size, "error", err)
			abortJSON(c, http.StatusInternalServerError, "Failed to generate QR code")
		}
		return
	}

	c.Header("X-QR-Debug", fmt.Sprintf("format=%s;size=%s;style=%s;mode=%s", format, size, state.Style.Name, state.Mode))
	// The query string may carry a Wi-Fi password.
	c.Header("Cache-Control", "private, no-store")
	if size == "download" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, art.Name))
	}
	c.Data(http.StatusOK, art.ContentType, art.Body)
}

// FormState reports the payload and control state for the current fields.
func (h *Handler) FormState(c *gin.Context) {
	state := h.stateFromRequest(c)
	c.JSON(http.StatusOK, gin.H{
		"mode":     state.Mode,
		"payload":  state.Data(),
		"controls": state.Controls(),
	})
}
