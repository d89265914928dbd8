package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstudio/internal/logo"
)

var errUploadTooLarge = errors.New("logo file is too large")

// UploadLogo decodes a multipart "logo" file, keeps it in the logo store and
// returns its id with a composited preview. A "replaces" field names the
// previous upload, which is dropped.
func (h *Handler) UploadLogo(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes+1<<20)

	fh, err := c.FormFile("logo")
	if err != nil {
		abortJSON(c, http.StatusBadRequest, "logo file is required")
		return
	}
	if fh.Size > h.cfg.MaxUploadBytes {
		h.logoError(c, errUploadTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.logoError(c, err)
		return
	}
	defer f.Close()

	img, format, err := logo.Decode(f)
	if err != nil {
		h.logoError(c, err)
		return
	}

	plate, err := logo.Composite(img, logo.PlateOptions{
		TargetPx: float64(logo.CanvasSize),
		Shape:    logo.ShapeRounded,
		RadiusPx: 40,
		BorderPx: 8,
	})
	if err != nil {
		h.logoError(c, err)
		return
	}
	preview, err := logo.DataURL(plate)
	if err != nil {
		h.logoError(c, err)
		return
	}

	id := h.logos.Put(img)
	// Only the newest upload is referenced by the page.
	replaced := c.PostForm("replaces")
	if replaced != "" {
		h.logos.Delete(replaced)
	}
	h.log.Infow("logo stored",
		"logo_id", id,
		"replaced", replaced,
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy(),
		"bytes", fh.Size,
	)
	c.JSON(http.StatusOK, gin.H{"id": id, "preview": preview})
}

func (h *Handler) logoError(c *gin.Context, err error) {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, errUploadTooLarge), errors.As(err, &maxErr):
		abortJSON(c, http.StatusRequestEntityTooLarge, errUploadTooLarge.Error())
	case errors.Is(err, logo.ErrEmptyImage):
		abortJSON(c, http.StatusBadRequest, err.Error())
	default:
		h.log.Warnw("logo rejected", "error", err)
		abortJSON(c, http.StatusBadRequest, "Unsupported logo image")
	}
}
