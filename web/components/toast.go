package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// ParseVariant maps form values, including "destructive", to a Variant.
func ParseVariant(s string) Variant {
	switch s {
	case "error", "destructive":
		return VariantError
	case "warning":
		return VariantWarning
	case "info":
		return VariantInfo
	default:
		return VariantSuccess
	}
}

type ToastProps struct {
	Title       string
	Description string
	Variant     Variant
	// Duration in milliseconds before the toast hides itself.
	Duration    int
	Dismissible bool
}

var toastVariants = map[Variant]string{
	VariantSuccess: "border-emerald-500 bg-emerald-50 text-emerald-900",
	VariantError:   "border-red-500 bg-red-50 text-red-900",
	VariantWarning: "border-amber-500 bg-amber-50 text-amber-900",
	VariantInfo:    "border-sky-500 bg-sky-50 text-sky-900",
}

// Toast renders a bottom-right notification for HTMX swaps.
func Toast(p ToastProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if p.Duration <= 0 {
			p.Duration = 2000
		}
		h := &html{w: w}
		h.raw("<div")
		h.attr("class", cn(
			"fixed bottom-4 right-4 z-50 w-80 rounded-lg border-l-4 p-4 shadow-lg",
			toastVariants[ParseVariant(string(p.Variant))],
		))
		h.attr("role", "status")
		h.attr("data-toast-duration", strconv.Itoa(p.Duration))
		h.raw(">")
		if p.Title != "" {
			h.raw(`<p class="font-semibold">`)
			h.text(p.Title)
			h.raw("</p>")
		}
		if p.Description != "" {
			h.raw(`<p class="mt-1 text-sm">`)
			h.text(p.Description)
			h.raw("</p>")
		}
		if p.Dismissible {
			h.raw(`<button type="button" class="absolute right-2 top-2 text-sm opacity-60 hover:opacity-100" data-toast-dismiss aria-label="Dismiss">&times;</button>`)
		}
		h.raw("</div>")
		return h.err
	})
}
