package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/qrstudio/internal/payload"
)

const (
	labelClass = "block text-sm font-medium text-gray-700"
	inputClass = "mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm shadow-sm focus:border-gray-900 focus:outline-none"
	buttonBase = "inline-flex items-center justify-center rounded-md px-4 py-2 text-sm font-medium disabled:cursor-not-allowed disabled:opacity-50"
)

// QRForm renders the studio form. Field names match the /api/qr parameters.
func QRForm(d FormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := d.State
		c := d.Controls
		h := &html{w: w}

		h.raw(`<form id="qr-form" class="space-y-5" autocomplete="off" enctype="multipart/form-data">`)

		// mode
		h.raw(`<fieldset class="flex gap-4"><legend class="` + labelClass + `">Content</legend>`)
		for _, m := range []struct {
			value payload.Mode
			label string
		}{{payload.ModeText, "Text / URL"}, {payload.ModeWiFi, "Wi-Fi"}} {
			h.raw(`<label class="flex items-center gap-2 text-sm"><input type="radio" name="mode"`)
			h.attr("value", string(m.value))
			h.flag("checked", s.Mode == m.value)
			h.raw(">")
			h.text(m.label)
			h.raw("</label>")
		}
		h.raw("</fieldset>")

		// text
		h.raw(`<div id="text-fields"`)
		h.attr("class", hiddenIf(!c.ShowTextFields))
		h.raw(`><label for="text" class="` + labelClass + `">Text</label><textarea id="text" name="text" rows="3"`)
		h.attr("maxlength", strconv.Itoa(c.TextMaxLength))
		h.attr("class", inputClass)
		h.raw(">")
		h.text(s.Text)
		h.raw("</textarea></div>")

		// wifi
		h.raw(`<div id="wifi-fields"`)
		h.attr("class", cn("space-y-3", hiddenIf(!c.ShowWiFiFields)))
		h.raw(`><div><label for="ssid" class="` + labelClass + `">Network name (SSID)</label><input id="ssid" name="ssid" type="text"`)
		h.attr("value", s.SSID)
		h.attr("placeholder", payload.DefaultSSID)
		h.attr("class", inputClass)
		h.raw(`></div><div><label for="password" class="` + labelClass + `">Password</label><div class="relative"><input id="password" name="password" type="password" autocomplete="off"`)
		h.attr("value", s.Password)
		h.attr("class", cn(inputClass, "pr-10"))
		h.raw(">")
		if h.err == nil {
			h.err = PasswordToggle().Render(ctx, w)
		}
		h.raw(`</div><p class="mt-1 text-xs text-gray-500">Leave empty for an open network.</p></div></div>`)

		h.raw(`<p id="content-hint"`)
		h.attr("class", cn("text-sm text-amber-700", hiddenIf(!c.ShowContentHint)))
		h.raw(">Enter some text or a network name to generate a code.</p>")

		// style
		h.raw(`<div><label for="style" class="` + labelClass + `">Style</label><select id="style" name="style"`)
		h.attr("class", inputClass)
		h.raw(">")
		for _, o := range d.Styles {
			h.raw("<option")
			h.attr("value", o.Value)
			h.flag("selected", o.Selected)
			h.raw(">")
			h.text(o.Label)
			h.raw("</option>")
		}
		h.raw("</select></div>")

		// colours
		h.raw(`<div class="grid grid-cols-2 gap-4"><div><label for="fg" class="` + labelClass + `">Foreground</label><input id="fg" name="fg" type="color"`)
		h.attr("value", s.Foreground)
		h.attr("class", cn(inputClass, "h-10 p-1"))
		h.raw(`></div><div><label for="bg" class="` + labelClass + `">Background</label><input id="bg" name="bg" type="color"`)
		h.attr("value", s.Background)
		h.attr("class", cn(inputClass, "h-10 p-1"))
		h.flag("disabled", !c.BackgroundEnabled)
		h.raw(`></div></div>`)
		h.raw(`<label class="flex items-center gap-2 text-sm"><input id="transparent" name="transparent" type="checkbox" value="true"`)
		h.flag("checked", s.Transparent)
		h.raw(`> Transparent background</label>`)
		h.raw(`<p id="background-hint"`)
		h.attr("class", cn("text-xs text-gray-500", hiddenIf(!c.ShowBackgroundHint)))
		h.raw(">The background colour is ignored while transparency is on.</p>")

		// logo
		h.raw(`<div><label for="logo" class="` + labelClass + `">Logo</label><input id="logo" name="logo" type="file" accept="image/png,image/jpeg,image/gif,image/webp,image/svg+xml"`)
		h.attr("class", cn(inputClass, "border-dashed"))
		h.raw(`><input id="logoId" name="logoId" type="hidden" value=""></div>`)

		// actions
		h.raw(`<div class="flex flex-wrap gap-3">`)
		button := func(id, label, extra string, enabled bool) {
			h.raw(`<button type="button"`)
			h.attr("id", id)
			h.attr("class", cn(buttonBase, extra))
			h.flag("disabled", !enabled)
			h.raw(">")
			h.text(label)
			h.raw("</button>")
		}
		button("generate", "Generate", "bg-gray-900 text-white hover:bg-gray-700", c.GenerateEnabled)
		button("download-png", "Download PNG", "border border-gray-300 bg-white text-gray-900 hover:bg-gray-50", c.PNGEnabled)
		button("download-svg", "Download SVG", "border border-gray-300 bg-white text-gray-900 hover:bg-gray-50", c.SVGEnabled)
		button("reset", "Reset", "text-gray-600 hover:text-gray-900", true)
		h.raw("</div></form>")

		return h.err
	})
}

// Preview renders the preview frame.
func Preview(d FormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		size := strconv.Itoa(d.PreviewSize)
		h.raw(`<div id="preview" class="flex items-center justify-center rounded-xl border border-gray-200 bg-[repeating-conic-gradient(#f3f4f6_0_25%,#fff_0_50%)] bg-[length:16px_16px] p-4"`)
		h.attr("data-preview-size", size)
		h.raw(`><img id="preview-img" alt="QR code preview"`)
		h.attr("width", size)
		h.attr("height", size)
		h.attr("class", cn("max-w-full", hiddenIf(d.PreviewURL == "")))
		if d.PreviewURL != "" {
			h.attr("src", d.PreviewURL)
		}
		h.raw("></div>")
		return h.err
	})
}

// PasswordToggle reveals the Wi-Fi password while it is held down. It always
// renders in the hidden state.
func PasswordToggle() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<button type="button" id="password-toggle" data-visible="false" aria-controls="password"`)
		h.attr("aria-label", "Show password")
		h.attr("title", "Show password")
		h.attr("class", cn(
			"absolute inset-y-0 right-0 mt-1 flex w-10 items-center justify-center text-gray-500",
			"hover:text-gray-900 [&.active]:text-gray-900",
		))
		h.raw(`><svg aria-hidden="true" viewBox="0 0 24 24" width="18" height="18" fill="none" stroke="currentColor" stroke-width="2"><path d="M1 12s4-7 11-7 11 7 11 7-4 7-11 7S1 12 1 12z"/><circle cx="12" cy="12" r="3"/></svg></button>`)
		return h.err
	})
}
