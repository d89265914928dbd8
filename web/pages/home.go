// Package pages holds full HTML pages.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/qrstudio/web/components"
)

// HomePage renders the studio: form on the left, preview on the right.
func HomePage(d components.FormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>QR Studio</title>
<meta name="description" content="Create styled QR codes for text, links and Wi-Fi networks. Export PNG or SVG.">
<script src="https://cdn.tailwindcss.com"></script>
<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>
<script src="/web/static/js/studio.js" defer></script>
</head>
<body class="min-h-screen bg-gray-50 text-gray-900">
<main class="mx-auto grid max-w-5xl gap-8 p-6 md:grid-cols-2">
<section class="rounded-xl bg-white p-6 shadow-sm">
<h1 class="mb-4 text-2xl font-semibold">QR Studio</h1>
`); err != nil {
			return err
		}
		if err := components.QRForm(d).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</section>\n<section>\n"); err != nil {
			return err
		}
		if err := components.Preview(d).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>
</main>
<div id="toasts"></div>
</body>
</html>
`)
		return err
	})
}
