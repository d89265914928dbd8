package components

import (
	"github.com/cristianadrielbraun/qrstudio/internal/form"
)

// StyleOption is one entry of the style select.
type StyleOption struct {
	Value    string
	Label    string
	Selected bool
}

// FormData is used by the QR form component to pre-fill its fields.
type FormData struct {
	State       *form.State
	Controls    form.Controls
	Styles      []StyleOption
	PreviewSize int
	// PreviewURL is the initial preview image source; empty hides it.
	PreviewURL string
}

// NewFormData builds FormData for state.
func NewFormData(state *form.State, previewSize int) FormData {
	styles := make([]StyleOption, 0, len(form.Styles))
	for _, s := range form.Styles {
		styles = append(styles, StyleOption{
			Value:    s.Name,
			Label:    s.Label,
			Selected: s.Name == state.Style.Name,
		})
	}
	return FormData{
		State:       state,
		Controls:    state.Controls(),
		Styles:      styles,
		PreviewSize: previewSize,
	}
}
