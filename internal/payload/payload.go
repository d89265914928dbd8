// Package payload builds the data string encoded into a QR code for each
// content mode supported by the form.
package payload

import (
	"strings"
	"unicode/utf16"
)

// Mode selects which form fields feed the QR data.
type Mode string

const (
	ModeText Mode = "text"
	ModeWiFi Mode = "wifi"
)

const (
	// MaxTextChars caps the UTF-16 code units accepted from the text field.
	MaxTextChars = 500
	// DefaultSSID is used when the Wi-Fi network name is left blank.
	DefaultSSID = "MyWiFi"
)

// ParseMode maps a raw form value to a Mode. Anything other than "wifi" is text.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeWiFi)) {
		return ModeWiFi
	}
	return ModeText
}

var wifiEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
)

// EscapeWiFi prefixes the characters reserved by the WIFI: format with a backslash.
func EscapeWiFi(s string) string {
	return wifiEscaper.Replace(s)
}

// WiFi formats Wi-Fi credentials as a WIFI: payload. An empty password selects
// an open network and drops the P: field.
func WiFi(ssid, password string) string {
	ssid = strings.TrimSpace(ssid)
	if ssid == "" {
		ssid = DefaultSSID
	}

	auth := "nopass"
	if password != "" {
		auth = "WPA"
	}

	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(auth)
	b.WriteString(";S:")
	b.WriteString(EscapeWiFi(ssid))
	b.WriteString(";")
	if password != "" {
		b.WriteString("P:")
		b.WriteString(EscapeWiFi(password))
		b.WriteString(";")
	}
	b.WriteString(";")
	return b.String()
}

// TruncateText keeps at most MaxTextChars UTF-16 code units of s, the unit
// a browser textarea maxlength counts. A surrogate pair is never split.
func TruncateText(s string) string {
	units := 0
	for i, r := range s {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		if units+n > MaxTextChars {
			return s[:i]
		}
		units += n
	}
	return s
}

// Text returns the trimmed, length-capped text payload.
func Text(s string) string {
	return TruncateText(strings.TrimSpace(s))
}
