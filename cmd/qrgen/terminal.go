package main

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// terminalQR draws the code with half-block characters, two modules per
// line, light modules in the terminal foreground colour.
func terminalQR(data string) (string, error) {
	q, err := qrcode.New(data, qrcode.Highest)
	if err != nil {
		return "", err
	}
	bits := q.Bitmap()

	var b strings.Builder
	for y := 0; y < len(bits); y += 2 {
		for x := range bits[y] {
			upper := bits[y][x]
			lower := false
			if y+1 < len(bits) {
				lower = bits[y+1][x]
			}
			switch {
			case upper && lower:
				b.WriteString(" ")
			case !upper && lower:
				b.WriteString("▀")
			case upper && !lower:
				b.WriteString("▄")
			default:
				b.WriteString("█")
			}
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
