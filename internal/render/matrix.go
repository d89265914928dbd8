package render

import (
	"errors"
	"fmt"

	"github.com/yeqown/go-qrcode/v2"
)

// finderSize is the edge of a finder pattern in modules.
const finderSize = 7

var (
	// ErrEmptyData is returned when there is nothing to encode.
	ErrEmptyData = errors.New("qr data is empty")
	// ErrDataTooLong is returned when the data does not fit the largest QR
	// version at the requested error correction level.
	ErrDataTooLong = errors.New("content is too long for a QR code")
)

// Matrix is the module grid of an encoded QR code.
type Matrix struct {
	qr   *qrcode.QRCode
	size int
	dark [][]bool
}

// Encode encodes data at the given error correction level.
func Encode(data string, level Level) (*Matrix, error) {
	if data == "" {
		return nil, ErrEmptyData
	}
	qrc, err := qrcode.NewWith(data, level.option())
	if err != nil {
		// Version selection is the only failure for non-empty input.
		return nil, fmt.Errorf("%w (%d bytes at level %s): %w", ErrDataTooLong, len(data), level, err)
	}

	m := &Matrix{qr: qrc, size: qrc.Dimension()}
	if err := qrc.Save(&matrixWriter{m: m}); err != nil {
		return nil, fmt.Errorf("read qr matrix: %w", err)
	}
	return m, nil
}

// Size is the number of modules per side.
func (m *Matrix) Size() int { return m.size }

// Dark reports whether the module at column x, row y is set. Out of range
// modules are light.
func (m *Matrix) Dark(x, y int) bool {
	if x < 0 || y < 0 || y >= len(m.dark) || x >= len(m.dark[y]) {
		return false
	}
	return m.dark[y][x]
}

// InFinder reports whether the module belongs to one of the three finder
// patterns.
func (m *Matrix) InFinder(x, y int) bool {
	n := m.size
	switch {
	case x < finderSize && y < finderSize:
		return true
	case x >= n-finderSize && y < finderSize:
		return true
	case x < finderSize && y >= n-finderSize:
		return true
	}
	return false
}

// finderOrigins returns the upper left module of each finder pattern.
func (m *Matrix) finderOrigins() [3][2]int {
	n := m.size
	return [3][2]int{{0, 0}, {n - finderSize, 0}, {0, n - finderSize}}
}

// matrixWriter copies the yeqown matrix into a Matrix.
type matrixWriter struct {
	m *Matrix
}

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	n := w.m.size
	dark := make([][]bool, n)
	for i := range dark {
		dark[i] = make([]bool, n)
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		if x < n && y < n {
			dark[y][x] = v.IsSet()
		}
	})
	w.m.dark = dark
	return nil
}

func (w *matrixWriter) Close() error { return nil }
