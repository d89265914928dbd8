package render

// visible reports whether module (x, y) is drawn as a data dot.
func visible(m *Matrix, l layout, x, y int) bool {
	return m.Dark(x, y) && !m.InFinder(x, y) && !l.hidden(x, y)
}

// traceDots sends every visible data module to p.
func traceDots(p pen, m *Matrix, l layout, t DotType) {
	n := m.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !visible(m, l, x, y) {
				continue
			}
			px, py := l.moduleRect(x, y)
			dot(p, t, px, py, l.module, neighbours{
				left:   visible(m, l, x-1, y),
				right:  visible(m, l, x+1, y),
				top:    visible(m, l, x, y-1),
				bottom: visible(m, l, x, y+1),
			})
		}
	}
}

// traceFinderFrames sends the three finder frames to p.
func traceFinderFrames(p pen, m *Matrix, l layout, t FinderType) {
	for _, o := range m.finderOrigins() {
		px, py := l.moduleRect(o[0], o[1])
		finderFrame(p, t, px, py, l.module)
	}
}

// traceFinderDots sends the three finder centres to p.
func traceFinderDots(p pen, m *Matrix, l layout, t FinderType) {
	for _, o := range m.finderOrigins() {
		px, py := l.moduleRect(o[0]+2, o[1]+2)
		finderDot(p, t, px, py, l.module)
	}
}
