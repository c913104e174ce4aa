package main

import (
	"image/color"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Virtual pixels per terminal cell. Cells are roughly twice as tall as wide.
const (
	cellW = 8
	cellH = 16
)

// termSurface rasterises the field onto terminal cells. Coordinates coming
// in are virtual pixels; each cell covers cellW x cellH of them.
type termSurface struct {
	screen tcell.Screen
	bg     tcell.Color
	bgRGB  [3]int32

	mu        sync.Mutex
	listeners map[int]func(width, height int)
	next      int
}

func newTermSurface(screen tcell.Screen) *termSurface {
	return &termSurface{
		screen:    screen,
		bg:        tcell.ColorBlack,
		listeners: make(map[int]func(int, int)),
	}
}

func (t *termSurface) Size() (int, int) {
	cols, rows := t.screen.Size()
	return cols * cellW, rows * cellH
}

func (t *termSurface) Clear(c color.Color) {
	r, g, b := rgb(c)
	t.bgRGB = [3]int32{r, g, b}
	t.bg = tcell.NewRGBColor(r, g, b)
	t.screen.Fill(' ', tcell.StyleDefault.Background(t.bg))
}

// FillCircle marks a single cell for small circles, and paints a shaded disk
// of cells for anything wider than a cell.
func (t *termSurface) FillCircle(x, y, radius float64, c color.Color) {
	fg := t.blend(c)
	if radius*2 < cellW {
		glyph := '·'
		if radius >= 2 {
			glyph = '•'
		}
		t.set(int(x/cellW), int(y/cellH), glyph, tcell.StyleDefault.Foreground(fg).Background(t.bg))
		return
	}

	style := tcell.StyleDefault.Background(fg)
	minCol, maxCol := int((x-radius)/cellW), int((x+radius)/cellW)
	minRow, maxRow := int((y-radius)/cellH), int((y+radius)/cellH)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cx := (float64(col) + 0.5) * cellW
			cy := (float64(row) + 0.5) * cellH
			if math.Hypot(cx-x, cy-y) <= radius {
				t.set(col, row, ' ', style)
			}
		}
	}
}

// Line walks the cells between the endpoints, leaving occupied cells alone.
func (t *termSurface) Line(x1, y1, x2, y2 float64, c color.Color) {
	style := tcell.StyleDefault.Foreground(t.blend(c)).Background(t.bg)
	c0, r0 := int(x1/cellW), int(y1/cellH)
	c1, r1 := int(x2/cellW), int(y2/cellH)

	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := sign(c1-c0), sign(r1-r0)
	e := dc + dr
	for {
		if mainc, _, _, _ := t.screen.GetContent(c0, r0); mainc == ' ' || mainc == 0 {
			t.set(c0, r0, '·', style)
		}
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

func (t *termSurface) Present() {
	t.screen.Show()
}

func (t *termSurface) OnResize(fn func(width, height int)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.next
	t.next++
	t.listeners[id] = fn
	return func() {
		t.mu.Lock()
		delete(t.listeners, id)
		t.mu.Unlock()
	}
}

// handleResize is called from the event goroutine on tcell.EventResize.
func (t *termSurface) handleResize() {
	t.screen.Sync()
	w, h := t.Size()

	t.mu.Lock()
	fns := make([]func(int, int), 0, len(t.listeners))
	for _, fn := range t.listeners {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(w, h)
	}
}

func (t *termSurface) set(col, row int, r rune, style tcell.Style) {
	cols, rows := t.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	t.screen.SetContent(col, row, r, nil, style)
}

// blend flattens a translucent colour onto the last clear colour, since
// terminal cells have no alpha.
func (t *termSurface) blend(c color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := float64(n.A) / 255
	mix := func(fg uint8, bg int32) int32 {
		return int32(math.Round(float64(fg)*a + float64(bg)*(1-a)))
	}
	return tcell.NewRGBColor(mix(n.R, t.bgRGB[0]), mix(n.G, t.bgRGB[1]), mix(n.B, t.bgRGB[2]))
}

func rgb(c color.Color) (int32, int32, int32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int32(n.R), int32(n.G), int32(n.B)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
