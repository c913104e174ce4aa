package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is an offscreen image the loop draws into during Update. Draw
// copies it to the screen. Layout resizes it to follow the window.
type canvas struct {
	img       *ebiten.Image
	listeners map[int]func(width, height int)
	next      int
}

func newCanvas() *canvas {
	return &canvas{listeners: make(map[int]func(int, int))}
}

func (c *canvas) ready() bool { return c.img != nil }

func (c *canvas) Size() (int, int) {
	if c.img == nil {
		return 0, 0
	}
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *canvas) Clear(col color.Color) {
	c.img.Fill(col)
}

func (c *canvas) FillCircle(x, y, radius float64, col color.Color) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(radius), col, true)
}

func (c *canvas) Line(x1, y1, x2, y2 float64, col color.Color) {
	vector.StrokeLine(c.img, float32(x1), float32(y1), float32(x2), float32(y2), 1, col, true)
}

func (c *canvas) OnResize(fn func(width, height int)) func() {
	id := c.next
	c.next++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

// resize reallocates the backing image when the window size changes.
func (c *canvas) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if w, h := c.Size(); w == width && h == height {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(width, height)
	for _, fn := range c.listeners {
		fn(width, height)
	}
}
