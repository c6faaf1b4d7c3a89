package text

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ink selects a style from the theme for a canvas cell.
type ink int

const (
	inkNone ink = iota
	inkNode
	inkEdge
	inkActive
	inkFound
	inkDeleting
	inkFaded
	inkArrow
	inkCount
)

type cell struct {
	r   rune
	ink ink
}

// canvas is a fixed-size grid of styled runes.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *canvas) put(x, y int, r rune, k ink) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, ink: k}
}

func (c *canvas) at(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.cells[y*c.w+x].r
}

// label writes s centred on x.
func (c *canvas) label(x, y int, s string, k ink) {
	runes := []rune(s)
	x0 := x - len(runes)/2
	for i, r := range runes {
		c.put(x0+i, y, r, k)
	}
}

// line draws a straight segment between two cells, skipping both ends.
func (c *canvas) line(x0, y0, x1, y1 int, k ink) {
	r := lineRune(x1-x0, y1-y0)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	x, y := x0, y0
	for x != x1 || y != y1 {
		if (x != x0 || y != y0) && c.at(x, y) == ' ' {
			c.put(x, y, r, k)
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// arrow places a direction marker two thirds of the way along a segment.
func (c *canvas) arrow(x0, y0, x1, y1 int, k ink) {
	x := x0 + (x1-x0)*2/3
	y := y0 + (y1-y0)*2/3
	c.put(x, y, arrowRune(x1-x0, y1-y0), k)
}

// String renders the canvas with trailing blanks trimmed from every row.
func (c *canvas) String(styles [inkCount]lipgloss.Style) string {
	var b strings.Builder
	for y := range c.h {
		row := c.cells[y*c.w : (y+1)*c.w]
		end := len(row)
		for end > 0 && row[end-1].r == ' ' {
			end--
		}
		for i := 0; i < end; {
			j := i
			for j < end && row[j].ink == row[i].ink {
				j++
			}
			var run strings.Builder
			for _, cl := range row[i:j] {
				run.WriteRune(cl.r)
			}
			if row[i].ink == inkNone {
				b.WriteString(run.String())
			} else {
				b.WriteString(styles[row[i].ink].Render(run.String()))
			}
			i = j
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func lineRune(dx, dy int) rune {
	switch {
	case abs(dx) > 2*abs(dy):
		return '-'
	case abs(dy) > 2*abs(dx):
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	}
	return '/'
}

func arrowRune(dx, dy int) rune {
	a := math.Atan2(float64(dy), float64(dx))
	arrows := []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	i := int(math.Round(a/(math.Pi/4))+8) % 8
	return arrows[i]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
