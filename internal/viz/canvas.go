package viz

import (
	"math"
	"strings"
)

// dotBits gives the braille bit of sub-dot (x%2, y%4); U+2800 is the empty
// cell.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a dot bitmap rendered as braille, so a cols×rows canvas has
// 2·cols × 4·rows dots. Dot (0, 0) is the top-left.
type Canvas struct {
	Cols, Rows int
	dots       []bool
}

func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{Cols: cols, Rows: rows, dots: make([]bool, 2*cols*4*rows)}
}

func (c *Canvas) width() int { return 2 * c.Cols }

// Set lights the dot at (x, y). Dots off the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.width() || y >= 4*c.Rows {
		return
	}
	c.dots[y*c.width()+x] = true
}

// DrawLine lights the dots nearest to evenly spaced points from (x0, y0) to
// (x1, y1), one per dot along the longer axis.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := float64(x1-x0), float64(y1-y0)
	n := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if n == 0 {
		c.Set(x0, y0)
		return
	}
	for s := 0; s <= n; s++ {
		t := float64(s) / float64(n)
		c.Set(x0+int(math.Round(t*dx)), y0+int(math.Round(t*dy)))
	}
}

// String encodes the bitmap as rows of braille characters, without a
// trailing newline.
func (c *Canvas) String() string {
	var b strings.Builder
	w := c.width()
	for row := 0; row < c.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.Cols; col++ {
			r := rune(0x2800)
			for sy := 0; sy < 4; sy++ {
				for sx := 0; sx < 2; sx++ {
					if c.dots[(4*row+sy)*w+2*col+sx] {
						r |= dotBits[sy][sx]
					}
				}
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
