package banner

import (
	"strings"

	"github.com/npillmayer/blockface/core/font"
)

// A canvas is the mutable output grid for a single compose run. It has a
// fixed number of rows and a jagged, growing width per row. Cells, once
// inked, are never overwritten.
type canvas struct {
	rows [][]rune
}

func newCanvas(height int) *canvas {
	if height < 0 {
		height = 0
	}
	return &canvas{rows: make([][]rune, height)}
}

// place copies a glyph's cells onto the canvas, with its left edge at
// column cursor. Existing ink wins over later writes, so a kerned glyph
// cannot erase its predecessor's edge.
func (c *canvas) place(g *font.Glyph, cursor int) {
	for i, row := range g.Rows {
		if i >= len(c.rows) { // glyph taller than the font; excess rows clipped
			break
		}
		for col, cell := range row {
			c.set(i, cursor+col, cell)
		}
	}
}

func (c *canvas) set(row, col int, cell rune) {
	r := c.rows[row]
	for len(r) <= col {
		r = append(r, font.Blank)
	}
	if r[col] == font.Blank {
		r[col] = cell
	}
	c.rows[row] = r
}

// serialize right-pads every row to the maximum observed width and joins
// the rows into the final banner string. An untouched canvas serializes to
// the empty string.
func (c *canvas) serialize() string {
	width := 0
	for _, row := range c.rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return ""
	}
	var sb strings.Builder
	for i, row := range c.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
		for pad := len(row); pad < width; pad++ {
			sb.WriteRune(font.Blank)
		}
	}
	return sb.String()
}
