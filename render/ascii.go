package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/veddel/gopong/game"
)

// Default character-grid dimensions for a rendered frame.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Glyphs used for the stage drawing.
const (
	glyphBall    = 'O'
	glyphPaddle  = '#'
	glyphEmpty   = ' '
	glyphSideV   = '|'
	glyphSideH   = '-'
	glyphCorner  = '+'
	glyphMidline = '.'
)

// Frame draws the snapshot as an ASCII stage: a score header, a phase line,
// and the bordered playfield scaled down to cols x rows characters.
func Frame(s game.Snapshot, stageW, stageH float64, cols, rows int) string {
	if cols < 4 || rows < 4 || stageW <= 0 || stageH <= 0 {
		return ""
	}

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			grid[y][x] = glyphEmpty
		}
	}

	// Center line helps judging distance in the terminal.
	for y := 0; y < rows; y += 2 {
		grid[y][cols/2] = glyphMidline
	}

	drawRect(grid, s.Paddle1.X, s.Paddle1.Y, s.Paddle1.Width, s.Paddle1.Height, stageW, stageH, glyphPaddle)
	drawRect(grid, s.Paddle2.X, s.Paddle2.Y, s.Paddle2.Width, s.Paddle2.Height, stageW, stageH, glyphPaddle)
	drawRect(grid, s.Ball.X, s.Ball.Y, s.Ball.Size, s.Ball.Size, stageW, stageH, glyphBall)

	var out strings.Builder
	fmt.Fprintf(&out, "P1 %d : %d P2\n", s.Paddle1.Score, s.Paddle2.Score)
	out.WriteString(statusLine(s))
	out.WriteByte('\n')

	border := string(glyphCorner) + strings.Repeat(string(glyphSideH), cols) + string(glyphCorner) + "\n"
	out.WriteString(border)
	for y := 0; y < rows; y++ {
		out.WriteRune(glyphSideV)
		out.WriteString(string(grid[y]))
		out.WriteRune(glyphSideV)
		out.WriteByte('\n')
	}
	out.WriteString(border)

	return out.String()
}

func statusLine(s game.Snapshot) string {
	switch s.Phase {
	case "startup":
		if s.Countdown > 0 {
			return fmt.Sprintf("Starting in %d...", int(math.Ceil(s.Countdown)))
		}
		return "Press start to play"
	case "round_end":
		return "Point!"
	}
	return "Playing"
}

// drawRect paints a stage-space rectangle onto the character grid.
func drawRect(grid [][]rune, x, y, w, h, stageW, stageH float64, glyph rune) {
	rows := len(grid)
	cols := len(grid[0])

	x0 := int(x / stageW * float64(cols))
	x1 := int((x + w) / stageW * float64(cols))
	y0 := int(y / stageH * float64(rows))
	y1 := int((y + h) / stageH * float64(rows))

	// Guarantee at least one cell so small shapes stay visible.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for gy := y0; gy < y1; gy++ {
		if gy < 0 || gy >= rows {
			continue
		}
		for gx := x0; gx < x1; gx++ {
			if gx < 0 || gx >= cols {
				continue
			}
			grid[gy][gx] = glyph
		}
	}
}
