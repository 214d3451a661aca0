// Package tui is the terminal platform: a colored cell buffer scaled from
// game coordinates, a Bubble Tea model that displays rendered frames, an
// engine.Backend bridging the two, and the SSH server for remote play.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okarlsen/skyshot/internal/engine"
	"github.com/okarlsen/skyshot/internal/geom"
)

// cell is one terminal character with its color.
type cell struct {
	r     rune
	color engine.Color
}

// Screen is a 2D colored cell buffer. Games draw in game coordinates
// (typically 1280x720); the buffer scales them down to terminal cells.
// It decouples rendering from the terminal so drawing can be tested
// without one.
type Screen struct {
	cols, rows   int
	gameW, gameH float64
	cells        [][]cell
}

// NewScreen creates a buffer of cols x rows terminal cells mapping the
// given game-coordinate area.
func NewScreen(cols, rows int, gameW, gameH float64) *Screen {
	s := &Screen{cols: cols, rows: rows, gameW: gameW, gameH: gameH}
	s.allocate()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]cell, s.rows)
	for y := range s.cells {
		s.cells[y] = make([]cell, s.cols)
	}
	s.Clear()
}

// Cols returns the buffer width in terminal cells.
func (s *Screen) Cols() int { return s.cols }

// Rows returns the buffer height in terminal cells.
func (s *Screen) Rows() int { return s.rows }

// Resize changes the terminal cell dimensions, dropping current content.
func (s *Screen) Resize(cols, rows int) {
	if cols == s.cols && rows == s.rows {
		return
	}
	s.cols = cols
	s.rows = rows
	s.allocate()
}

// Clear fills the buffer with blanks.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = cell{r: ' ', color: engine.ColorDefault}
		}
	}
}

// set places a colored rune, clipping out-of-bounds coordinates.
func (s *Screen) set(x, y int, r rune, color engine.Color) {
	if x < 0 || x >= s.cols || y < 0 || y >= s.rows {
		return
	}
	s.cells[y][x] = cell{r: r, color: color}
}

// cellAt returns the cell, or a blank for out-of-bounds coordinates.
func (s *Screen) cellAt(x, y int) cell {
	if x < 0 || x >= s.cols || y < 0 || y >= s.rows {
		return cell{r: ' '}
	}
	return s.cells[y][x]
}

// toCell converts a game-coordinate point to a cell position.
func (s *Screen) toCell(p geom.Point) (int, int) {
	return int(p.X * float64(s.cols) / s.gameW), int(p.Y * float64(s.rows) / s.gameH)
}

// FillCircle rasterizes a filled circle given in game coordinates. The
// non-square cell aspect is absorbed by the per-axis scale, so the circle
// becomes the right ellipse of cells.
func (s *Screen) FillCircle(center geom.Point, radius float64, color engine.Color) {
	if radius <= 0 {
		return
	}
	rx := radius * float64(s.cols) / s.gameW
	ry := radius * float64(s.rows) / s.gameH
	if rx < 1 {
		rx = 1
	}
	if ry < 1 {
		ry = 1
	}
	cx, cy := s.toCell(center)
	for y := cy - int(ry); y <= cy+int(ry); y++ {
		for x := cx - int(rx); x <= cx+int(rx); x++ {
			dx := float64(x-cx) / rx
			dy := float64(y-cy) / ry
			if dx*dx+dy*dy <= 1 {
				s.set(x, y, '█', color)
			}
		}
	}
}

// WriteText draws a string starting at a game-coordinate position. The
// text itself is not scaled; it occupies one cell per rune.
func (s *Screen) WriteText(position geom.Point, text string, color engine.Color) {
	x, y := s.toCell(position)
	for i, r := range text {
		s.set(x+i, y, r, color)
	}
}

// colorStyles maps engine colors to lipgloss styles.
var colorStyles = map[engine.Color]lipgloss.Style{
	engine.ColorDefault:   lipgloss.NewStyle(),
	engine.ColorBlack:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")), // white on dark terminals
	engine.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	engine.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	engine.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	engine.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	engine.ColorMagenta:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	engine.ColorPink:      lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
	engine.ColorPurple:    lipgloss.NewStyle().Foreground(lipgloss.Color("93")),
	engine.ColorLightBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	engine.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	engine.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Render converts the buffer to a styled string, grouping adjacent cells
// of the same color to keep ANSI escape sequences down.
func (s *Screen) Render() string {
	var sb strings.Builder
	sb.Grow(s.cols*s.rows*2 + s.rows)

	for y := 0; y < s.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < s.cols {
			start := s.cells[y][x].color
			var run strings.Builder
			for x < s.cols && s.cells[y][x].color == start {
				run.WriteRune(s.cells[y][x].r)
				x++
			}
			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[engine.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Row returns the runes of one row without styling. Used by tests.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.rows {
		return strings.Repeat(" ", s.cols)
	}
	runes := make([]rune, s.cols)
	for x := range runes {
		runes[x] = s.cells[y][x].r
	}
	return string(runes)
}
