package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// termScene draws the diagram into terminal cells. One cell covers
// cellWidth x cellHeight world units. The last frame is kept until the
// scene is invalidated or the terminal size changes.
type termScene struct {
	diagram    *Diagram
	selection  *Selection
	cellWidth  float64
	cellHeight float64
	cursor     Cursor
	dirty      bool

	frame       []string
	frameWidth  int
	frameHeight int
}

func newTermScene(cellWidth, cellHeight float64) *termScene {
	if cellWidth <= 0 {
		cellWidth = 8
	}
	if cellHeight <= 0 {
		cellHeight = 16
	}
	return &termScene{cellWidth: cellWidth, cellHeight: cellHeight, dirty: true}
}

func (s *termScene) bind(e *Editor) {
	s.diagram = e.Diagram()
	s.selection = e.Selection()
}

func (s *termScene) Add(EntityRef) {
	s.dirty = true
}

func (s *termScene) Remove(EntityRef) {
	s.dirty = true
}

func (s *termScene) Invalidate() {
	s.dirty = true
}

func (s *termScene) HitTest(p Point) (EntityRef, bool) {
	if s.diagram == nil {
		return EntityRef{}, false
	}
	return hitTest(s.diagram, p)
}

func (s *termScene) SetCursor(c Cursor) {
	s.cursor = c
}

// cellToWorld maps a terminal cell to the world point at its center.
func (s *termScene) cellToWorld(col, row int) Point {
	return Point{
		X: (float64(col) + 0.5) * s.cellWidth,
		Y: (float64(row) + 0.5) * s.cellHeight,
	}
}

func (s *termScene) worldToCell(p Point) (int, int) {
	return int(math.Floor(p.X / s.cellWidth)), int(math.Floor(p.Y / s.cellHeight))
}

// rectCells returns the inclusive cell span covered by r.
func (s *termScene) rectCells(r Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X / s.cellWidth))
	y0 = int(math.Floor(r.Y / s.cellHeight))
	x1 = int(math.Ceil((r.X+r.Width)/s.cellWidth)) - 1
	y1 = int(math.Ceil((r.Y+r.Height)/s.cellHeight)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return
}

type cellStyle struct {
	fg   string
	bg   string
	bold bool
}

type cell struct {
	r     rune
	style cellStyle
}

type grid struct {
	cells [][]cell
}

func newGrid(width, height int) *grid {
	g := &grid{cells: make([][]cell, height)}
	for y := range g.cells {
		g.cells[y] = make([]cell, width)
		for x := range g.cells[y] {
			g.cells[y][x] = cell{r: ' '}
		}
	}
	return g
}

func (g *grid) set(x, y int, r rune, style cellStyle) {
	if y < 0 || y >= len(g.cells) || x < 0 || x >= len(g.cells[y]) {
		return
	}
	g.cells[y][x] = cell{r: r, style: style}
}

// clip limits an inclusive cell span to the grid. ok is false when the span
// lies entirely outside it.
func (g *grid) clip(x0, y0, x1, y1 int) (cx0, cy0, cx1, cy1 int, ok bool) {
	if len(g.cells) == 0 {
		return 0, 0, 0, 0, false
	}
	cx0, cy0 = max(x0, 0), max(y0, 0)
	cx1, cy1 = min(x1, len(g.cells[0])-1), min(y1, len(g.cells)-1)
	return cx0, cy0, cx1, cy1, cx0 <= cx1 && cy0 <= cy1
}

func (g *grid) text(x, y int, s string, style cellStyle) {
	for i, r := range []rune(s) {
		g.set(x+i, y, r, style)
	}
}

// Render draws the diagram into width x height cells. Lines go first so
// blocks and ports cover them.
func (s *termScene) Render(width, height int) []string {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}
	if !s.dirty && s.frame != nil && width == s.frameWidth && height == s.frameHeight {
		return s.frame
	}
	g := newGrid(width, height)
	if s.diagram != nil {
		for _, l := range s.diagram.Lines() {
			s.drawLine(g, l)
		}
		for _, b := range s.diagram.Blocks() {
			s.drawBlock(g, b)
			for _, p := range b.Ports {
				s.drawPort(g, p)
			}
		}
	}
	s.dirty = false
	s.frame, s.frameWidth, s.frameHeight = g.lines(), width, height
	return s.frame
}

func (s *termScene) selected(ref EntityRef) bool {
	return s.selection != nil && s.selection.Is(ref)
}

func (s *termScene) drawLine(g *grid, l *Line) {
	x0, y0 := s.worldToCell(l.Start)
	x1, y1 := s.worldToCell(l.End)
	style := cellStyle{fg: colorHex(l.Stroke)}
	if s.selected(l.Ref()) {
		style.fg = colorHex("cyan")
	}

	ch := lineRune(x1-x0, y1-y0)
	if l.InProgress {
		ch = '·'
	}

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for step := 0; ; step++ {
		if !l.Dashed() || step%2 == 0 {
			g.set(x0, y0, ch, style)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func lineRune(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '•'
	case abs(dy)*2 < abs(dx):
		return '-'
	case abs(dx)*2 < abs(dy):
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func (s *termScene) drawBlock(g *grid, b *Block) {
	x0, y0, x1, y1 := s.rectCells(b.Bounds())
	if x1-x0 < 2 {
		x1 = x0 + 2
	}
	if y1-y0 < 2 {
		y1 = y0 + 2
	}

	corner, horizontal, vertical := '+', '-', '|'
	switch {
	case s.selected(b.Ref()):
		corner, horizontal, vertical = '#', '#', '#'
	case b.Highlighted:
		corner, horizontal, vertical = '+', '=', '‖'
	}

	fill := cellStyle{fg: "#ffffff", bg: colorHex(b.Color)}
	border := fill
	border.bold = true
	cx0, cy0, cx1, cy1, ok := g.clip(x0, y0, x1, y1)
	if !ok {
		return
	}
	for y := cy0; y <= cy1; y++ {
		for x := cx0; x <= cx1; x++ {
			switch {
			case (y == y0 || y == y1) && (x == x0 || x == x1):
				g.set(x, y, corner, border)
			case y == y0 || y == y1:
				g.set(x, y, horizontal, border)
			case x == x0 || x == x1:
				g.set(x, y, vertical, border)
			default:
				g.set(x, y, ' ', fill)
			}
		}
	}

	inner := x1 - x0 - 1
	label := truncate(b.Label, inner)
	g.text(x0+1+(inner-len([]rune(label)))/2, (y0+y1)/2, label, fill)
}

func (s *termScene) drawPort(g *grid, p *Port) {
	x0, y0, x1, y1 := s.rectCells(p.Bounds())
	style := cellStyle{fg: colorHex(portColor(p.Side))}
	if s.selected(p.Ref()) {
		style.bold = true
		style.bg = colorHex("cyan")
	}
	if cx0, cy0, cx1, cy1, ok := g.clip(x0, y0, x1, y1); ok {
		for y := cy0; y <= cy1; y++ {
			for x := cx0; x <= cx1; x++ {
				g.set(x, y, '■', style)
			}
		}
	}
	label := []rune(p.Label)
	cx := (x0 + x1) / 2
	g.text(cx-len(label)/2, y1+1, p.Label, cellStyle{fg: colorHex("gray")})
}

// lines renders each row, styling runs of equally styled cells together.
func (g *grid) lines() []string {
	out := make([]string, len(g.cells))
	for y, row := range g.cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].style == row[start].style {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, c := range row[start:x] {
				run = append(run, c.r)
			}
			b.WriteString(row[start].style.render(string(run)))
			start = x
		}
		out[y] = b.String()
	}
	return out
}

func (cs cellStyle) render(s string) string {
	if cs == (cellStyle{}) {
		return s
	}
	st := lipgloss.NewStyle().Bold(cs.bold)
	if cs.fg != "" {
		st = st.Foreground(lipgloss.Color(cs.fg))
	}
	if cs.bg != "" {
		st = st.Background(lipgloss.Color(cs.bg))
	}
	return st.Render(s)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) > n {
		return string(r[:n])
	}
	return s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
