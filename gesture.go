package main

import "github.com/charmbracelet/log"

// Gesture turns pointer down/move/up into diagram edits. It is driven from a
// single goroutine and expects down, move*, up in order for each gesture.
type Gesture struct {
	mode      Mode
	diagram   *Diagram
	selection *Selection
	scene     Scene
	log       *log.Logger

	drawing  *Line
	dragging EntityRef
	last     Point
	editing  EntityRef
}

func NewGesture(d *Diagram, s *Selection, scene Scene, logger *log.Logger) *Gesture {
	return &Gesture{
		mode:      ModeIdle,
		diagram:   d,
		selection: s,
		scene:     scene,
		log:       logger,
	}
}

func (g *Gesture) Mode() Mode {
	return g.mode
}

// Drawing returns the line being drawn, or nil.
func (g *Gesture) Drawing() *Line {
	return g.drawing
}

// BeginLine enters line-draw mode. Any selection is dropped. It refuses while
// a drag or another line is in progress.
func (g *Gesture) BeginLine() bool {
	switch g.mode {
	case ModeDragging:
		return false
	case ModeDrawingLine:
		return g.drawing == nil
	case ModeEditingText:
		g.EndEdit()
	}
	g.selection.Clear()
	g.mode = ModeDrawingLine
	g.scene.SetCursor(CursorCrosshair)
	g.log.Debug("line mode")
	return true
}

// PointerDown starts a gesture at p. A press while still dragging means the
// release was lost, so the drag is ended first.
func (g *Gesture) PointerDown(p Point) {
	switch g.mode {
	case ModeEditingText:
		g.EndEdit()
	case ModeDragging:
		g.log.Debug("release lost, ending drag", "entity", g.dragging)
		g.PointerUp(g.last)
	}

	switch g.mode {
	case ModeDrawingLine:
		if g.drawing != nil {
			return
		}
		g.drawing = g.diagram.StartLine(p)
		g.log.Debug("line started", "at", p)
	case ModeIdle:
		ref, ok := g.scene.HitTest(p)
		if !ok {
			g.selection.Clear()
			return
		}
		g.selection.Select(ref)
		g.dragging = ref
		g.last = p
		g.mode = ModeDragging
		if ref.Kind == KindBlock {
			g.diagram.SetHighlight(ref.ID, true)
		}
		g.log.Debug("grab", "entity", ref, "at", p)
	}
}

func (g *Gesture) PointerMove(p Point) {
	switch g.mode {
	case ModeDrawingLine:
		if g.drawing == nil {
			return
		}
		g.diagram.SetLineEnd(g.drawing.ID, p)
	case ModeDragging:
		dx, dy := p.Sub(g.last)
		g.last = p
		g.drag(dx, dy)
	}
}

func (g *Gesture) PointerUp(p Point) {
	switch g.mode {
	case ModeDrawingLine:
		if g.drawing != nil {
			g.diagram.FinishLine(g.drawing.ID)
			g.log.Info("line added", "start", g.drawing.Start, "end", g.drawing.End)
			g.drawing = nil
			g.mode = ModeIdle
			g.scene.SetCursor(CursorDefault)
		}
	case ModeDragging:
		g.dragging = EntityRef{}
		g.mode = ModeIdle
	}
	g.diagram.ClearHighlights()
}

// Nudge moves the selected block or line by (dx, dy) as if it were dragged.
func (g *Gesture) Nudge(dx, dy float64) bool {
	if g.mode != ModeIdle {
		return false
	}
	ref, ok := g.selection.Active()
	if !ok {
		return false
	}
	return g.move(ref, dx, dy)
}

func (g *Gesture) drag(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	g.move(g.dragging, dx, dy)
}

// move shifts an entity. Ports follow their block and never move alone.
func (g *Gesture) move(ref EntityRef, dx, dy float64) bool {
	switch ref.Kind {
	case KindBlock:
		b, ok := g.diagram.Block(ref.ID)
		if !ok {
			return false
		}
		return g.diagram.MoveBlock(b.ID, b.Center.Add(dx, dy))
	case KindLine:
		return g.diagram.TranslateLine(ref.ID, dx, dy)
	}
	return false
}
