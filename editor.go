package main

import (
	"errors"

	"github.com/charmbracelet/log"
)

// Editor binds the diagram, the selection and the gesture controller to a
// scene. Every user action enters through here.
type Editor struct {
	diagram   *Diagram
	selection *Selection
	gesture   *Gesture
	scene     Scene
	log       *log.Logger
}

func NewEditor(scene Scene, logger *log.Logger) *Editor {
	d := NewDiagram(scene, NewDispatcher())
	s := NewSelection(d)
	return &Editor{
		diagram:   d,
		selection: s,
		gesture:   NewGesture(d, s, scene, logger),
		scene:     scene,
		log:       logger,
	}
}

func (e *Editor) Diagram() *Diagram {
	return e.diagram
}

func (e *Editor) Selection() *Selection {
	return e.selection
}

func (e *Editor) Mode() Mode {
	return e.gesture.Mode()
}

func (e *Editor) AddBlock(params BlockParams) *Block {
	b := e.diagram.CreateBlock(params)
	e.log.Info("block added", "id", b.Ref(), "color", b.Color, "width", b.Width, "height", b.Height, "label", b.Label)
	return b
}

// AddPort attaches a port to the selected block. It returns ErrNoTarget when
// the selection is not a block.
func (e *Editor) AddPort(side Side, params PortParams) (*Port, error) {
	target, _ := e.selection.Active()
	p, err := e.diagram.CreatePort(target, side, params)
	if err != nil {
		if errors.Is(err, ErrNoTarget) {
			e.log.Warn("port not added", "side", side, "err", err)
		}
		return nil, err
	}
	e.log.Info("port added", "id", p.Ref(), "side", side, "label", p.Label, "block", target)
	return p, nil
}

func (e *Editor) AddLine() bool {
	return e.gesture.BeginLine()
}

func (e *Editor) DeleteSelected() bool {
	ref, _ := e.selection.Active()
	if !e.selection.DeleteSelected() {
		return false
	}
	e.log.Info("deleted", "entity", ref)
	return true
}

func (e *Editor) PointerDown(p Point) {
	e.gesture.PointerDown(p)
}

func (e *Editor) PointerMove(p Point) {
	e.gesture.PointerMove(p)
}

func (e *Editor) PointerUp(p Point) {
	e.gesture.PointerUp(p)
}

func (e *Editor) Nudge(dx, dy float64) bool {
	return e.gesture.Nudge(dx, dy)
}

// ScaleSelected grows or shrinks the selected block horizontally by delta.
func (e *Editor) ScaleSelected(delta float64) bool {
	ref, ok := e.selection.Active()
	if !ok || ref.Kind != KindBlock || e.Mode() != ModeIdle {
		return false
	}
	b, ok := e.diagram.Block(ref.ID)
	if !ok {
		return false
	}
	return e.diagram.ScaleBlock(b.ID, b.ScaleX+delta, b.ScaleY)
}

func (e *Editor) BeginEdit() (string, bool) {
	return e.gesture.BeginEdit()
}

func (e *Editor) CommitEdit(text string) bool {
	return e.gesture.CommitEdit(text)
}

func (e *Editor) CancelEdit() {
	e.gesture.EndEdit()
}

func (e *Editor) Editing() (EntityRef, bool) {
	return e.gesture.Editing()
}

func (e *Editor) Drawing() *Line {
	return e.gesture.Drawing()
}
