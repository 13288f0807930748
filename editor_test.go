package main

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

// fakeScene records what the editor asks of it and hit-tests straight
// against the diagram.
type fakeScene struct {
	diagram       *Diagram
	added         []EntityRef
	removed       []EntityRef
	invalidations int
	cursor        Cursor
}

func (s *fakeScene) Add(ref EntityRef) { s.added = append(s.added, ref) }
func (s *fakeScene) Remove(ref EntityRef) { s.removed = append(s.removed, ref) }
func (s *fakeScene) Invalidate() { s.invalidations++ }
func (s *fakeScene) SetCursor(c Cursor) { s.cursor = c }

func (s *fakeScene) HitTest(p Point) (EntityRef, bool) {
	return hitTest(s.diagram, p)
}

func newTestEditor(t *testing.T) (*Editor, *fakeScene) {
	t.Helper()
	scene := &fakeScene{}
	e := NewEditor(scene, newLogger(io.Discard, log.DebugLevel))
	scene.diagram = e.Diagram()
	return e, scene
}

func TestAddPortWithoutSelection(t *testing.T) {
	e, scene := newTestEditor(t)
	e.AddBlock(BlockParams{})
	before := scene.invalidations

	p, err := e.AddPort(SideInput, PortParams{})
	if !errors.Is(err, ErrNoTarget) {
		t.Fatalf("AddPort() err = %v, want ErrNoTarget", err)
	}
	if p != nil {
		t.Errorf("AddPort() returned port %v", p)
	}
	if got := len(e.Diagram().Ports()); got != 0 {
		t.Errorf("ports = %d, want 0", got)
	}
	if scene.invalidations != before {
		t.Errorf("scene invalidated %d times on failure", scene.invalidations-before)
	}
}

func TestAddPortToSelectedLine(t *testing.T) {
	e, _ := newTestEditor(t)
	e.AddLine()
	e.PointerDown(Point{X: 400, Y: 400})
	e.PointerMove(Point{X: 500, Y: 400})
	e.PointerUp(Point{X: 500, Y: 400})
	e.Selection().Select(e.Diagram().Lines()[0].Ref())

	if _, err := e.AddPort(SideOutput, PortParams{}); !errors.Is(err, ErrNoTarget) {
		t.Fatalf("AddPort() err = %v, want ErrNoTarget", err)
	}
}

func TestAddPortInputOffset(t *testing.T) {
	e, _ := newTestEditor(t)
	b := e.AddBlock(BlockParams{})
	e.Selection().Select(b.Ref())

	p, err := e.AddPort(SideInput, PortParams{})
	if err != nil {
		t.Fatalf("AddPort() error: %v", err)
	}
	if dx := p.Center.X - b.Center.X; dx != -55 {
		t.Errorf("x offset = %v, want -55", dx)
	}
	if p.Center.Y != b.Center.Y {
		t.Errorf("port y = %v, want %v", p.Center.Y, b.Center.Y)
	}
	if p.Label != defaultInputLabel || p.Size != defaultPortSize {
		t.Errorf("port = %q/%v, want defaults", p.Label, p.Size)
	}
}

func TestDeleteSelectedTwiceWithNothingSelected(t *testing.T) {
	e, scene := newTestEditor(t)
	e.AddBlock(BlockParams{})
	before := scene.invalidations

	for i := 0; i < 2; i++ {
		if e.DeleteSelected() {
			t.Fatalf("DeleteSelected() #%d = true with nothing selected", i+1)
		}
	}
	if got := len(e.Diagram().Blocks()); got != 1 {
		t.Errorf("blocks = %d, want 1", got)
	}
	if scene.invalidations != before {
		t.Errorf("scene invalidated on no-op delete")
	}
}

func TestDeleteSelectedBlockCascades(t *testing.T) {
	e, scene := newTestEditor(t)
	b := e.AddBlock(BlockParams{})
	e.Selection().Select(b.Ref())
	in, _ := e.AddPort(SideInput, PortParams{})
	out, _ := e.AddPort(SideOutput, PortParams{})

	if !e.DeleteSelected() {
		t.Fatal("DeleteSelected() = false")
	}
	if _, ok := e.Selection().Active(); ok {
		t.Error("selection still active after delete")
	}
	d := e.Diagram()
	for _, p := range []*Port{in, out} {
		if _, ok := d.Port(p.ID); ok {
			t.Errorf("port %s survived its block", p.Ref())
		}
	}
	if len(d.Ports()) != 0 || len(d.Blocks()) != 0 {
		t.Errorf("diagram not empty: %d blocks, %d ports", len(d.Blocks()), len(d.Ports()))
	}
	if len(scene.removed) != 3 {
		t.Errorf("scene removals = %d, want 3", len(scene.removed))
	}
}

func TestScaleSelected(t *testing.T) {
	e, _ := newTestEditor(t)
	b := e.AddBlock(BlockParams{})
	e.Selection().Select(b.Ref())
	out, _ := e.AddPort(SideOutput, PortParams{})

	if !e.ScaleSelected(1) {
		t.Fatal("ScaleSelected() = false")
	}
	if b.ScaleX != 2 {
		t.Fatalf("ScaleX = %v, want 2", b.ScaleX)
	}
	if want := b.Center.X + 100 + 5; out.Center.X != want {
		t.Errorf("output port x = %v, want %v", out.Center.X, want)
	}

	e.ScaleSelected(-10)
	if b.ScaleX != minBlockScale {
		t.Errorf("ScaleX = %v, want clamp to %v", b.ScaleX, minBlockScale)
	}

	e.ScaleSelected(1000)
	if b.ScaleX != maxBlockScale {
		t.Errorf("ScaleX = %v, want clamp to %v", b.ScaleX, maxBlockScale)
	}
}

func TestScaleSelectedNeedsBlock(t *testing.T) {
	e, _ := newTestEditor(t)
	if e.ScaleSelected(scaleStep) {
		t.Error("ScaleSelected() = true with nothing selected")
	}
}
