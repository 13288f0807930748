package main

import (
	"errors"
	"slices"

	"github.com/google/uuid"
)

// ErrNoTarget is returned when a port is requested without a selected block.
var ErrNoTarget = errors.New("no block selected")

// Diagram holds every block, port and line. Blocks own their ports; lines are
// free-standing. All mutations go through its methods so the scene is
// invalidated and per-entity listeners fire.
type Diagram struct {
	blocks []*Block
	lines  []*Line

	blockIndex map[EntityID]*Block
	portIndex  map[EntityID]*Port
	lineIndex  map[EntityID]*Line

	events   *Dispatcher
	scene    Scene
	onRemove []func(EntityRef)
}

func NewDiagram(scene Scene, events *Dispatcher) *Diagram {
	return &Diagram{
		blocks:     make([]*Block, 0),
		lines:      make([]*Line, 0),
		blockIndex: make(map[EntityID]*Block),
		portIndex:  make(map[EntityID]*Port),
		lineIndex:  make(map[EntityID]*Line),
		events:     events,
		scene:      scene,
	}
}

// OnRemove registers fn to run for every entity the diagram deletes,
// including ports removed by a block cascade.
func (d *Diagram) OnRemove(fn func(EntityRef)) {
	d.onRemove = append(d.onRemove, fn)
}

func (d *Diagram) Blocks() []*Block {
	return d.blocks
}

func (d *Diagram) Lines() []*Line {
	return d.lines
}

// Ports lists every port, grouped by block in block creation order.
func (d *Diagram) Ports() []*Port {
	ports := make([]*Port, 0, len(d.portIndex))
	for _, b := range d.blocks {
		ports = append(ports, b.Ports...)
	}
	return ports
}

func (d *Diagram) Block(id EntityID) (*Block, bool) {
	b, ok := d.blockIndex[id]
	return b, ok
}

func (d *Diagram) Port(id EntityID) (*Port, bool) {
	p, ok := d.portIndex[id]
	return p, ok
}

func (d *Diagram) Line(id EntityID) (*Line, bool) {
	l, ok := d.lineIndex[id]
	return l, ok
}

func (d *Diagram) PortsOf(blockID EntityID) []*Port {
	if b, ok := d.blockIndex[blockID]; ok {
		return b.Ports
	}
	return nil
}

func (d *Diagram) Exists(ref EntityRef) bool {
	switch ref.Kind {
	case KindBlock:
		_, ok := d.blockIndex[ref.ID]
		return ok
	case KindPort:
		_, ok := d.portIndex[ref.ID]
		return ok
	case KindLine:
		_, ok := d.lineIndex[ref.ID]
		return ok
	}
	return false
}

func (d *Diagram) IsEmpty() bool {
	return len(d.blocks) == 0 && len(d.lines) == 0
}

func (d *Diagram) CreateBlock(params BlockParams) *Block {
	params = params.withDefaults()
	b := &Block{
		ID:     uuid.New(),
		Width:  params.Width,
		Height: params.Height,
		ScaleX: 1,
		ScaleY: 1,
		Color:  params.Color,
		Label:  params.Label,
		Ports:  make([]*Port, 0),
	}
	b.Center = Point{X: defaultBlockLeft + params.Width/2, Y: defaultBlockTop + params.Height/2}

	d.blocks = append(d.blocks, b)
	d.blockIndex[b.ID] = b

	reattach := func(EntityRef) { Reattach(b) }
	d.events.On(b.ID, EventMoved, reattach)
	d.events.On(b.ID, EventScaled, reattach)
	d.events.On(b.ID, EventEditingStarted, func(EntityRef) { b.Locked = true })
	d.events.On(b.ID, EventEditingEnded, func(EntityRef) { b.Locked = false })

	d.scene.Add(b.Ref())
	d.scene.Invalidate()
	return b
}

// CreatePort attaches a new port to the block named by target. It fails with
// ErrNoTarget, leaving the diagram unchanged, unless target is a live block.
func (d *Diagram) CreatePort(target EntityRef, side Side, params PortParams) (*Port, error) {
	if target.Kind != KindBlock {
		return nil, ErrNoTarget
	}
	b, ok := d.blockIndex[target.ID]
	if !ok {
		return nil, ErrNoTarget
	}

	params = params.withDefaults(side)
	p := &Port{
		ID:    uuid.New(),
		Owner: b.ID,
		Side:  side,
		Size:  params.Size,
		Label: params.Label,
	}
	p.Center = PortCenter(b, p)

	b.Ports = append(b.Ports, p)
	d.portIndex[p.ID] = p

	d.events.On(p.ID, EventEditingStarted, func(EntityRef) { p.Locked = true })
	d.events.On(p.ID, EventEditingEnded, func(EntityRef) { p.Locked = false })

	d.scene.Add(p.Ref())
	d.scene.Invalidate()
	return p, nil
}

// StartLine adds a zero-length, non-interactive line at p.
func (d *Diagram) StartLine(p Point) *Line {
	l := &Line{
		ID:          uuid.New(),
		Start:       p,
		End:         p,
		Stroke:      defaultLineStroke,
		StrokeWidth: defaultLineWidth,
		InProgress:  true,
	}
	d.lines = append(d.lines, l)
	d.lineIndex[l.ID] = l

	d.scene.Add(l.Ref())
	d.scene.Invalidate()
	return l
}

func (d *Diagram) SetLineEnd(id EntityID, p Point) bool {
	l, ok := d.lineIndex[id]
	if !ok {
		return false
	}
	l.End = p
	d.scene.Invalidate()
	return true
}

// FinishLine makes an in-progress line interactive. Selecting it dashes the
// stroke and deselecting it restores a solid one.
func (d *Diagram) FinishLine(id EntityID) bool {
	l, ok := d.lineIndex[id]
	if !ok || !l.InProgress {
		return false
	}
	l.InProgress = false
	d.events.On(l.ID, EventSelected, func(EntityRef) { l.Dash = slices.Clone(selectedLineDash) })
	d.events.On(l.ID, EventDeselected, func(EntityRef) { l.Dash = nil })
	d.scene.Invalidate()
	return true
}

func (d *Diagram) TranslateLine(id EntityID, dx, dy float64) bool {
	l, ok := d.lineIndex[id]
	if !ok || l.InProgress {
		return false
	}
	l.Start = l.Start.Add(dx, dy)
	l.End = l.End.Add(dx, dy)
	d.scene.Invalidate()
	return true
}

// MoveBlock places the block's center at c. Owned ports are re-attached by
// the block's moved listener before this returns. Locked blocks don't move.
func (d *Diagram) MoveBlock(id EntityID, c Point) bool {
	b, ok := d.blockIndex[id]
	if !ok || b.Locked {
		return false
	}
	b.Center = c
	d.events.Emit(b.Ref(), EventMoved)
	d.scene.Invalidate()
	return true
}

func (d *Diagram) ScaleBlock(id EntityID, sx, sy float64) bool {
	b, ok := d.blockIndex[id]
	if !ok || b.Locked {
		return false
	}
	b.ScaleX = min(max(sx, minBlockScale), maxBlockScale)
	b.ScaleY = min(max(sy, minBlockScale), maxBlockScale)
	d.events.Emit(b.Ref(), EventScaled)
	d.scene.Invalidate()
	return true
}

func (d *Diagram) SetHighlight(id EntityID, on bool) {
	if b, ok := d.blockIndex[id]; ok {
		b.Highlighted = on
		d.scene.Invalidate()
	}
}

func (d *Diagram) ClearHighlights() {
	for _, b := range d.blocks {
		b.Highlighted = false
	}
	d.scene.Invalidate()
}

func (d *Diagram) Label(ref EntityRef) (string, bool) {
	switch ref.Kind {
	case KindBlock:
		if b, ok := d.blockIndex[ref.ID]; ok {
			return b.Label, true
		}
	case KindPort:
		if p, ok := d.portIndex[ref.ID]; ok {
			return p.Label, true
		}
	}
	return "", false
}

// SetLabel changes a block or port label. Blank text restores the default.
func (d *Diagram) SetLabel(ref EntityRef, text string) bool {
	switch ref.Kind {
	case KindBlock:
		b, ok := d.blockIndex[ref.ID]
		if !ok {
			return false
		}
		b.Label = textOr(text, defaultBlockLabel)
	case KindPort:
		p, ok := d.portIndex[ref.ID]
		if !ok {
			return false
		}
		p.Label = textOr(text, defaultPortLabel(p.Side))
	default:
		return false
	}
	d.scene.Invalidate()
	return true
}

// Delete removes the entity named by ref. Deleting a block also deletes
// every port it owns. Unknown refs are ignored.
func (d *Diagram) Delete(ref EntityRef) bool {
	switch ref.Kind {
	case KindBlock:
		b, ok := d.blockIndex[ref.ID]
		if !ok {
			return false
		}
		for _, p := range b.Ports {
			d.dropPort(p)
		}
		b.Ports = nil
		d.blocks = slices.DeleteFunc(d.blocks, func(x *Block) bool { return x.ID == b.ID })
		delete(d.blockIndex, b.ID)
	case KindPort:
		p, ok := d.portIndex[ref.ID]
		if !ok {
			return false
		}
		if owner, ok := d.blockIndex[p.Owner]; ok {
			owner.Ports = slices.DeleteFunc(owner.Ports, func(x *Port) bool { return x.ID == p.ID })
		}
		d.dropPort(p)
		d.scene.Invalidate()
		return true
	case KindLine:
		l, ok := d.lineIndex[ref.ID]
		if !ok {
			return false
		}
		d.lines = slices.DeleteFunc(d.lines, func(x *Line) bool { return x.ID == l.ID })
		delete(d.lineIndex, l.ID)
	default:
		return false
	}
	d.forget(ref)
	d.scene.Invalidate()
	return true
}

func (d *Diagram) dropPort(p *Port) {
	delete(d.portIndex, p.ID)
	d.forget(p.Ref())
}

func (d *Diagram) forget(ref EntityRef) {
	d.events.Drop(ref.ID)
	d.scene.Remove(ref)
	for _, fn := range d.onRemove {
		fn(ref)
	}
}
