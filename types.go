package main

import "github.com/google/uuid"

type EntityID = uuid.UUID

// EntityRef names one live entity of the diagram. The zero value refers to nothing.
type EntityRef struct {
	Kind EntityKind
	ID   EntityID
}

func (r EntityRef) IsZero() bool {
	return r.Kind == KindNone
}

func (r EntityRef) String() string {
	if r.IsZero() {
		return "none"
	}
	return r.Kind.String() + ":" + r.ID.String()[:8]
}

type Block struct {
	ID     EntityID
	Center Point
	Width  float64
	Height float64
	ScaleX float64
	ScaleY float64
	Color  string
	Label  string
	Ports  []*Port

	Highlighted bool
	Locked      bool
}

func (b *Block) Ref() EntityRef {
	return EntityRef{Kind: KindBlock, ID: b.ID}
}

// Bounds is the block's rectangle after scaling.
func (b *Block) Bounds() Rect {
	return rectAround(b.Center, b.Width*b.ScaleX, b.Height*b.ScaleY)
}

// Port is a square attached to a block edge. Center is derived from the
// owning block and is only written by the attachment engine.
type Port struct {
	ID     EntityID
	Owner  EntityID
	Side   Side
	Size   float64
	Label  string
	Center Point

	Locked bool
}

func (p *Port) Ref() EntityRef {
	return EntityRef{Kind: KindPort, ID: p.ID}
}

func (p *Port) Bounds() Rect {
	return rectAround(p.Center, p.Size, p.Size)
}

type Line struct {
	ID          EntityID
	Start       Point
	End         Point
	Stroke      string
	StrokeWidth float64
	Dash        []float64
	InProgress  bool
}

func (l *Line) Ref() EntityRef {
	return EntityRef{Kind: KindLine, ID: l.ID}
}

func (l *Line) Dashed() bool {
	return len(l.Dash) > 0
}

type BlockParams struct {
	Color  string
	Width  float64
	Height float64
	Label  string
}

func (p BlockParams) withDefaults() BlockParams {
	if p.Color == "" {
		p.Color = defaultBlockColor
	}
	if p.Width <= 0 {
		p.Width = defaultBlockWidth
	}
	if p.Height <= 0 {
		p.Height = defaultBlockHeight
	}
	p.Width = min(p.Width, maxEntitySize)
	p.Height = min(p.Height, maxEntitySize)
	if p.Label == "" {
		p.Label = defaultBlockLabel
	}
	return p
}

type PortParams struct {
	Label string
	Size  float64
}

func (p PortParams) withDefaults(side Side) PortParams {
	if p.Label == "" {
		p.Label = defaultPortLabel(side)
	}
	if p.Size <= 0 {
		p.Size = defaultPortSize
	}
	p.Size = min(p.Size, maxEntitySize)
	return p
}

func defaultPortLabel(side Side) string {
	if side == SideInput {
		return defaultInputLabel
	}
	return defaultOutputLabel
}
