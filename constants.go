package main

// Mode is the gesture controller's state. Exactly one is active at a time.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeDrawingLine
	ModeEditingText
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "SELECT"
	case ModeDragging:
		return "DRAG"
	case ModeDrawingLine:
		return "LINE"
	case ModeEditingText:
		return "EDIT"
	default:
		return "UNKNOWN"
	}
}

type EntityKind int

const (
	KindNone EntityKind = iota
	KindBlock
	KindPort
	KindLine
)

func (k EntityKind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindPort:
		return "port"
	case KindLine:
		return "line"
	default:
		return "none"
	}
}

// Side says which edge of its block a port sits on.
type Side int

const (
	SideInput Side = iota
	SideOutput
)

func (s Side) String() string {
	if s == SideInput {
		return "input"
	}
	return "output"
}

type Cursor int

const (
	CursorDefault Cursor = iota
	CursorCrosshair
)

func (c Cursor) String() string {
	if c == CursorCrosshair {
		return "crosshair"
	}
	return "default"
}

const (
	defaultBlockColor  = "blue"
	defaultBlockWidth  = 100
	defaultBlockHeight = 60
	defaultBlockLabel  = "Block"

	// New blocks are placed with their top-left corner here.
	defaultBlockLeft = 100
	defaultBlockTop  = 100

	defaultPortSize    = 10
	defaultInputLabel  = "Input"
	defaultOutputLabel = "Output"

	defaultLineStroke = "black"
	defaultLineWidth  = 2

	minBlockScale = 0.1
	maxBlockScale = 20
	scaleStep     = 0.25

	// Upper bound for block and port sizes in world units.
	maxEntitySize = 4000

	// Exports wider or taller than this many pixels are refused.
	maxExportSide = 16384

	hitTolerance = 6.0
)

var selectedLineDash = []float64{5, 5}
