package sketch

import (
	"fmt"
	"image"

	"github.com/google/uuid"

	"github.com/gogpu/sketch/internal/blend"
	"github.com/gogpu/sketch/internal/raster"
)

// Tool selects the drawing instrument.
type Tool int

const (
	// ToolPen paints the active color.
	ToolPen Tool = iota
	// ToolEraser removes previously painted pixels.
	ToolEraser
)

// String returns "pen" or "eraser".
func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

func (t Tool) valid() bool {
	return t == ToolPen || t == ToolEraser
}

// ParseTool parses a tool name case-insensitively.
func ParseTool(s string) (Tool, error) {
	switch foldName(s) {
	case "pen":
		return ToolPen, nil
	case "eraser":
		return ToolEraser, nil
	default:
		return ToolPen, fmt.Errorf("sketch: unknown tool %q", s)
	}
}

// BlendMode is the rule for combining a stroke with the pixels under it.
type BlendMode int

const (
	// BlendNormal paints the stroke color over existing content (source-over).
	BlendNormal BlendMode = iota
	// BlendErase removes existing content under the stroke (destination-out).
	BlendErase
)

// String returns the CSS composite operation name.
func (m BlendMode) String() string {
	return m.op().String()
}

func (m BlendMode) op() blend.Mode {
	if m == BlendErase {
		return blend.ModeDestinationOut
	}
	return blend.ModeSourceOver
}

// Stroke is one continuous pointer-down to pointer-up gesture.
//
// Strokes are created by the Engine. Callers receive handles for reading;
// the point sequence only grows while the stroke is in progress and is
// immutable once Sealed reports true.
type Stroke struct {
	ID    uuid.UUID
	Tool  Tool
	Color RGBA
	// Width is the rendered thickness; eraser strokes already carry the
	// EraserWidthMultiplier.
	Width float64
	Blend BlendMode

	points []Point
	sealed bool
}

// Points returns a copy of the stroke's points in insertion order.
func (s *Stroke) Points() []Point {
	return append([]Point(nil), s.points...)
}

// Len returns the number of recorded points.
func (s *Stroke) Len() int {
	return len(s.points)
}

// Sealed reports whether the pointer has been released.
func (s *Stroke) Sealed() bool {
	return s.sealed
}

// Bounds returns the pixel rectangle the stroke may touch, including its
// anti-aliased fringe. It is not clipped to the canvas.
func (s *Stroke) Bounds() image.Rectangle {
	return s.polyline().Bounds()
}

// Clone returns a deep copy with the same ID.
func (s *Stroke) Clone() *Stroke {
	c := *s
	c.points = s.Points()
	return &c
}

// newStrokeID is swapped in tests that need stable IDs.
var newStrokeID = uuid.New

func (s *Stroke) polyline() raster.Polyline {
	pts := make([]raster.Point, len(s.points))
	for i, p := range s.points {
		pts[i] = raster.Point(p)
	}
	return raster.Polyline{Points: pts, Width: s.Width}
}

// append adds a point; it reports false on a sealed stroke.
func (s *Stroke) append(p Point) bool {
	if s.sealed {
		return false
	}
	s.points = append(s.points, p)
	return true
}

func (s *Stroke) seal() {
	s.sealed = true
}
