package sketch

import "math"

const (
	// MinStrokeWidth and MaxStrokeWidth bound the selectable width.
	MinStrokeWidth = 1.0
	MaxStrokeWidth = 20.0

	// DefaultStrokeWidth is the width selected when an engine starts.
	DefaultStrokeWidth = 5.0

	// EraserWidthMultiplier scales the selected width for eraser strokes
	// so erasing covers more ground than drawing.
	EraserWidthMultiplier = 2.0
)

// ToolState is the instrument, color and width applied to strokes begun
// from now on. It never affects a stroke already in progress.
type ToolState struct {
	Tool  Tool
	Color RGBA
	Width float64
}

// DefaultToolState returns a black pen of DefaultStrokeWidth.
func DefaultToolState() ToolState {
	return ToolState{
		Tool:  ToolPen,
		Color: Black,
		Width: DefaultStrokeWidth,
	}
}

// withTool returns the state with t selected. Unknown tools are ignored.
func (ts ToolState) withTool(t Tool) ToolState {
	if t.valid() {
		ts.Tool = t
	}
	return ts
}

// withColor returns the state with c selected, components clamped.
func (ts ToolState) withColor(c RGBA) ToolState {
	ts.Color = c.clamped()
	return ts
}

// withWidth returns the state with w clamped to the selectable range.
// NaN is ignored.
func (ts ToolState) withWidth(w float64) ToolState {
	if math.IsNaN(w) {
		return ts
	}
	ts.Width = ClampWidth(w)
	return ts
}

// ClampWidth restricts w to [MinStrokeWidth, MaxStrokeWidth].
func ClampWidth(w float64) float64 {
	return math.Max(MinStrokeWidth, math.Min(MaxStrokeWidth, w))
}

// newStroke seeds a stroke from the tool state.
func (ts ToolState) newStroke(p Point) *Stroke {
	s := &Stroke{
		ID:     newStrokeID(),
		Tool:   ts.Tool,
		Color:  ts.Color,
		Width:  ts.Width,
		Blend:  BlendNormal,
		points: []Point{p},
	}
	if ts.Tool == ToolEraser {
		s.Width = ts.Width * EraserWidthMultiplier
		s.Blend = BlendErase
		s.Color = White
	}
	return s
}
