package sketch

import "fmt"

// Default canvas dimensions of the drawing surface.
const (
	DefaultCanvasWidth  = 600
	DefaultCanvasHeight = 400
)

// State is the input capture state.
type State int

const (
	// StateIdle means no pointer is down.
	StateIdle State = iota
	// StateDrawing means a stroke is in progress.
	StateDrawing
)

// String returns "idle" or "drawing".
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Engine is one drawing session: it owns the stroke model, the tool state
// and the composed canvas surface for a fixed canvas size.
//
// Pointer events are applied strictly in call order and the surface is
// recomposed on every mutating event. Only ExportBlob does work on another
// goroutine, and it works on a private copy of the surface.
//
// Engine is not safe for concurrent use. Drive it from one goroutine, the
// way a UI event loop does.
type Engine struct {
	width, height int

	model     StrokeModel
	tools     ToolState
	state     State
	comp      *Compositor
	listeners notifier
	opts      engineOptions
}

// New creates an engine for a width x height canvas. The size is fixed for
// the engine's lifetime; create a new engine for a different size.
//
// New returns a *RenderSurfaceError if the surface cannot be allocated.
func New(width, height int, opts ...EngineOption) (*Engine, error) {
	if err := checkSurfaceSize(width, height); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		width:  width,
		height: height,
		tools:  o.tools,
		state:  StateIdle,
		comp:   NewCompositor(width, height),
		opts:   o,
	}
	for _, fn := range o.onChange {
		e.listeners.add(fn)
	}

	Logger().Info("sketch: engine created", "width", width, "height", height)
	return e, nil
}

// Width returns the canvas width.
func (e *Engine) Width() int { return e.width }

// Height returns the canvas height.
func (e *Engine) Height() int { return e.height }

// State returns the input capture state.
func (e *Engine) State() State { return e.state }

// Model returns the stroke model for reading. Mutate the canvas only
// through the pointer methods and Clear.
func (e *Engine) Model() *StrokeModel { return &e.model }

// ToolState returns the tool state applied to the next stroke.
func (e *Engine) ToolState() ToolState { return e.tools }

// ready reports whether the render surface exists.
func (e *Engine) ready() bool { return e.comp != nil }

// SelectTool selects the instrument for strokes begun after the call.
// Unknown tools are ignored.
func (e *Engine) SelectTool(t Tool) {
	if !t.valid() {
		Logger().Debug("sketch: ignoring unknown tool", "tool", int(t))
		return
	}
	e.tools = e.tools.withTool(t)
}

// SelectColor selects the color for strokes begun after the call.
// Components are clamped to [0, 1].
func (e *Engine) SelectColor(c RGBA) {
	e.tools = e.tools.withColor(c)
}

// SelectColorString selects a color given as hex or a CSS name.
// Malformed input is ignored and the previous color is kept.
func (e *Engine) SelectColorString(s string) {
	c, err := ParseColor(s)
	if err != nil {
		Logger().Debug("sketch: ignoring color", "error", err)
		return
	}
	e.SelectColor(c)
}

// SelectWidth selects the width for strokes begun after the call, clamped
// to [MinStrokeWidth, MaxStrokeWidth]. NaN is ignored.
func (e *Engine) SelectWidth(w float64) {
	e.tools = e.tools.withWidth(w)
}

// OnChange registers fn to be called after a stroke completes or the canvas
// is cleared. Listeners run synchronously on the caller's goroutine in
// registration order. The returned function unregisters fn.
func (e *Engine) OnChange(fn func(Change)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return e.listeners.add(fn)
}

// PointerDown begins a stroke at (x, y), clamped to the canvas.
// If a stroke is already in progress, its pointer-up was lost: it is sealed
// first, as if PointerUp had been called. Listeners notified by that seal may
// call back into the engine; if one closes it, the pointer-down is dropped.
func (e *Engine) PointerDown(x, y float64) {
	if !e.ready() {
		return
	}
	if e.state == StateDrawing {
		Logger().Debug("sketch: pointer down while drawing, sealing previous stroke")
		e.PointerUp()
		// A listener may have closed the engine or begun its own stroke.
		if !e.ready() {
			return
		}
		e.model.seal()
	}

	e.model.begin(e.tools.newStroke(e.point(x, y)))
	e.state = StateDrawing
	e.comp.Update(&e.model)
}

// PointerMove extends the current stroke to (x, y), clamped to the canvas.
// It is a no-op while idle.
func (e *Engine) PointerMove(x, y float64) {
	if !e.ready() || e.state != StateDrawing {
		return
	}
	if e.model.extend(e.point(x, y)) {
		e.comp.Update(&e.model)
	}
}

// PointerUp seals the current stroke and notifies listeners.
// A pointer-up with no matching pointer-down is ignored.
func (e *Engine) PointerUp() {
	if !e.ready() || e.state != StateDrawing {
		return
	}
	e.state = StateIdle
	if !e.model.seal() {
		return
	}
	e.comp.Update(&e.model)

	id := e.model.Last().ID
	Logger().Debug("sketch: stroke completed", "id", id, "points", e.model.Last().Len())
	e.listeners.emit(Change{Kind: ChangeStrokeCompleted, Strokes: e.model.Len(), Stroke: id})
}

// Clear removes every stroke, returns to idle and notifies listeners.
// It may be called in any state.
func (e *Engine) Clear() {
	if !e.ready() {
		return
	}
	e.model.clear()
	e.state = StateIdle
	e.comp.Render(&e.model)

	Logger().Info("sketch: canvas cleared")
	e.listeners.emit(Change{Kind: ChangeCleared})
}

// Close releases the render surface. Exports after Close return
// ErrNotReady and pointer events are ignored.
func (e *Engine) Close() error {
	e.comp = nil
	e.model.clear()
	e.state = StateIdle
	return nil
}

// point converts event coordinates to a canvas point, clamping
// out-of-canvas and malformed values.
func (e *Engine) point(x, y float64) Point {
	p := Pt(x, y)
	c := p.clampTo(e.width, e.height)
	if c != p {
		Logger().Debug("sketch: pointer clamped", "x", x, "y", y, "to_x", c.X, "to_y", c.Y)
	}
	return c
}
