package sketch

// EngineOption configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default: transparent export at canvas size
//	e, err := sketch.New(600, 400)
//
//	// Flatten onto white and resample for a classifier input
//	e, err := sketch.New(600, 400,
//	    sketch.WithExportBackground(sketch.White),
//	    sketch.WithExportSize(224, 224))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	exportBackground RGBA
	exportWidth      int
	exportHeight     int
	tools            ToolState
	onChange         []func(Change)
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		exportBackground: Transparent,
		tools:            DefaultToolState(),
	}
}

// WithExportBackground flattens exported images onto c.
// The canvas surface itself stays transparent so erasing never paints c.
// A fully transparent c (the default) exports the surface as is.
func WithExportBackground(c RGBA) EngineOption {
	return func(o *engineOptions) {
		o.exportBackground = c.clamped()
	}
}

// WithExportSize resamples exported images to width x height.
// Non-positive dimensions keep the canvas size.
func WithExportSize(width, height int) EngineOption {
	return func(o *engineOptions) {
		if width > 0 && height > 0 {
			o.exportWidth, o.exportHeight = width, height
		}
	}
}

// WithToolState sets the initial tool state instead of DefaultToolState.
// Values are clamped the same way as the Select methods.
func WithToolState(ts ToolState) EngineOption {
	return func(o *engineOptions) {
		o.tools = DefaultToolState().withTool(ts.Tool).withColor(ts.Color).withWidth(ts.Width)
	}
}

// WithOnChange registers a change listener at construction time.
// It is equivalent to calling OnChange right after New.
func WithOnChange(fn func(Change)) EngineOption {
	return func(o *engineOptions) {
		if fn != nil {
			o.onChange = append(o.onChange, fn)
		}
	}
}
