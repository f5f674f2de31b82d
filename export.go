package sketch

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// InlineImagePrefix starts every string returned by ExportInline.
const InlineImagePrefix = "data:image/png;base64,"

// Snapshot returns a copy of the composed canvas surface, before export
// options are applied.
func (e *Engine) Snapshot() (*image.RGBA, error) {
	if !e.ready() {
		return nil, ErrNotReady
	}
	return e.comp.Surface().ToImage(), nil
}

// EncodePNG writes the current canvas as a PNG image, applying the export
// background and size options.
func (e *Engine) EncodePNG(w io.Writer) error {
	snap, err := e.Snapshot()
	if err != nil {
		return err
	}
	return e.encode(w, snap)
}

// ExportInline returns the current canvas as a PNG data URL suitable for
// direct use as an image source. It reflects the surface at call time.
// An empty canvas yields a blank image, not an error.
func (e *Engine) ExportInline() (string, error) {
	var buf bytes.Buffer
	if err := e.EncodePNG(&buf); err != nil {
		return "", err
	}
	return InlineImagePrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ExportBlob encodes the current canvas as PNG bytes on a new goroutine and
// delivers them to callback exactly once.
//
// The surface is copied before ExportBlob returns, so strokes drawn while
// the export is pending do not affect it. There is no cancellation; call
// ExportBlob again for a newer snapshot. The callback runs on the export
// goroutine, not the caller's. A nil callback is ignored.
func (e *Engine) ExportBlob(callback func([]byte, error)) {
	if callback == nil {
		return
	}
	snap, err := e.Snapshot()
	opts := e.opts
	w, h := e.width, e.height

	go func() {
		if err != nil {
			callback(nil, err)
			return
		}
		var buf bytes.Buffer
		if err := encodeImage(&buf, snap, opts, w, h); err != nil {
			Logger().Warn("sketch: blob export failed", "error", err)
			callback(nil, err)
			return
		}
		callback(buf.Bytes(), nil)
	}()
}

func (e *Engine) encode(w io.Writer, snap *image.RGBA) error {
	return encodeImage(w, snap, e.opts, e.width, e.height)
}

// encodeImage applies the export options to snap and PNG-encodes it.
// Encoder failures are reported as *RenderSurfaceError.
func encodeImage(w io.Writer, snap *image.RGBA, opts engineOptions, width, height int) error {
	img := prepareExport(snap, opts)
	if err := png.Encode(w, img); err != nil {
		return &RenderSurfaceError{Width: width, Height: height, Err: err}
	}
	return nil
}

// prepareExport flattens and resamples snap according to opts.
// snap must be a private copy; it may be modified.
func prepareExport(snap *image.RGBA, opts engineOptions) image.Image {
	img := snap
	if opts.exportBackground.A > 0 {
		flat := image.NewRGBA(snap.Bounds())
		bg := image.NewUniform(opts.exportBackground.Color())
		xdraw.Draw(flat, flat.Bounds(), bg, image.Point{}, xdraw.Src)
		xdraw.Draw(flat, flat.Bounds(), snap, snap.Bounds().Min, xdraw.Over)
		img = flat
	}

	if opts.exportWidth > 0 && opts.exportHeight > 0 &&
		(opts.exportWidth != img.Bounds().Dx() || opts.exportHeight != img.Bounds().Dy()) {
		scaled := image.NewRGBA(image.Rect(0, 0, opts.exportWidth, opts.exportHeight))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = scaled
	}
	return img
}
