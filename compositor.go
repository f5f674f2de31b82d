package sketch

import (
	"image"
	"sync"

	"github.com/gogpu/sketch/internal/blend"
	"github.com/gogpu/sketch/internal/parallel"
	"github.com/gogpu/sketch/internal/raster"
)

// bandPool is shared by every full recomposition in the process.
var bandPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// Compositor renders a StrokeModel into a transparent pixel buffer.
//
// It keeps two buffers: base holds every sealed stroke, surface is base plus
// the stroke still being drawn. Extending the open stroke only restores and
// repaints its own rectangle, yet the result is byte-identical to a full
// re-render because coverage of a pixel never depends on the clip it was
// computed under.
//
// Compositor is not safe for concurrent use.
type Compositor struct {
	width, height int

	base    *Pixmap
	surface *Pixmap
	raster  *raster.Rasterizer

	// committed is the number of leading strokes rendered into base.
	committed int
	// active is the region where surface may differ from base.
	active image.Rectangle
}

// NewCompositor creates a compositor for a fixed canvas size.
func NewCompositor(width, height int) *Compositor {
	return &Compositor{
		width:   width,
		height:  height,
		base:    NewPixmap(width, height),
		surface: NewPixmap(width, height),
		raster:  raster.NewRasterizer(),
	}
}

// Surface returns the composed buffer. Callers must treat it as read-only
// and copy it before handing it to another goroutine.
func (c *Compositor) Surface() *Pixmap {
	return c.surface
}

func (c *Compositor) canvas() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Render recomposes m from an empty buffer.
func (c *Compositor) Render(m *StrokeModel) {
	c.base.Clear(Transparent)
	c.committed = m.Len()
	if last := m.Last(); last != nil && !last.sealed {
		c.committed--
	}
	c.active = image.Rectangle{}
	renderBands(c.base, m.strokes[:c.committed])

	copy(c.surface.data, c.base.data)
	if open := c.open(m); open != nil {
		c.draw(c.surface, open, c.canvas())
		c.active = open.Bounds().Intersect(c.canvas())
	}
}

// Update brings the surface in line with m after strokes were begun,
// extended, or sealed. A model that shrank is fully re-rendered; any other
// change to strokes already committed requires an explicit Render.
func (c *Compositor) Update(m *StrokeModel) {
	if m.Len() < c.committed {
		c.Render(m)
		return
	}

	dirty := c.active
	for i := c.committed; i < m.Len(); i++ {
		dirty = dirty.Union(m.At(i).Bounds())
	}
	c.commit(m)

	open := c.open(m)
	if open != nil {
		dirty = dirty.Union(open.Bounds())
	}
	dirty = dirty.Intersect(c.canvas())
	c.surface.CopyFrom(c.base, dirty)

	c.active = image.Rectangle{}
	if open != nil {
		c.draw(c.surface, open, dirty)
		c.active = open.Bounds().Intersect(c.canvas())
	}
}

// commit renders sealed strokes past c.committed into base. A stroke that
// is followed by another is treated as sealed.
func (c *Compositor) commit(m *StrokeModel) {
	for c.committed < m.Len() {
		s := m.At(c.committed)
		if !s.sealed && c.committed == m.Len()-1 {
			return
		}
		c.draw(c.base, s, c.canvas())
		c.committed++
	}
}

// open returns the in-progress stroke that is not yet in base.
func (c *Compositor) open(m *StrokeModel) *Stroke {
	if c.committed < m.Len() {
		return m.At(c.committed)
	}
	return nil
}

// draw composites one stroke into dst within clip.
func (c *Compositor) draw(dst *Pixmap, s *Stroke, clip image.Rectangle) {
	compositeStroke(dst, c.raster, s, clip)
}

func compositeStroke(dst *Pixmap, r *raster.Rasterizer, s *Stroke, clip image.Rectangle) {
	mask := r.Stroke(s.polyline(), clip.Intersect(dst.Bounds()))
	if mask.Rect.Empty() {
		return
	}
	fn := blend.GetMaskFunc(s.Blend.op())
	src := s.Color.premultiplied()
	for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
		fn(dst.span(y, mask.Rect.Min.X, mask.Rect.Max.X), mask.Row(y), src)
	}
}

// Composite renders strokes in order into a fresh width x height buffer.
// It is the reference form of the compositor: for the same strokes and size
// the output is always byte-identical.
func Composite(width, height int, strokes []*Stroke) *Pixmap {
	pm := NewPixmap(width, height)
	renderBands(pm, strokes)
	return pm
}

// renderBands composites strokes into dst one horizontal band at a time,
// bands in parallel. Within a band strokes are applied in paint order.
func renderBands(dst *Pixmap, strokes []*Stroke) {
	if len(strokes) == 0 {
		return
	}
	parallel.ForEach(bandPool(), parallel.Bands(dst.Bounds()), func(band image.Rectangle) {
		r := raster.NewRasterizer()
		for _, s := range strokes {
			compositeStroke(dst, r, s, band)
		}
	})
}
